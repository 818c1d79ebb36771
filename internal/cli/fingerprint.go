package cli

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/serial"
)

func newFingerprintCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint [FILE]",
		Short: "fingerprint a JSON document",
		Long: `fingerprint decodes a JSON document from FILE or stdin, re-encodes it
with the chosen codec and prints its name-based GUID. Equal documents give
equal fingerprints regardless of key order or whitespace. A JSON null gives
the null fingerprint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			var doc any
			if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("decode input: %w", err)
			}

			codec := setting(cmd, "codec", opts.cfg.Codec)
			encode, err := serial.ByName[any](codec)
			if err != nil {
				return err
			}
			ns, err := guid.NamespaceByName(setting(cmd, "namespace", opts.cfg.Namespace))
			if err != nil {
				return fmt.Errorf("namespace: %w", err)
			}
			kind, err := hashKind(cmd, opts.cfg)
			if err != nil {
				return err
			}

			f := guid.Fingerprinter{Namespace: ns, Hash: kind}
			fp, err := guid.FingerprintWith[any](f, doc, encode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fp)
			return nil
		},
	}

	cmd.Flags().String("codec", "", "encoding hashed for the fingerprint (json, msgpack, yaml)")
	cmd.Flags().String("namespace", "", "namespace: dns, url, oid, x500 or a GUID")
	cmd.Flags().String("hash", "", "md5 or sha1")
	return cmd
}
