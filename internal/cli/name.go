package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
)

func newNameCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name NAME...",
		Short: "derive name-based GUIDs (v3 or v5)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := guid.NamespaceByName(setting(cmd, "namespace", opts.cfg.Namespace))
			if err != nil {
				return fmt.Errorf("namespace: %w", err)
			}

			kind, err := hashKind(cmd, opts.cfg)
			if err != nil {
				return err
			}
			f := guid.Fingerprinter{Namespace: ns, Hash: kind}

			order := setting(cmd, "order", opts.cfg.Order)
			format := setting(cmd, "format", opts.cfg.Format)
			for _, name := range args {
				s, err := render(f.Of([]byte(name)).UUID(), order, format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().String("namespace", "", "namespace: dns, url, oid, x500 or a GUID")
	cmd.Flags().String("hash", "", "md5 (v3) or sha1 (v5)")
	cmd.Flags().String("order", "", "byte order for hex/base64 output (rfc, sql, sqlserver, mysql)")
	cmd.Flags().String("format", "", "output format (text, hex, base64)")
	return cmd
}
