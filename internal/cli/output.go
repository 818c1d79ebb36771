package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/internal/config"
	"github.com/Lzww0608/guid/sqlstore"
)

// hashKind resolves the --hash flag or the hash config key.
func hashKind(cmd *cobra.Command, cfg *config.Config) (guid.HashKind, error) {
	c := *cfg
	c.Hash = setting(cmd, "hash", cfg.Hash)
	return c.HashKind()
}

// orderedBytes lays u out in the byte order named by order.
func orderedBytes(u guid.UUID, order string) ([16]byte, error) {
	switch order {
	case "rfc", "":
		return u, nil
	case "sql", "sqlserver":
		return guid.ToSQLOrder(u), nil
	case "mysql":
		return sqlstore.ToMySQLOrder(u), nil
	default:
		return [16]byte{}, fmt.Errorf("%w: order %q", guid.ErrInvalidArgument, order)
	}
}

// render formats u. Text is always the canonical form; hex and base64
// encode the bytes in the requested order.
func render(u guid.UUID, order, format string) (string, error) {
	b, err := orderedBytes(u, order)
	if err != nil {
		return "", err
	}
	switch format {
	case "text", "":
		return u.String(), nil
	case "hex":
		return guid.UUID(b).EncodeToHex(), nil
	case "base64":
		return guid.UUID(b).EncodeToBase64(), nil
	default:
		return "", fmt.Errorf("%w: format %q", guid.ErrInvalidArgument, format)
	}
}

// readIDs parses args, or non-empty stdin lines when args is empty.
func readIDs(args []string, in io.Reader) ([]guid.UUID, error) {
	if len(args) == 0 {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				args = append(args, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	ids := make([]guid.UUID, 0, len(args))
	for _, s := range args {
		u, err := guid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		ids = append(ids, u)
	}
	return ids, nil
}
