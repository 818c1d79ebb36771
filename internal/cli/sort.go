package cli

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/sqlstore"
)

func compareMySQL(a, b guid.UUID) int {
	x, y := sqlstore.ToMySQLOrder(a), sqlstore.ToMySQLOrder(b)
	return bytes.Compare(x[:], y[:])
}

func newSortCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [GUID...]",
		Short: "sort GUIDs the way a database orders them",
		Long:  "sort reads GUIDs from the arguments or one per line on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := readIDs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			switch order := setting(cmd, "order", opts.cfg.Order); order {
			case "sql":
				slices.SortStableFunc(ids, guid.SQLComparer{}.Compare)
			case "sqlserver":
				slices.SortStableFunc(ids, guid.CompareSQLServer)
			case "mysql":
				slices.SortStableFunc(ids, compareMySQL)
			case "rfc":
				slices.SortStableFunc(ids, guid.UUID.Compare)
			default:
				return fmt.Errorf("%w: order %q", guid.ErrInvalidArgument, order)
			}

			for _, u := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}

	cmd.Flags().String("order", "", "rfc, sql (bytes of the SQL Server layout), sqlserver (uniqueidentifier ORDER BY) or mysql (UUID_TO_BIN swap)")
	return cmd
}
