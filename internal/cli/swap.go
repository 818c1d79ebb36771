package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
)

func newSwapCmd(_ *options) *cobra.Command {
	var fromSQL bool

	cmd := &cobra.Command{
		Use:   "swap VALUE...",
		Short: "convert between RFC and SQL Server byte order",
		Long: `swap prints the bytes SQL Server stores for each canonical GUID.
With --from-sql each value is read as 32 hex digits of stored bytes and the
canonical GUID is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range args {
				if fromSQL {
					s, err := guid.DecodeSQLFromHex(v)
					if err != nil {
						return fmt.Errorf("%q: %w", v, err)
					}
					fmt.Fprintln(out, guid.FromSQLOrder(s))
					continue
				}
				u, err := guid.Parse(v)
				if err != nil {
					return fmt.Errorf("%q: %w", v, err)
				}
				fmt.Fprintln(out, guid.ToSQLOrder(u).Hex())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromSQL, "from-sql", false, "input is stored SQL Server bytes in hex")
	return cmd
}
