package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
)

func newSeqCmd(opts *options) *cobra.Command {
	var count int
	var sorted bool

	cmd := &cobra.Command{
		Use:   "seq",
		Short: "generate sequential time-based GUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("%w: count must be positive", guid.ErrInvalidArgument)
			}
			order := setting(cmd, "order", opts.cfg.Order)
			format := setting(cmd, "format", opts.cfg.Format)

			gen := guid.NewGenerator()
			ids := make([]guid.UUID, count)
			for i := range ids {
				u, err := gen.New()
				if err != nil {
					return err
				}
				ids[i] = u
			}
			if sorted {
				switch order {
				case "sql":
					guid.SortSQL(ids)
				case "sqlserver":
					guid.SortSQLServer(ids)
				case "mysql":
					slices.SortFunc(ids, compareMySQL)
				default:
					guid.SortRFC(ids)
				}
			}

			out := cmd.OutOrStdout()
			for _, u := range ids {
				s, err := render(u, order, format)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			log.Debug().Int("count", count).Str("order", order).Msg("generated")
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of GUIDs")
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort the output in the chosen order")
	cmd.Flags().String("order", "", "byte order for hex/base64 output and --sort (rfc, sql, sqlserver, mysql)")
	cmd.Flags().String("format", "", "output format (text, hex, base64)")
	return cmd
}
