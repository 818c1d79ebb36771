package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/sqlstore"
)

func newInspectCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect GUID",
		Short: "show the fields and stored layouts of a GUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := guid.Parse(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "guid\t%s\n", u)
			fmt.Fprintf(w, "version\t%d (%s)\n", byte(u.Version()), u.Version())
			fmt.Fprintf(w, "variant\t%s\n", u.Variant())
			if u.Version() == guid.VersionTimeBased {
				fmt.Fprintf(w, "time\t%s\n", u.Time().Format(time.RFC3339Nano))
				fmt.Fprintf(w, "ticks\t%d\n", u.Timestamp())
				fmt.Fprintf(w, "clock_seq\t%d\n", u.ClockSequence())
				fmt.Fprintf(w, "node\t%x\n", u.NodeID())
			}
			my := sqlstore.ToMySQLOrder(u)
			fmt.Fprintf(w, "rfc bytes\t%s\n", u.EncodeToHex())
			fmt.Fprintf(w, "sqlserver bytes\t%s\n", guid.ToSQLOrder(u).Hex())
			fmt.Fprintf(w, "mysql bytes\t%s\n", guid.UUID(my).EncodeToHex())
			return w.Flush()
		},
	}
}
