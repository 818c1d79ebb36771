package cli

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/sqlstore"
)

var errNoDSN = errors.New("no dsn: use --dsn, the dsn config key or GUIDGEN_DSN")

func newKeysCmd(opts *options) *cobra.Command {
	var count int
	var quiet bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "insert sequential keys into a database and compare its ordering",
		Long: `keys creates the key table if needed, inserts --count sequential GUIDs in
one transaction and reads them back ordered by the id column. It reports
whether the engine's order matches the local comparer for the dialect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := setting(cmd, "dsn", opts.cfg.DSN)
			if dsn == "" {
				return errNoDSN
			}
			if count < 1 {
				return fmt.Errorf("%w: count must be positive", guid.ErrInvalidArgument)
			}

			store, err := sqlstore.Open(dsn, setting(cmd, "table", opts.cfg.Table))
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if err := store.EnsureTable(ctx); err != nil {
				return err
			}

			gen := guid.NewGenerator()
			keys := make([]guid.UUID, count)
			for i := range keys {
				if keys[i], err = gen.New(); err != nil {
					return err
				}
			}

			var bar *progressbar.ProgressBar
			if quiet {
				bar = progressbar.DefaultSilent(int64(count))
			} else {
				bar = progressbar.NewOptions(count,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("inserting"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			start := time.Now()
			label := "guidgen-" + start.UTC().Format("20060102T150405")
			if err := store.InsertBatch(ctx, keys, label, func(n int) { bar.Set(n) }); err != nil {
				return err
			}
			bar.Finish()

			total, err := store.Count(ctx)
			if err != nil {
				return err
			}
			got, err := store.Keys(ctx, int(total))
			if err != nil {
				return err
			}

			match := slices.Equal(filterInserted(got, keys), expectedOrder(store.Dialect(), keys))
			log.Info().
				Str("table", store.Table()).
				Str("dialect", store.Dialect().String()).
				Int("inserted", count).
				Int64("rows", total).
				Bool("order_matches", match).
				Dur("elapsed", time.Since(start)).
				Msg("keys written")

			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d keys into %s (%d rows)\n", count, store.Table(), total)
			fmt.Fprintf(cmd.OutOrStdout(), "engine order matches local comparer: %t\n", match)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1000, "number of keys to insert")
	cmd.Flags().String("dsn", "", "sqlserver://... or a MySQL DSN")
	cmd.Flags().String("table", "", "key table name")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no progress bar")
	return cmd
}

// expectedOrder sorts a copy of keys the way the dialect orders its id
// column.
func expectedOrder(d sqlstore.Dialect, keys []guid.UUID) []guid.UUID {
	out := slices.Clone(keys)
	switch d {
	case sqlstore.MySQL:
		slices.SortFunc(out, compareMySQL)
	default:
		guid.SortSQLServer(out)
	}
	return out
}

// filterInserted keeps the keys of got that are in inserted, preserving order.
func filterInserted(got, inserted []guid.UUID) []guid.UUID {
	set := make(map[guid.UUID]struct{}, len(inserted))
	for _, k := range inserted {
		set[k] = struct{}{}
	}
	out := make([]guid.UUID, 0, len(inserted))
	for _, k := range got {
		if _, ok := set[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
