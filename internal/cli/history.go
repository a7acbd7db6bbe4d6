package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fedboard/internal/app"
)

func newHistoryCmd(a *app.App) *cobra.Command {
	var (
		year   int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List persisted meeting records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.Store.List(cmd.Context(), year)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no meeting records")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tACTION\tBPS\tRANGE\tVOTE\tDISSENTERS")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d-%d\t%s\n",
					rec.Period, rec.FinalAction, rec.MagnitudeBps, rec.FinalRange.String(),
					rec.Tally.For, rec.Tally.Against, strings.Join(rec.Dissenters, ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "filter by year (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
