package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fedboard/internal/analytics"
	"fedboard/internal/app"
	"fedboard/internal/schedule"
)

func newCompareCmd(a *app.App) *cobra.Command {
	var (
		period string
		year   int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare simulated decisions with actual Fed decisions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			records, err := a.Store.List(ctx, year)
			if err != nil {
				return err
			}
			if period != "" {
				rec, err := a.Store.Load(ctx, period)
				if err != nil {
					return err
				}
				records = records[:0]
				records = append(records, rec)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no meeting records to compare")
				return nil
			}

			var comparisons []analytics.Comparison
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tSIMULATED\tACTUAL\tACTION\tMAGNITUDE")
			for _, rec := range records {
				meetingDate, ok := schedule.MeetingDate(rec.Period)
				if !ok {
					fmt.Fprintf(w, "%s\t%s %dbps\tno scheduled meeting\t-\t-\n",
						rec.Period, rec.FinalAction, rec.MagnitudeBps)
					continue
				}
				actual, err := a.Fred.ActualDecisionAt(ctx, meetingDate)
				if err != nil {
					return fmt.Errorf("查询 %s 真实决议失败: %w", rec.Period, err)
				}
				bps := actual.ChangeBps
				if bps < 0 {
					bps = -bps
				}
				c := analytics.Compare(rec, actual.Action, bps)
				comparisons = append(comparisons, c)
				fmt.Fprintf(w, "%s\t%s %dbps\t%s %dbps\t%s\t%s\n",
					c.Period, c.SimulatedAction, c.SimulatedBps,
					c.ActualAction, c.ActualBps,
					matchMark(c.ActionMatch), matchMark(c.MagnitudeMatch))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(comparisons) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\naction accuracy: %.0f%% (%d meetings)\n",
					analytics.Accuracy(comparisons)*100, len(comparisons))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "compare a single period YYYY-MM")
	cmd.Flags().IntVar(&year, "year", 0, "filter records by year (0 = all)")
	return cmd
}

func matchMark(ok bool) string {
	if ok {
		return "match"
	}
	return "miss"
}
