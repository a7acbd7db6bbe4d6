package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fedboard/internal/analytics"
	"fedboard/internal/app"
	"fedboard/internal/engine"
)

func newStanceCmd(a *app.App) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "stance",
		Short: "Score each member on the hawk-dove spectrum from their voting record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.Store.List(cmd.Context(), year)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no meeting records to score")
				return nil
			}
			scores := analytics.StanceScores(records, a.Registry.All(), a.Cfg.Stance)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MEMBER\tBASELINE\tVOTES\tSCORE")
			for _, s := range scores {
				fmt.Fprintf(w, "%s\t%s\t%d\t%+d\n", s.MemberID, s.Baseline, s.Votes, s.Score)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "filter records by year (0 = all)")
	return cmd
}

func newDissentsCmd(a *app.App) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "dissents",
		Short: "Group dissenting votes by member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.Store.List(cmd.Context(), year)
			if err != nil {
				return err
			}
			groups := analytics.DissentsByMember(records)
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no dissents on record")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MEMBER\tCOUNT\tPERIODS")
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t%d\t%s\n", g.MemberID, g.Count, strings.Join(g.Periods, ","))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\ndissent rate: %.1f%% of meetings\n",
				analytics.DissentRate(records)*100)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "filter records by year (0 = all)")
	return cmd
}

func newImpactCmd(a *app.App) *cobra.Command {
	var (
		action string
		bps    int
	)
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Estimate market impact of a policy action",
		RunE: func(cmd *cobra.Command, _ []string) error {
			act := engine.Action(action)
			if !act.Valid() {
				return fmt.Errorf("非法动作 %q，可选 cut/hold/raise", action)
			}
			if bps < 0 || bps%25 != 0 {
				return fmt.Errorf("幅度必须是 25 的非负整数倍")
			}
			est := analytics.EstimateImpact(act, bps, a.Cfg.Impact)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Impact of %s %dbps:\n", act, bps)
			fmt.Fprintf(out, "  2Y Treasury:  %+dbps\n", est.Treasury2YBps)
			fmt.Fprintf(out, "  10Y Treasury: %+dbps\n", est.Treasury10YBps)
			fmt.Fprintf(out, "  S&P 500:      %+.2f%%\n", est.SP500Pct)
			fmt.Fprintf(out, "  Dollar Index: %+.2f%%\n", est.DXYPct)
			return nil
		},
	}
	cmd.Flags().StringVar(&action, "action", "hold", "policy action (cut/hold/raise)")
	cmd.Flags().IntVar(&bps, "bps", 0, "magnitude in basis points")
	return cmd
}
