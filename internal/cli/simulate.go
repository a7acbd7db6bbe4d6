package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fedboard/internal/app"
	"fedboard/internal/indicator"
	"fedboard/internal/logger"
	"fedboard/internal/meeting"
	"fedboard/internal/schedule"
	"fedboard/internal/store"
)

func newSimulateCmd(a *app.App) *cobra.Command {
	var (
		period      string
		overwrite   bool
		offline     bool
		projections bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a meeting simulation and persist the record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if period == "" {
				next, _, ok := schedule.NextMeeting(time.Now())
				if !ok {
					return fmt.Errorf("无法确定下一次会议，请用 --period 指定会期")
				}
				period = next
			}
			if _, _, err := meeting.ParsePeriod(period); err != nil {
				return err
			}
			asOf, ok := schedule.MeetingDate(period)
			if !ok {
				logger.Warnf("%s 不在官方议息日历内，按月末模拟", period)
				year, month, _ := meeting.ParsePeriod(period)
				asOf = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
			}

			logger.Infof("拉取 %s 的经济数据快照（数据截止 %s）", period, asOf.Format("2006-01-02"))
			snap, err := a.Fred.Snapshot(ctx, asOf)
			if err != nil {
				return fmt.Errorf("组装经济数据快照失败: %w", err)
			}
			printBriefing(cmd, *snap)

			rec, err := a.Orchestrator(projections, offline).Run(ctx, meeting.RunParams{
				Period:   period,
				Snapshot: *snap,
			})
			if err != nil {
				var pf *meeting.PartialFailureError
				if errors.As(err, &pf) {
					return fmt.Errorf("委员 %s 在 %d 次尝试后仍未出票，本次会议作废: %w", pf.MemberID, pf.Attempts, pf.Err)
				}
				return err
			}

			rec.Model = a.Cfg.Engine.Model
			if offline {
				rec.Model = "heuristic"
			}

			save := a.Store.Save
			if overwrite {
				save = a.Store.SaveOverwrite
			}
			if err := save(ctx, rec); err != nil {
				if errors.Is(err, store.ErrDuplicatePeriod) {
					return fmt.Errorf("%s 已有记录，重跑请加 --overwrite", period)
				}
				return err
			}
			printRecord(cmd, rec)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "meeting period YYYY-MM (default: next scheduled meeting)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing record for the period")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the deterministic heuristic engine instead of the LLM")
	cmd.Flags().BoolVar(&projections, "projections", false, "also collect dot plot rate projections")
	return cmd
}

func printBriefing(cmd *cobra.Command, snap indicator.Snapshot) {
	fmt.Fprintln(cmd.OutOrStdout(), snap.Briefing())
	fmt.Fprintln(cmd.OutOrStdout())
}

func printRecord(cmd *cobra.Command, rec meeting.MeetingRecord) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Meeting %s: %s", rec.Period, rec.FinalAction)
	if rec.MagnitudeBps > 0 {
		fmt.Fprintf(out, " %dbps", rec.MagnitudeBps)
	}
	fmt.Fprintf(out, "  %s -> %s  (vote %d-%d)\n",
		rec.PreviousRange.String(), rec.FinalRange.String(), rec.Tally.For, rec.Tally.Against)
	if len(rec.Dissenters) > 0 {
		fmt.Fprintf(out, "Dissenters: %v\n", rec.Dissenters)
	}
	if len(rec.Projections) > 0 {
		fmt.Fprintf(out, "Collected %d rate projections\n", len(rec.Projections))
	}
}
