package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fedboard/internal/app"
	"fedboard/internal/logger"
	"fedboard/internal/render"
)

func newMinutesCmd(a *app.App) *cobra.Command {
	var (
		period string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "minutes",
		Short: "Render Fed-style minutes for a persisted meeting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if period == "" {
				return fmt.Errorf("--period 必填")
			}
			rec, err := a.Store.Load(cmd.Context(), period)
			if err != nil {
				return err
			}
			text := render.Minutes(rec, a.Registry.All())
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if err := writeFile(out, []byte(text)); err != nil {
				return err
			}
			logger.Infof("纪要已写入 %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "meeting period YYYY-MM")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")
	return cmd
}

func newDotplotCmd(a *app.App) *cobra.Command {
	var (
		period string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "dotplot",
		Short: "Render the dot plot PNG for a persisted meeting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if period == "" {
				return fmt.Errorf("--period 必填")
			}
			rec, err := a.Store.Load(cmd.Context(), period)
			if err != nil {
				return err
			}
			if len(rec.Projections) == 0 {
				return fmt.Errorf("%s 没有利率预测数据，模拟时请加 --projections", period)
			}
			img, err := render.RenderDotPlot(cmd.Context(), rec.Projections, rec.Period)
			if err != nil {
				return fmt.Errorf("渲染点阵图失败: %w", err)
			}
			if out == "" {
				out = filepath.Join(a.Cfg.Data.Dir, img.Filename)
			}
			if err := writeFile(out, img.Bytes); err != nil {
				return err
			}
			logger.Infof("点阵图已写入 %s", out)

			stats := render.SummaryStats(rec.Projections)
			for _, key := range []string{"2025", "2026", "2027", "longer_run"} {
				if s, ok := stats[key]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: median %.2f%% (%.2f-%.2f%%, n=%d)\n",
						key, s.Median, s.Min, s.Max, s.Count)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "meeting period YYYY-MM")
	cmd.Flags().StringVar(&out, "out", "", "output PNG path (default under data dir)")
	return cmd
}

func newExportCmd(a *app.App) *cobra.Command {
	var (
		year int
		out  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export meeting records as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return a.Store.ExportCSV(cmd.Context(), cmd.OutOrStdout(), year)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := a.Store.ExportCSV(cmd.Context(), f, year); err != nil {
				return err
			}
			logger.Infof("CSV 已写入 %s", out)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "filter by year (0 = all)")
	cmd.Flags().StringVar(&out, "out", "", "output path (default stdout)")
	return cmd
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
