package cli

import (
	"github.com/spf13/cobra"

	"fedboard/internal/app"
)

// 中文说明：
// CLI 入口。所有子命令共用一个已装配的 App 实例。

func NewRootCmd(a *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fedboard",
		Short:         "FOMC meeting simulator: persona voters, documented aggregation, persisted records",
		Long:          "fedboard simulates FOMC meetings. Each committee member is an LLM persona that votes on a snapshot of economic indicators; votes are aggregated by documented rules into a meeting record with minutes, dot plots, and analytics.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newSimulateCmd(a),
		newHistoryCmd(a),
		newMembersCmd(a),
		newStanceCmd(a),
		newDissentsCmd(a),
		newImpactCmd(a),
		newCompareCmd(a),
		newMinutesCmd(a),
		newDotplotCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}
