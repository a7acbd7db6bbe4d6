package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fedboard/internal/app"
	"fedboard/internal/member"
)

func newMembersCmd(a *app.App) *cobra.Command {
	var (
		year   int
		stance string
	)
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Show the committee roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			members := a.Registry.All()
			if year != 0 {
				members = a.Registry.Eligible(year)
			}
			if stance != "" {
				s := member.Stance(stance)
				if !s.Valid() {
					return fmt.Errorf("非法立场 %q，可选 hawk/dove/neutral", stance)
				}
				filtered := members[:0:0]
				for _, m := range members {
					if m.Stance == s {
						filtered = append(filtered, m)
					}
				}
				members = filtered
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTITLE\tSTANCE")
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.DisplayTitle(), m.Stance)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "only voters eligible in the given year")
	cmd.Flags().StringVar(&stance, "stance", "", "filter by baseline stance (hawk/dove/neutral)")
	return cmd
}
