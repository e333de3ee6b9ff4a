package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/yukikurage/migration-tracker/internal/analytics"
)

func newStatsCmd(load EnvLoader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print portfolio statistics and team load",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}

			dashboard := env.dashboardService()
			stats, err := dashboard.Statistics()
			if err != nil {
				return err
			}
			teamLoad, err := dashboard.TeamLoad()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Statistics analytics.Statistics `json:"statistics"`
					TeamLoad   analytics.TeamLoad   `json:"team_load"`
				}{stats, teamLoad})
			}

			printStats(out, stats, teamLoad)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func printStats(w io.Writer, stats analytics.Statistics, load analytics.TeamLoad) {
	fmt.Fprintf(w, "Projects:        %d\n", stats.Total)
	fmt.Fprintf(w, "  Completed:     %d\n", stats.Completed)
	fmt.Fprintf(w, "  Late:          %d\n", stats.Late)
	fmt.Fprintf(w, "  In progress:   %d\n", stats.InProgress)
	fmt.Fprintf(w, "  Not started:   %d\n", stats.NotStarted)
	fmt.Fprintf(w, "Completion rate: %.1f%%\n", stats.CompletionRate)
	fmt.Fprintf(w, "Average days:    %.1f\n", stats.AverageDays)
	fmt.Fprintf(w, "Efficiency:      %.1f%%\n", stats.AverageEfficiency)

	methods := make([]string, 0, len(stats.Methods))
	for method := range stats.Methods {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	for _, method := range methods {
		fmt.Fprintf(w, "  %-14s %d\n", method+":", stats.Methods[method])
	}

	for _, d := range stats.TopDifficulties {
		fmt.Fprintf(w, "Difficulty:      %s (%d)\n", d.Text, d.Count)
	}

	fmt.Fprintf(w, "Team load:       %s, weight %.1f over %d active projects\n", load.Status, load.TotalWeight, load.ActiveProjects)
	fmt.Fprintf(w, "                 %s\n", load.Description)
}
