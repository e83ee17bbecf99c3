package cmd

import (
	catalogview "github.com/bnema/libcat/internal/adapters/render/catalog"
	"github.com/spf13/cobra"
)

type statisticsOutput struct {
	Total     int `json:"total"`
	Borrowed  int `json:"borrowed"`
	Available int `json:"available"`
}

func newStatsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := app.catalog.ViewStatistics()
			if asJSON {
				return writeJSON(cmd, statisticsOutput{
					Total:     stats.Total,
					Borrowed:  stats.Borrowed,
					Available: stats.Available(),
				})
			}

			return writeView(cmd, app, catalogview.StatisticsView{Stats: stats}, catalogview.RenderOptions{})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON output")

	return cmd
}
