package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/api"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Games market estimates",
		Long:  "Fetch aggregated games market estimates broken down by category.",
	}

	cmd.AddCommand(newGamesBreakdownCmd())
	return cmd
}

func newGamesBreakdownCmd() *cobra.Command {
	var q api.GamesBreakdownQuery
	var categories, countries []string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Download and revenue totals per game category",
		Example: `  # Weekly worldwide totals for two iOS game categories
  st games breakdown --os ios --categories 7001,7002 \
    --date-granularity weekly --start-date 2024-01-01 --end-date 2024-03-31

  # Android role-playing games in the US
  st games breakdown --os android --categories GAME_ROLE_PLAYING \
    --countries US --date-granularity monthly \
    --start-date 2024-01-01 --end-date 2024-06-30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.Categories = splitCSV(categories)
			q.Countries = splitCSV(countries)
			if err := resolveDates(&q.StartDate, &q.EndDate); err != nil {
				return err
			}

			tbl, err := getClient().Games().Breakdown(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printTable(cmd, tbl)
		},
	}

	cmd.Flags().StringVar(&q.OS, "os", "", "Platform: ios|android|unified (required)")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "Game category IDs, comma-separated or repeated (required)")
	cmd.Flags().StringSliceVar(&countries, "countries", nil, "Country codes; omit or pass WW for worldwide")
	cmd.Flags().StringVar(&q.DateGranularity, "date-granularity", "", "Aggregation period: daily|weekly|monthly|quarterly (required)")
	cmd.Flags().StringVar(&q.StartDate, "start-date", "", "Start date: YYYY-MM-DD, today, yesterday, or e.g. 30d ago (required)")
	cmd.Flags().StringVar(&q.EndDate, "end-date", "", "End date: YYYY-MM-DD or relative (required)")

	return cmd
}
