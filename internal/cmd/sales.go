package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/api"
)

func newSalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Download and revenue estimates",
		Long:  "Fetch download and revenue estimates aggregated per app, country and period.",
	}

	cmd.AddCommand(newSalesReportCmd())
	return cmd
}

func newSalesReportCmd() *cobra.Command {
	var q api.SalesReportQuery
	var appIDs, countries []string

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"estimates"},
		Short:   "Sales report estimates per app",
		Long: `Fetch download and revenue estimates for one or more apps.

iOS results arrive split by iPhone and iPad; matching pairs are
consolidated into iOS-level totals. Omitting --countries returns
worldwide aggregates.`,
		Example: `  # Daily iOS estimates for one app
  st sales report --os ios --app-ids 1234567890 \
    --date-granularity daily --start-date 2024-01-01 --end-date 2024-01-31

  # Monthly estimates for two countries, piped through jq
  st sales report --os android --app-ids com.example.app \
    --countries US,GB --date-granularity monthly \
    --start-date 2024-01-01 --end-date 2024-06-30 \
    --jq '.[] | {c: .["Country Code"], r: .["Android Revenue"]}'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.AppIDs = splitCSV(appIDs)
			q.Countries = splitCSV(countries)
			if err := resolveDates(&q.StartDate, &q.EndDate); err != nil {
				return err
			}

			tbl, err := getClient().Sales().ReportEstimates(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printTable(cmd, tbl)
		},
	}

	cmd.Flags().StringVar(&q.OS, "os", "", "Platform: ios|android|unified (required)")
	cmd.Flags().StringSliceVar(&appIDs, "app-ids", nil, "App IDs, comma-separated or repeated (required)")
	cmd.Flags().StringSliceVar(&countries, "countries", nil, "Country codes; omit or pass WW for worldwide")
	cmd.Flags().StringVar(&q.DateGranularity, "date-granularity", "", "Aggregation period: daily|weekly|monthly|quarterly (required)")
	cmd.Flags().StringVar(&q.StartDate, "start-date", "", "Start date: YYYY-MM-DD, today, yesterday, or e.g. 30d ago (required)")
	cmd.Flags().StringVar(&q.EndDate, "end-date", "", "End date: YYYY-MM-DD or relative (required)")

	return cmd
}
