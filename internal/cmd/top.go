package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/api"
)

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Top and trending charts",
		Long:  "Fetch ranked top-and-trending charts for apps and publishers.",
	}

	cmd.AddCommand(newTopActiveUsersCmd())
	cmd.AddCommand(newTopPublishersCmd())
	return cmd
}

// topChartFlags registers the flags shared by the top_and_trending
// subcommands. Limit and offset stay nil unless the user sets them, so
// the API defaults apply.
func topChartFlags(cmd *cobra.Command, q *api.TopChartsQuery, regions *[]string, measureUsage string) {
	cmd.Flags().StringVar(&q.OS, "os", "", "Platform: ios|android|unified (required)")
	cmd.Flags().StringVar(&q.ComparisonAttribute, "comparison-attribute", "", "Ranking basis: absolute|delta|transformed_delta (required)")
	cmd.Flags().StringVar(&q.TimeRange, "time-range", "", "Chart period: day|week|month|quarter|year (required)")
	cmd.Flags().StringVar(&q.Measure, "measure", "", measureUsage)
	cmd.Flags().StringVar(&q.Date, "date", "", "Start of the chart period: YYYY-MM-DD or relative, e.g. 1w ago (required)")
	cmd.Flags().StringVar(&q.Category, "category", "", "Category ID to filter by")
	cmd.Flags().StringSliceVar(regions, "regions", nil, "Region codes; omit or pass WW for worldwide")
	cmd.Flags().StringVar(&q.DeviceType, "device-type", "", "Device filter: iphone|ipad|total|total_unified (defaults per platform)")
	cmd.Flags().StringVar(&q.CustomFieldsFilterID, "custom-fields-filter-id", "", "Saved custom filter ID")
	cmd.Flags().StringVar(&q.CustomTagsMode, "custom-tags-mode", "", "Tags mode for the custom filter (required with a filter on unified)")
}

// bindOptionalInt wires an int flag into a *int query field only when the
// user actually set it.
func bindOptionalInt(cmd *cobra.Command, name, usage string, target **int) {
	value := cmd.Flags().Int(name, 0, usage)
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed(name) {
			*target = value
		}
		return run(cmd, args)
	}
}

func newTopActiveUsersCmd() *cobra.Command {
	var q api.TopChartsQuery
	var regions []string

	cmd := &cobra.Command{
		Use:     "active-users",
		Aliases: []string{"users"},
		Short:   "Top apps by active users",
		Example: `  # Top iOS apps by monthly active users in the US
  st top active-users --os ios --comparison-attribute absolute \
    --time-range month --measure MAU --date 2024-01-01 --regions US

  # Worldwide unified chart with a custom filter
  st top active-users --os unified --comparison-attribute delta \
    --time-range week --measure DAU --date 2024-01-01 \
    --custom-fields-filter-id 5f1a... --custom-tags-mode include`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.Regions = splitCSV(regions)
			if err := resolveDates(&q.Date); err != nil {
				return err
			}

			tbl, err := getClient().Top().ActiveUsers(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printTable(cmd, tbl)
		},
	}

	topChartFlags(cmd, &q, &regions, "User measure: DAU|WAU|MAU (required)")
	bindOptionalInt(cmd, "limit", "Maximum number of rows to return", &q.Limit)
	bindOptionalInt(cmd, "offset", "Number of rows to skip", &q.Offset)

	return cmd
}

func newTopPublishersCmd() *cobra.Command {
	var q api.TopChartsQuery
	var regions []string

	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "Top publishers by downloads or revenue",
		Example: `  # Top Android publishers by quarterly revenue
  st top publishers --os android --comparison-attribute absolute \
    --time-range quarter --measure revenue --date 2024-01-01

  # Top 10 iOS publishers by weekly download growth
  st top publishers --os ios --comparison-attribute delta \
    --time-range week --measure units --date 2024-01-01 --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.Regions = splitCSV(regions)
			if err := resolveDates(&q.Date); err != nil {
				return err
			}

			tbl, err := getClient().Top().Publishers(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printTable(cmd, tbl)
		},
	}

	topChartFlags(cmd, &q, &regions, "Sales measure: units|revenue (required)")
	bindOptionalInt(cmd, "limit", "Maximum number of rows to return", &q.Limit)
	bindOptionalInt(cmd, "offset", "Number of rows to skip", &q.Offset)

	return cmd
}
