package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/api"
)

func newAppsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "App metadata",
		Long:  "Look up store metadata for apps by ID.",
	}

	cmd.AddCommand(newAppsLookupCmd())
	return cmd
}

func newAppsLookupCmd() *cobra.Command {
	var q api.AppsQuery
	var appIDs []string

	cmd := &cobra.Command{
		Use:     "lookup",
		Aliases: []string{"get"},
		Short:   "Fetch metadata for one or more apps",
		Example: `  # iOS app metadata
  st apps lookup --os ios --app-ids 1234567890

  # Android metadata localized for Japan
  st apps lookup --os android --app-ids com.example.app --country JP`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.AppIDs = splitCSV(appIDs)

			tbl, err := getClient().Apps().Lookup(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printTable(cmd, tbl)
		},
	}

	cmd.Flags().StringVar(&q.OS, "os", "", "Platform: ios|android|unified (required)")
	cmd.Flags().StringSliceVar(&appIDs, "app-ids", nil, "App IDs, comma-separated or repeated (required)")
	cmd.Flags().StringVar(&q.Country, "country", "", "Country code for localized metadata")

	return cmd
}
