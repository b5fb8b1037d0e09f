package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jurisdictionsAll bool

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "List known jurisdictions and their data quality",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEngines()
		if err != nil {
			return err
		}

		snap := env.fees.Snapshot()
		tables := env.fees.Tables()

		keys := tables.CityKeys()
		if jurisdictionsAll {
			keys = tables.Keys()
		}

		for _, key := range keys {
			profile, quality := snap.Profile(key)
			fmt.Printf("%-24s %-20s confidence %-7s processing %s\n",
				key, quality.Quality, quality.Confidence, profile.ProcessingTime)
		}
		return nil
	},
}

func init() {
	jurisdictionsCmd.Flags().BoolVar(&jurisdictionsAll, "all", false, "include regional fallback buckets")
	rootCmd.AddCommand(jurisdictionsCmd)
}
