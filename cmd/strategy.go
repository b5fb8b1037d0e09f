package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	strategyJurisdictions []string
	strategyTrade         string
	strategyJSON          bool
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Derive pricing strategy across jurisdictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEngines()
		if err != nil {
			return err
		}

		s := env.advisor.Strategize(strategyJurisdictions, strategyTrade)

		if strategyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}

		fmt.Printf("%s market: %d jurisdictions, average charge %s\n",
			s.JobType, s.MarketSize, usd(s.AverageCharge))
		if s.MarketSize > 0 {
			fmt.Printf("Best margin %d%% (%s), worst %d%% (%s), fastest approvals in %s\n\n",
				s.BestMargin.MarginPct, s.BestMargin.Jurisdiction,
				s.WorstMargin.MarginPct, s.WorstMargin.Jurisdiction,
				s.FastestJurisdiction)
		}
		for _, r := range s.Recommendations {
			fmt.Printf("%-22s %-16s charge %-8s  %s\n",
				r.Jurisdiction, r.Position, usd(r.RecommendedCharge), r.Advice)
		}
		return nil
	},
}

func init() {
	strategyCmd.Flags().StringSliceVar(&strategyJurisdictions, "jurisdictions", nil, `jurisdictions as "City, ST" (required)`)
	strategyCmd.Flags().StringVar(&strategyTrade, "trade", "", "job type, e.g. Electrical (required)")
	strategyCmd.Flags().BoolVar(&strategyJSON, "json", false, "print full JSON instead of the summary")
	_ = strategyCmd.MarkFlagRequired("jurisdictions")
	_ = strategyCmd.MarkFlagRequired("trade")
	rootCmd.AddCommand(strategyCmd)
}
