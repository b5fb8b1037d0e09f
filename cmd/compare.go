package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/store"
)

var (
	compareJurisdictions []string
	compareTrade         string
	compareRecord        bool
	compareJSON          bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare permit pricing across jurisdictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEngines()
		if err != nil {
			return err
		}

		result := env.comparer.Compare(compareJurisdictions, compareTrade)

		if compareRecord {
			st, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.RecordComparison(cmd.Context(), store.ComparisonRecord{
				JobType:        string(result.JobType),
				Jurisdictions:  compareJurisdictions,
				ReferenceValue: result.ReferenceValue,
				Variance:       result.Analysis.Variance,
			})
			if err != nil {
				return eris.Wrap(err, "record comparison")
			}
			zap.L().Info("comparison recorded", zap.String("id", id))
		}

		if compareJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("%s at %s reference value\n\n", result.JobType, usd(int(result.ReferenceValue)))
		for _, e := range result.Comparisons {
			fmt.Printf("%-22s fee %-8s charge %-8s margin %d%%  %s (fee rank %d, charge rank %d, speed rank %d)\n",
				e.Jurisdiction, usd(e.PermitFee), usd(e.RecommendedCharge),
				e.ProfitMarginPct, e.ProcessingTime,
				e.Rank.ByPermitFee, e.Rank.ByRecommendedCharge, e.Rank.ByProcessingTime)
		}
		fmt.Printf("\nCharge range %s - %s (variance %s), average %s\n",
			usd(result.Analysis.LowestRecommendedCharge), usd(result.Analysis.HighestRecommendedCharge),
			usd(result.Analysis.Variance), usd(result.Analysis.AverageRecommendedCharge))
		for _, d := range result.Differences {
			fmt.Printf("[%s] %s\n", d.Severity, d.Message)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringSliceVar(&compareJurisdictions, "jurisdictions", nil, `jurisdictions as "City, ST" (required)`)
	compareCmd.Flags().StringVar(&compareTrade, "trade", "", "job type, e.g. Electrical (required)")
	compareCmd.Flags().BoolVar(&compareRecord, "record", false, "log the comparison to the analytics store")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "print full JSON instead of the summary table")
	_ = compareCmd.MarkFlagRequired("jurisdictions")
	_ = compareCmd.MarkFlagRequired("trade")
	rootCmd.AddCommand(compareCmd)
}
