package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/store"
)

var (
	priceJurisdiction string
	priceTrade        string
	priceValue        float64
	priceRecord       bool
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a permit job for one jurisdiction",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEngines()
		if err != nil {
			return err
		}

		result := env.pricer.Price(priceJurisdiction, priceTrade, priceValue)

		if result.DataQuality.Estimated() {
			zap.L().Warn("jurisdiction priced from regional estimate",
				zap.String("requested", result.RequestedJurisdiction),
				zap.String("resolved", result.Jurisdiction),
			)
		}

		if priceRecord {
			st, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.RecordQuote(cmd.Context(), store.QuoteRecord{
				RequestedJurisdiction: result.RequestedJurisdiction,
				Jurisdiction:          result.Jurisdiction,
				Trade:                 string(result.Trade),
				ProjectValue:          result.ProjectValue,
				PermitFee:             result.PermitFee,
				RecommendedCharge:     result.RecommendedCharge,
				ProfitMarginPct:       result.ProfitMarginPct,
				DataQuality:           result.DataQuality.Quality,
			})
			if err != nil {
				return eris.Wrap(err, "record quote")
			}
			zap.L().Info("quote recorded", zap.String("id", id))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	priceCmd.Flags().StringVar(&priceJurisdiction, "jurisdiction", "", `jurisdiction as "City, ST" (required)`)
	priceCmd.Flags().StringVar(&priceTrade, "trade", "", "job type, e.g. Electrical (required)")
	priceCmd.Flags().Float64Var(&priceValue, "value", 0, "project value in dollars")
	priceCmd.Flags().BoolVar(&priceRecord, "record", false, "log the quote to the analytics store")
	_ = priceCmd.MarkFlagRequired("jurisdiction")
	_ = priceCmd.MarkFlagRequired("trade")
	rootCmd.AddCommand(priceCmd)
}
