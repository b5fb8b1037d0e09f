package main

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/permitdesk/permit-cli/internal/model"
	"github.com/permitdesk/permit-cli/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Administrative reports",
}

var (
	marketTrade  string
	marketValue  float64
	marketRecord bool
)

// marketCmd prices every curated jurisdiction for one trade,
// concurrently but bounded, and prints a ranked market sheet.
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Price every known jurisdiction for a trade",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := initEngines()
		if err != nil {
			return err
		}

		var st store.Store
		if marketRecord {
			if st, err = initStore(ctx); err != nil {
				return err
			}
			defer st.Close()
		}

		keys := env.fees.Tables().CityKeys()
		results := make([]model.PricingResult, len(keys))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Report.MaxConcurrent)

		var mu sync.Mutex
		for i, key := range keys {
			g.Go(func() error {
				pr := env.pricer.Price(key, marketTrade, marketValue)
				results[i] = pr

				if st == nil {
					return nil
				}
				mu.Lock()
				defer mu.Unlock()
				_, err := st.RecordQuote(gctx, store.QuoteRecord{
					RequestedJurisdiction: pr.RequestedJurisdiction,
					Jurisdiction:          pr.Jurisdiction,
					Trade:                 string(pr.Trade),
					ProjectValue:          pr.ProjectValue,
					PermitFee:             pr.PermitFee,
					RecommendedCharge:     pr.RecommendedCharge,
					ProfitMarginPct:       pr.ProfitMarginPct,
					DataQuality:           pr.DataQuality.Quality,
				})
				return eris.Wrapf(err, "record quote for %s", pr.Jurisdiction)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		sort.Slice(results, func(a, b int) bool {
			return results[a].RecommendedCharge < results[b].RecommendedCharge
		})

		trade, _ := model.ParseTrade(marketTrade)
		fmt.Printf("%s at %s project value, %d jurisdictions\n\n", trade, usd(int(marketValue)), len(results))
		for _, r := range results {
			fmt.Printf("%-24s fee %-8s charge %-8s margin %2d%%  %s\n",
				r.Jurisdiction, usd(r.PermitFee), usd(r.RecommendedCharge),
				r.ProfitMarginPct, r.ProcessingTime)
		}

		zap.L().Info("market report complete",
			zap.String("trade", string(trade)),
			zap.Int("jurisdictions", len(results)),
		)
		return nil
	},
}

var activityDays int

// activityCmd prints the quote/comparison rollup from the analytics store.
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Summarize recorded quote activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		since := time.Now().UTC().AddDate(0, 0, -activityDays)
		report, err := st.ActivityReport(ctx, since)
		if err != nil {
			return eris.Wrap(err, "activity report")
		}

		fmt.Printf("Activity since %s\n", since.Format("2006-01-02"))
		fmt.Printf("Quotes: %d  Comparisons: %d  Average charge: %s\n\n",
			report.TotalQuotes, report.TotalComparisons, usd(report.AverageCharge))

		fmt.Println("By trade:")
		for _, t := range report.ByTrade {
			fmt.Printf("  %-22s %4d quotes, avg charge %s\n", t.Trade, t.Quotes, usd(t.AvgCharge))
		}
		fmt.Println("By jurisdiction:")
		for _, j := range report.ByJurisdiction {
			fmt.Printf("  %-24s %4d quotes, avg charge %s\n", j.Jurisdiction, j.Quotes, usd(j.AvgCharge))
		}
		return nil
	},
}

func init() {
	marketCmd.Flags().StringVar(&marketTrade, "trade", "", "job type, e.g. Electrical (required)")
	marketCmd.Flags().Float64Var(&marketValue, "value", 5000, "project value in dollars")
	marketCmd.Flags().BoolVar(&marketRecord, "record", false, "log every quote to the analytics store")
	_ = marketCmd.MarkFlagRequired("trade")

	activityCmd.Flags().IntVar(&activityDays, "days", 30, "window size in days")

	reportCmd.AddCommand(marketCmd)
	reportCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(reportCmd)
}
