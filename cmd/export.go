package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/export"
)

var (
	exportJurisdictions []string
	exportTrade         string
	exportOut           string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a jurisdiction comparison to XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEngines()
		if err != nil {
			return err
		}

		result := env.comparer.Compare(exportJurisdictions, exportTrade)
		if err := export.WriteComparison(result, exportOut); err != nil {
			return err
		}

		zap.L().Info("comparison exported",
			zap.String("path", exportOut),
			zap.Int("jurisdictions", len(result.Comparisons)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportJurisdictions, "jurisdictions", nil, `jurisdictions as "City, ST" (required)`)
	exportCmd.Flags().StringVar(&exportTrade, "trade", "", "job type, e.g. Electrical (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "comparison.xlsx", "output file path")
	_ = exportCmd.MarkFlagRequired("jurisdictions")
	_ = exportCmd.MarkFlagRequired("trade")
	rootCmd.AddCommand(exportCmd)
}
