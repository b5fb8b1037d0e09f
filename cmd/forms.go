package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permitdesk/permit-cli/internal/model"
)

var (
	formsJurisdiction string
	formsTrade        string
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "List the form packet required to pull a permit",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEngines()
		if err != nil {
			return err
		}

		trade, _ := model.ParseTrade(formsTrade)
		packet := env.forms.Packet(formsJurisdiction, trade)

		fmt.Printf("%s / %s: %d forms\n", formsJurisdiction, trade, len(packet))
		for _, f := range packet {
			notary := ""
			if f.Notarized {
				notary = " (notarization required)"
			}
			fmt.Printf("  %-8s %s - %s%s\n", f.ID, f.Name, f.Agency, notary)
		}
		return nil
	},
}

func init() {
	formsCmd.Flags().StringVar(&formsJurisdiction, "jurisdiction", "", `jurisdiction as "City, ST" (required)`)
	formsCmd.Flags().StringVar(&formsTrade, "trade", "", "job type, e.g. Electrical (required)")
	_ = formsCmd.MarkFlagRequired("jurisdiction")
	_ = formsCmd.MarkFlagRequired("trade")
	rootCmd.AddCommand(formsCmd)
}
