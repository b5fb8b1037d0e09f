package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// usd formats a whole-dollar amount with thousands separators.
func usd(amount int) string {
	return usdPrinter.Sprintf("$%d", amount)
}
