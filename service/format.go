package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"membrane-calculator/domain"
)

// The calculator is displayed in Danish only.
var displayPrinter = message.NewPrinter(language.Danish)

// FormatAmount formats like the widget's locale string: grouped thousands and
// at most three decimals.
func FormatAmount(v float64) string {
	return displayPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatFixed formats with exactly digits decimals.
func FormatFixed(v float64, digits int) string {
	return displayPrinter.Sprintf("%v", number.Decimal(v, number.Scale(digits)))
}

// Summarize renders the headline metrics of a result for display.
func Summarize(r domain.ComputationResult) domain.Summary {
	return domain.Summary{
		MembranePrice:   FormatAmount(r.MembraneInvestment),
		Co2Before:       FormatFixed(r.TotalCo2EmissionTons, 2),
		Co2Tax:          FormatAmount(r.AnnualCo2Tax),
		TotalCostBefore: FormatAmount(r.TotalCostBefore),
		TotalCostAfter:  FormatAmount(r.TotalCostAfter),
		YearlySavings:   FormatAmount(r.YearlySavings),
		BreakEven:       FormatFixed(r.BreakEvenYears, 1),
	}
}
