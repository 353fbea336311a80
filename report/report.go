package report

import (
	"fmt"
	"strings"

	"membrane-calculator/domain"
	"membrane-calculator/service"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"

	titleText       = "Membran Besparelses Kalkulator"
	yearLabel       = "År"
	savingsLabel    = "Akkumuleret besparelse (kr.)"
	seriesName      = "Besparelse"
	breakEvenLabel  = "Break-even"
	resultSheetName = "Resultat"
)

// Generate renders a report in the given format and returns its bytes and
// content type.
func Generate(format string, params domain.ParameterSet, result domain.ComputationResult) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case FormatPDF:
		data, err := PDF(params, result)
		return data, "application/pdf", err
	case FormatXLSX:
		data, err := XLSX(params, result)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	default:
		return nil, "", fmt.Errorf("unsupported report format %q", format)
	}
}

type row struct {
	label string
	value string
	raw   float64
}

// resultRows lists the headline metrics in display order.
func resultRows(result domain.ComputationResult) []row {
	summary := service.Summarize(result)
	return []row{
		{"Pris for membran (kr.)", summary.MembranePrice, result.MembraneInvestment},
		{"Årlig energiomkostning (kr.)", service.FormatAmount(result.AnnualEnergyCost), result.AnnualEnergyCost},
		{"Udledt CO2 før membran (tons/år)", summary.Co2Before, result.TotalCo2EmissionTons},
		{"CO2-afgift (kr./år)", summary.Co2Tax, result.AnnualCo2Tax},
		{"Total omkostning før membran (kr./år)", summary.TotalCostBefore, result.TotalCostBefore},
		{"Total omkostning efter membran (kr./år)", summary.TotalCostAfter, result.TotalCostAfter},
		{"Besparelse pr. år (kr.)", summary.YearlySavings, result.YearlySavings},
		{"Break-even (år)", summary.BreakEven, result.BreakEvenYears},
	}
}

func parameterRows(p domain.ParameterSet) []row {
	return []row{
		{"Bygningsareal (m²)", service.FormatAmount(p.Area), p.Area},
		{"Opvarmning (kWh/m²/år)", service.FormatAmount(p.HeatingConsumption), p.HeatingConsumption},
		{"Køling (kWh/m²/år)", service.FormatAmount(p.CoolingConsumption), p.CoolingConsumption},
		{"Fjernvarme (kr./kWh)", service.FormatAmount(p.RateHeat), p.RateHeat},
		{"Naturgas (kr./kWh)", service.FormatAmount(p.RateGas), p.RateGas},
		{"El (kr./kWh)", service.FormatAmount(p.RateElectricity), p.RateElectricity},
		{"CO2 fjernvarme (kg/kWh)", service.FormatAmount(p.Co2Heat), p.Co2Heat},
		{"CO2 naturgas (kg/kWh)", service.FormatAmount(p.Co2Gas), p.Co2Gas},
		{"CO2 el (kg/kWh)", service.FormatAmount(p.Co2Electricity), p.Co2Electricity},
		{"Membranpris (kr./m²)", service.FormatAmount(p.MembraneCostPerArea), p.MembraneCostPerArea},
		{"Energi-besparelse (%)", service.FormatAmount(p.SavingsPercent), p.SavingsPercent},
		{"CO2-afgift (kr./ton)", service.FormatAmount(p.Co2TaxRate), p.Co2TaxRate},
	}
}
