package service

import "membrane-calculator/domain"

// activeFactors are the rates and emission factors in effect for one
// evaluation. Electricity always applies to cooling.
type activeFactors struct {
	heatRate    float64
	gasRate     float64
	co2Heat     float64
	co2Gas      float64
	elRate      float64
	co2Electric float64
}

func selectActiveFactors(p domain.ParameterSet) activeFactors {
	f := activeFactors{
		elRate:      p.RateElectricity,
		co2Electric: p.Co2Electricity,
	}

	switch p.EnergyType {
	case domain.PrimaryHeat:
		f.heatRate = p.RateHeat
		f.co2Heat = p.Co2Heat
	case domain.NaturalGas:
		f.gasRate = p.RateGas
		f.co2Gas = p.Co2Gas
	}

	return f
}

// Evaluate computes the savings metrics and the cumulative savings projection
// for one parameter set. It never fails and does not validate ranges.
func Evaluate(p domain.ParameterSet) domain.ComputationResult {
	f := selectActiveFactors(p)

	annualEnergyCost := p.Area*p.HeatingConsumption*(f.heatRate+f.gasRate) +
		p.Area*p.CoolingConsumption*f.elRate

	totalCo2 := (p.Area*p.HeatingConsumption*f.co2Heat +
		p.Area*p.HeatingConsumption*f.co2Gas +
		p.Area*p.CoolingConsumption*f.co2Electric) / KilogramsPerTon

	annualCo2Tax := totalCo2 * p.Co2TaxRate
	totalCostBefore := annualEnergyCost + annualCo2Tax
	membraneInvestment := p.MembraneCostPerArea * p.Area
	totalCostAfter := totalCostBefore * (1 - p.SavingsPercent/PercentBase)
	yearlySavings := totalCostBefore - totalCostAfter

	// 0 doubles as "never pays back" when there are no savings.
	breakEven := 0.0
	if yearlySavings > 0 {
		breakEven = membraneInvestment / yearlySavings
	}

	return domain.ComputationResult{
		MembraneInvestment:   membraneInvestment,
		AnnualEnergyCost:     annualEnergyCost,
		TotalCo2EmissionTons: totalCo2,
		AnnualCo2Tax:         annualCo2Tax,
		TotalCostBefore:      totalCostBefore,
		TotalCostAfter:       totalCostAfter,
		YearlySavings:        yearlySavings,
		BreakEvenYears:       breakEven,
		SavingsSeries:        savingsSeries(yearlySavings),
	}
}

func savingsSeries(yearlySavings float64) []domain.SavingsPoint {
	series := make([]domain.SavingsPoint, ProjectionYears)
	for i := range series {
		year := i + 1
		series[i] = domain.SavingsPoint{
			Year:              year,
			CumulativeSavings: yearlySavings * float64(year),
		}
	}
	return series
}
