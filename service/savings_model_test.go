package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membrane-calculator/domain"
)

const tolerance = 1e-6

func scenarioParams() domain.ParameterSet {
	return domain.ParameterSet{
		Area:                5000,
		EnergyType:          domain.PrimaryHeat,
		HeatingConsumption:  200,
		CoolingConsumption:  50,
		RateHeat:            0.8,
		RateElectricity:     2.0,
		Co2Heat:             0.1,
		Co2Electricity:      0.07,
		MembraneCostPerArea: 450,
		SavingsPercent:      15,
		Co2TaxRate:          300,
	}
}

func TestEvaluate_PrimaryHeatScenario(t *testing.T) {
	result := Evaluate(scenarioParams())

	assert.InDelta(t, 1_300_000, result.AnnualEnergyCost, tolerance)
	assert.InDelta(t, 117.5, result.TotalCo2EmissionTons, tolerance)
	assert.InDelta(t, 35_250, result.AnnualCo2Tax, tolerance)
	assert.InDelta(t, 1_335_250, result.TotalCostBefore, tolerance)
	assert.InDelta(t, 2_250_000, result.MembraneInvestment, tolerance)
	assert.InDelta(t, 1_134_962.5, result.TotalCostAfter, tolerance)
	assert.InDelta(t, 200_287.5, result.YearlySavings, tolerance)
	assert.InDelta(t, 11.2338, result.BreakEvenYears, 1e-4)
	assert.Equal(t, result.BreakEvenYears, result.BreakEvenMarker())
	assert.True(t, result.PaysBack())
}

func TestEvaluate_NaturalGas(t *testing.T) {
	params := domain.DefaultParameters()
	params.EnergyType = domain.NaturalGas

	result := Evaluate(params)

	// 5000*200*1.2 + 5000*50*2.0
	assert.InDelta(t, 1_700_000, result.AnnualEnergyCost, tolerance)
	// (5000*200*0.22 + 5000*50*0.07) / 1000
	assert.InDelta(t, 237.5, result.TotalCo2EmissionTons, tolerance)
}

func TestEvaluate_InactiveFactorsIgnored(t *testing.T) {
	base := scenarioParams()
	changed := base
	changed.RateGas = 99
	changed.Co2Gas = 42

	assert.Equal(t, Evaluate(base), Evaluate(changed))

	gas := domain.DefaultParameters()
	gas.EnergyType = domain.NaturalGas
	gasChanged := gas
	gasChanged.RateHeat = 99
	gasChanged.Co2Heat = 42

	assert.Equal(t, Evaluate(gas), Evaluate(gasChanged))
}

func TestEvaluate_ElectricityAlwaysApplies(t *testing.T) {
	for _, energyType := range []domain.EnergyType{domain.PrimaryHeat, domain.NaturalGas} {
		params := domain.DefaultParameters()
		params.EnergyType = energyType
		params.HeatingConsumption = 0

		result := Evaluate(params)

		assert.InDelta(t, 5000*50*2.0, result.AnnualEnergyCost, tolerance, energyType.String())
		assert.InDelta(t, 5000*50*0.07/1000, result.TotalCo2EmissionTons, tolerance, energyType.String())
	}
}

func TestEvaluate_ZeroSavings(t *testing.T) {
	params := scenarioParams()
	params.SavingsPercent = 0

	result := Evaluate(params)

	assert.Equal(t, 0.0, result.YearlySavings)
	assert.Equal(t, 0.0, result.BreakEvenYears)
	assert.False(t, result.PaysBack())
	require.Len(t, result.SavingsSeries, ProjectionYears)
	for _, point := range result.SavingsSeries {
		assert.Equal(t, 0.0, point.CumulativeSavings)
	}
}

func TestEvaluate_NegativeSavingsBreakEvenIsZero(t *testing.T) {
	params := scenarioParams()
	params.SavingsPercent = -10

	result := Evaluate(params)

	assert.Less(t, result.YearlySavings, 0.0)
	assert.Equal(t, 0.0, result.BreakEvenYears)
}

func TestEvaluate_ZeroArea(t *testing.T) {
	params := scenarioParams()
	params.Area = 0

	result := Evaluate(params)

	assert.Equal(t, 0.0, result.MembraneInvestment)
	assert.Equal(t, 0.0, result.AnnualEnergyCost)
	assert.Equal(t, 0.0, result.TotalCo2EmissionTons)
	assert.Equal(t, 0.0, result.AnnualCo2Tax)
	assert.Equal(t, 0.0, result.TotalCostBefore)
	assert.Equal(t, 0.0, result.TotalCostAfter)
	assert.Equal(t, 0.0, result.YearlySavings)
	assert.Equal(t, 0.0, result.BreakEvenYears)
}

func TestEvaluate_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		params := domain.ParameterSet{
			Area:                rng.Float64() * 20000,
			EnergyType:          []domain.EnergyType{domain.PrimaryHeat, domain.NaturalGas}[rng.Intn(2)],
			HeatingConsumption:  rng.Float64() * 400,
			CoolingConsumption:  rng.Float64() * 100,
			RateHeat:            rng.Float64() * 3,
			RateGas:             rng.Float64() * 3,
			RateElectricity:     rng.Float64() * 3,
			Co2Heat:             rng.Float64(),
			Co2Gas:              rng.Float64(),
			Co2Electricity:      rng.Float64(),
			MembraneCostPerArea: rng.Float64() * 1000,
			SavingsPercent:      rng.Float64()*140 - 20,
			Co2TaxRate:          rng.Float64() * 1000,
		}

		result := Evaluate(params)

		if result.YearlySavings > 0 {
			assert.InDelta(t, result.MembraneInvestment/result.YearlySavings, result.BreakEvenYears, tolerance)
		} else {
			assert.Equal(t, 0.0, result.BreakEvenYears)
		}

		require.Len(t, result.SavingsSeries, ProjectionYears)
		for idx, point := range result.SavingsSeries {
			assert.Equal(t, idx+1, point.Year)
			assert.Equal(t, result.YearlySavings*float64(idx+1), point.CumulativeSavings)
		}

		// Same input, same output.
		assert.Equal(t, result, Evaluate(params))
	}
}
