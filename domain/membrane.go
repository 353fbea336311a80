package domain

// ParameterSet is the full input of one savings evaluation.
// Rates are in kr./kWh, emission factors in kg CO2/kWh and consumption in kWh/m²/year.
type ParameterSet struct {
	Area                float64    `json:"area" yaml:"area"`
	EnergyType          EnergyType `json:"energyType" yaml:"energy_type"`
	HeatingConsumption  float64    `json:"heatingConsumption" yaml:"heating_consumption"`
	CoolingConsumption  float64    `json:"coolingConsumption" yaml:"cooling_consumption"`
	RateHeat            float64    `json:"rateHeat" yaml:"rate_heat"`
	RateGas             float64    `json:"rateGas" yaml:"rate_gas"`
	RateElectricity     float64    `json:"rateElectricity" yaml:"rate_electricity"`
	Co2Heat             float64    `json:"co2Heat" yaml:"co2_heat"`
	Co2Gas              float64    `json:"co2Gas" yaml:"co2_gas"`
	Co2Electricity      float64    `json:"co2Electricity" yaml:"co2_electricity"`
	MembraneCostPerArea float64    `json:"membraneCostPerArea" yaml:"membrane_cost_per_area"`
	SavingsPercent      float64    `json:"savingsPercent" yaml:"savings_percent"`
	Co2TaxRate          float64    `json:"co2TaxRate" yaml:"co2_tax_rate"`
}

type SavingsPoint struct {
	Year              int     `json:"year"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
}

// ComputationResult is derived from a ParameterSet in one pass and has no
// identity of its own.
type ComputationResult struct {
	MembraneInvestment   float64        `json:"membraneInvestment"`
	AnnualEnergyCost     float64        `json:"annualEnergyCost"`
	TotalCo2EmissionTons float64        `json:"totalCo2EmissionTons"`
	AnnualCo2Tax         float64        `json:"annualCo2Tax"`
	TotalCostBefore      float64        `json:"totalCostBefore"`
	TotalCostAfter       float64        `json:"totalCostAfter"`
	YearlySavings        float64        `json:"yearlySavings"`
	BreakEvenYears       float64        `json:"breakEvenYears"`
	SavingsSeries        []SavingsPoint `json:"savingsSeries"`
}

// BreakEvenMarker is the x position of the vertical break-even annotation on
// the savings chart. A value of 0 is also used when the membrane never pays back.
func (r ComputationResult) BreakEvenMarker() float64 {
	return r.BreakEvenYears
}

// PaysBack reports whether the yearly savings are positive, which is the only
// way to tell the 0 break-even sentinel apart from a real value.
func (r ComputationResult) PaysBack() bool {
	return r.YearlySavings > 0
}

// Summary holds the Danish display strings of the widget's result box.
type Summary struct {
	MembranePrice   string `json:"membranePrice"`
	Co2Before       string `json:"co2Before"`
	Co2Tax          string `json:"co2Tax"`
	TotalCostBefore string `json:"totalCostBefore"`
	TotalCostAfter  string `json:"totalCostAfter"`
	YearlySavings   string `json:"yearlySavings"`
	BreakEven       string `json:"breakEven"`
}

// Lines renders the summary the way the result box shows it.
func (s Summary) Lines() []string {
	return []string{
		"Pris for membran: " + s.MembranePrice + " kr.",
		"Udledt CO₂ før membran: " + s.Co2Before + " tons/år (" + s.Co2Tax + " kr.)",
		"Total omkostning før membran: " + s.TotalCostBefore + " kr./år",
		"Total omkostning efter membran: " + s.TotalCostAfter + " kr./år",
		"Besparelse pr. år: " + s.YearlySavings + " kr.",
		"Break-even: " + s.BreakEven + " år",
	}
}
