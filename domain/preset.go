package domain

// Preset is a named, read-only starting point for the calculator form.
type Preset struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  ParameterSet `json:"parameters" yaml:"parameters"`
}

// DefaultParameters returns the values the calculator form starts with.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		Area:                5000,
		EnergyType:          PrimaryHeat,
		HeatingConsumption:  200,
		CoolingConsumption:  50,
		RateHeat:            0.8,
		RateGas:             1.2,
		RateElectricity:     2.0,
		Co2Heat:             0.1,
		Co2Gas:              0.22,
		Co2Electricity:      0.07,
		MembraneCostPerArea: 450,
		SavingsPercent:      15,
		Co2TaxRate:          300,
	}
}

// DefaultPresets returns one preset per energy type built from DefaultParameters.
func DefaultPresets() []Preset {
	gas := DefaultParameters()
	gas.EnergyType = NaturalGas

	return []Preset{
		{
			Name:        "fjernvarme",
			Description: "Fjernvarme + El",
			Parameters:  DefaultParameters(),
		},
		{
			Name:        "naturgas",
			Description: "Naturgas + El",
			Parameters:  gas,
		},
	}
}
