package cli

import (
	"context"

	"github.com/spf13/pflag"

	"membrane-calculator/domain"
	"membrane-calculator/service"
)

type parameterFlag struct {
	name  string
	usage string
	field func(*domain.ParameterSet) *float64
}

var parameterFlags = []parameterFlag{
	{"area", "Building area (m²)", func(p *domain.ParameterSet) *float64 { return &p.Area }},
	{"heating", "Heating consumption (kWh/m²/year)", func(p *domain.ParameterSet) *float64 { return &p.HeatingConsumption }},
	{"cooling", "Cooling consumption (kWh/m²/year)", func(p *domain.ParameterSet) *float64 { return &p.CoolingConsumption }},
	{"rate-heat", "District heating rate (kr./kWh)", func(p *domain.ParameterSet) *float64 { return &p.RateHeat }},
	{"rate-gas", "Natural gas rate (kr./kWh)", func(p *domain.ParameterSet) *float64 { return &p.RateGas }},
	{"rate-electricity", "Electricity rate (kr./kWh)", func(p *domain.ParameterSet) *float64 { return &p.RateElectricity }},
	{"co2-heat", "District heating emissions (kg CO2/kWh)", func(p *domain.ParameterSet) *float64 { return &p.Co2Heat }},
	{"co2-gas", "Natural gas emissions (kg CO2/kWh)", func(p *domain.ParameterSet) *float64 { return &p.Co2Gas }},
	{"co2-electricity", "Electricity emissions (kg CO2/kWh)", func(p *domain.ParameterSet) *float64 { return &p.Co2Electricity }},
	{"membrane-cost", "Membrane price (kr./m²)", func(p *domain.ParameterSet) *float64 { return &p.MembraneCostPerArea }},
	{"savings-percent", "Energy saved by the membrane (%)", func(p *domain.ParameterSet) *float64 { return &p.SavingsPercent }},
	{"co2-tax", "CO2 tax (kr./ton)", func(p *domain.ParameterSet) *float64 { return &p.Co2TaxRate }},
}

// parameterOptions collects a ParameterSet from flags. Only flags set on the
// command line override the preset or the defaults.
type parameterOptions struct {
	values     domain.ParameterSet
	energyType string
	preset     string
}

func (o *parameterOptions) register(fs *pflag.FlagSet) {
	defaults := domain.DefaultParameters()
	for _, f := range parameterFlags {
		fs.Float64Var(f.field(&o.values), f.name, *f.field(&defaults), f.usage)
	}
	fs.StringVar(&o.energyType, "energy-type", defaults.EnergyType.String(), "Energy type (primary_heat, natural_gas)")
	fs.StringVar(&o.preset, "preset", "", "Start from a named preset")
}

func (o *parameterOptions) resolve(
	ctx context.Context,
	fs *pflag.FlagSet,
	savings *service.SavingsService,
) (string, domain.ParameterSet, error) {
	params := domain.DefaultParameters()
	if o.preset != "" {
		preset, err := savings.Preset(ctx, o.preset)
		if err != nil {
			return "", domain.ParameterSet{}, err
		}
		params = preset.Parameters
	}

	for _, f := range parameterFlags {
		if fs.Changed(f.name) {
			*f.field(&params) = *f.field(&o.values)
		}
	}

	if fs.Changed("energy-type") {
		energyType, err := domain.ParseEnergyType(o.energyType)
		if err != nil {
			return "", domain.ParameterSet{}, err
		}
		params.EnergyType = energyType
	}

	return o.preset, params, nil
}
