package domain

import "fmt"

// EnergyType selects which heating rate and emission factor is active.
// Cooling is always electric and does not depend on it.
type EnergyType int

const (
	EnergyTypeUnknown EnergyType = iota
	PrimaryHeat
	NaturalGas
)

var energyTypeNames = map[EnergyType]string{
	PrimaryHeat: "primary_heat",
	NaturalGas:  "natural_gas",
}

var energyTypeLabels = map[EnergyType]string{
	PrimaryHeat: "Fjernvarme + El",
	NaturalGas:  "Naturgas + El",
}

// ParseEnergyType accepts the canonical names and the Danish display labels.
func ParseEnergyType(s string) (EnergyType, error) {
	for t, name := range energyTypeNames {
		if s == name || s == energyTypeLabels[t] {
			return t, nil
		}
	}
	return EnergyTypeUnknown, fmt.Errorf("unknown energy type %q", s)
}

func (t EnergyType) Valid() bool {
	_, ok := energyTypeNames[t]
	return ok
}

func (t EnergyType) String() string {
	if name, ok := energyTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Label is the text shown in the widget's energy type selector.
func (t EnergyType) Label() string {
	return energyTypeLabels[t]
}

func (t EnergyType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid energy type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *EnergyType) UnmarshalText(text []byte) error {
	parsed, err := ParseEnergyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
