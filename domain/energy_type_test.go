package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnergyType(t *testing.T) {
	tests := []struct {
		in   string
		want EnergyType
	}{
		{"primary_heat", PrimaryHeat},
		{"natural_gas", NaturalGas},
		{"Fjernvarme + El", PrimaryHeat},
		{"Naturgas + El", NaturalGas},
	}
	for _, tt := range tests {
		got, err := ParseEnergyType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseEnergyType("kul")
	assert.Error(t, err)
}

func TestEnergyType_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Type EnergyType `json:"type"`
	}{NaturalGas})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"natural_gas"}`, string(data))

	_, err = json.Marshal(EnergyTypeUnknown)
	assert.Error(t, err)
}

func TestEnergyType_Label(t *testing.T) {
	assert.Equal(t, "Fjernvarme + El", PrimaryHeat.Label())
	assert.Equal(t, "Naturgas + El", NaturalGas.Label())
	assert.False(t, EnergyTypeUnknown.Valid())
	assert.Equal(t, "unknown", EnergyTypeUnknown.String())
}

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()

	require.Len(t, presets, 2)
	assert.Equal(t, PrimaryHeat, presets[0].Parameters.EnergyType)
	assert.Equal(t, NaturalGas, presets[1].Parameters.EnergyType)
	assert.Equal(t, 5000.0, presets[1].Parameters.Area)
}
