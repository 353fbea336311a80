package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membrane-calculator/domain"
	"membrane-calculator/repository"
)

type MockCache struct {
	Data      map[string]string
	SetCalled int
	ForceErr  bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.SetCalled++
	if m.ForceErr {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}

func newCountingService(cache repository.CacheRepository) (*SavingsService, *int) {
	calls := 0
	svc := NewSavingsService(
		repository.NewPresetRepositoryMemory(domain.DefaultPresets()...),
		cache,
		time.Minute,
	)
	svc.evaluate = func(p domain.ParameterSet) domain.ComputationResult {
		calls++
		return Evaluate(p)
	}
	return svc, &calls
}

func TestCalculate_UsesCache(t *testing.T) {
	cache := NewMockCache()
	svc, calls := newCountingService(cache)
	ctx := context.Background()

	first, err := svc.Calculate(ctx, scenarioParams())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalled)

	second, err := svc.Calculate(ctx, scenarioParams())
	require.NoError(t, err)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, first, second)
}

func TestCalculate_DifferentParamsMissCache(t *testing.T) {
	cache := NewMockCache()
	svc, calls := newCountingService(cache)
	ctx := context.Background()

	params := scenarioParams()
	_, err := svc.Calculate(ctx, params)
	require.NoError(t, err)

	params.Area = 6000
	_, err = svc.Calculate(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, 2, *calls)
	assert.Len(t, cache.Data, 2)
}

func TestCalculate_CacheFailureIsNotFatal(t *testing.T) {
	cache := NewMockCache()
	cache.ForceErr = true
	svc, _ := newCountingService(cache)

	result, err := svc.Calculate(context.Background(), scenarioParams())

	require.NoError(t, err)
	assert.InDelta(t, 200_287.5, result.YearlySavings, tolerance)
}

func TestCalculate_WithoutCache(t *testing.T) {
	svc, calls := newCountingService(nil)
	ctx := context.Background()

	_, err := svc.Calculate(ctx, scenarioParams())
	require.NoError(t, err)
	_, err = svc.Calculate(ctx, scenarioParams())
	require.NoError(t, err)

	assert.Equal(t, 2, *calls)
}

func TestCalculate_RejectsNonFinite(t *testing.T) {
	svc, calls := newCountingService(NewMockCache())

	params := scenarioParams()
	params.RateElectricity = math.NaN()
	_, err := svc.Calculate(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "rateElectricity")

	params = scenarioParams()
	params.Area = math.Inf(1)
	_, err = svc.Calculate(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	assert.Equal(t, 0, *calls)
}

func TestCalculate_RejectsOverflowingResult(t *testing.T) {
	cache := NewMockCache()
	svc, calls := newCountingService(cache)

	params := scenarioParams()
	params.Area = 1e200
	params.HeatingConsumption = 1e200

	_, err := svc.Calculate(context.Background(), params)

	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "result is not a finite number")
	assert.Equal(t, 1, *calls)
	assert.Equal(t, 0, cache.SetCalled)
}

func TestCalculate_RejectsMissingEnergyType(t *testing.T) {
	svc, _ := newCountingService(nil)

	params := scenarioParams()
	params.EnergyType = domain.EnergyTypeUnknown

	_, err := svc.Calculate(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestCalculate_NegativeValuesAreNotValidated(t *testing.T) {
	svc, _ := newCountingService(nil)

	params := scenarioParams()
	params.Area = -10

	_, err := svc.Calculate(context.Background(), params)
	assert.NoError(t, err)
}

func TestCalculatePreset(t *testing.T) {
	svc, _ := newCountingService(nil)
	ctx := context.Background()

	preset, result, err := svc.CalculatePreset(ctx, "naturgas")
	require.NoError(t, err)
	assert.Equal(t, domain.NaturalGas, preset.Parameters.EnergyType)
	assert.InDelta(t, 1_700_000, result.AnnualEnergyCost, tolerance)

	_, _, err = svc.CalculatePreset(ctx, "lager")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestPresets_SortedByName(t *testing.T) {
	svc, _ := newCountingService(nil)

	presets, err := svc.Presets(context.Background())
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "fjernvarme", presets[0].Name)
	assert.Equal(t, "naturgas", presets[1].Name)
}
