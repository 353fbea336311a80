package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"membrane-calculator/domain"
	"membrane-calculator/metrics"
	"membrane-calculator/repository"
)

var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrPresetNotFound    = errors.New("preset not found")
)

type SavingsService struct {
	presets  repository.PresetRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	evaluate func(domain.ParameterSet) domain.ComputationResult
}

// NewSavingsService creates a SavingsService. cache may be nil, in which case
// every call evaluates the model.
func NewSavingsService(
	presets repository.PresetRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *SavingsService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &SavingsService{
		presets:  presets,
		cache:    cache,
		cacheTTL: cacheTTL,
		evaluate: Evaluate,
	}
}

// ValidateParameters rejects what cannot be evaluated: an unknown energy type
// or a value that is not a finite number. Ranges are not checked.
func ValidateParameters(p domain.ParameterSet) error {
	if !p.EnergyType.Valid() {
		return fmt.Errorf("%w: energyType is not set", ErrInvalidParameters)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"area", p.Area},
		{"heatingConsumption", p.HeatingConsumption},
		{"coolingConsumption", p.CoolingConsumption},
		{"rateHeat", p.RateHeat},
		{"rateGas", p.RateGas},
		{"rateElectricity", p.RateElectricity},
		{"co2Heat", p.Co2Heat},
		{"co2Gas", p.Co2Gas},
		{"co2Electricity", p.Co2Electricity},
		{"membraneCostPerArea", p.MembraneCostPerArea},
		{"savingsPercent", p.SavingsPercent},
		{"co2TaxRate", p.Co2TaxRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidParameters, f.name)
		}
	}

	return nil
}

// checkFinite rejects results that overflowed while evaluating finite input.
func checkFinite(r domain.ComputationResult) error {
	values := []float64{
		r.MembraneInvestment,
		r.AnnualEnergyCost,
		r.TotalCo2EmissionTons,
		r.AnnualCo2Tax,
		r.TotalCostBefore,
		r.TotalCostAfter,
		r.YearlySavings,
		r.BreakEvenYears,
	}
	for _, p := range r.SavingsSeries {
		values = append(values, p.CumulativeSavings)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: result is not a finite number", ErrInvalidParameters)
		}
	}
	return nil
}

// Calculate evaluates the savings model, reusing a cached result for an
// identical parameter set.
func (s *SavingsService) Calculate(
	ctx context.Context,
	params domain.ParameterSet,
) (domain.ComputationResult, error) {

	if err := ValidateParameters(params); err != nil {
		return domain.ComputationResult{}, err
	}

	logger := zap.S().Named("savings_service")

	key, err := cacheKey(params)
	if err != nil {
		logger.Warnw("failed to build cache key", "error", err)
	}

	if s.cache != nil && key != "" {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.ComputationResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				metrics.IncreaseCacheLookupMetric(true)
				return result, nil
			}
			logger.Warnw("discarding unreadable cache entry", "key", key)
		}
		metrics.IncreaseCacheLookupMetric(false)
	}

	result := s.evaluate(params)
	if err := checkFinite(result); err != nil {
		return domain.ComputationResult{}, err
	}
	metrics.IncreaseEvaluationsMetric(params.EnergyType.String())
	metrics.ObserveBreakEven(result.BreakEvenYears)

	// Caching is not critical; the result is returned either way.
	if s.cache != nil && key != "" {
		encoded, err := json.Marshal(result)
		if err == nil {
			err = s.cache.Set(ctx, key, string(encoded), s.cacheTTL)
		}
		if err != nil {
			logger.Warnw("failed to cache result", "key", key, "error", err)
		}
	}

	return result, nil
}

func (s *SavingsService) Preset(ctx context.Context, name string) (domain.Preset, error) {
	preset, ok := s.presets.Get(ctx, name)
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return preset, nil
}

// CalculatePreset evaluates a stored preset.
func (s *SavingsService) CalculatePreset(
	ctx context.Context,
	name string,
) (domain.Preset, domain.ComputationResult, error) {
	preset, err := s.Preset(ctx, name)
	if err != nil {
		return domain.Preset{}, domain.ComputationResult{}, err
	}

	result, err := s.Calculate(ctx, preset.Parameters)
	if err != nil {
		return domain.Preset{}, domain.ComputationResult{}, fmt.Errorf("preset %s: %w", name, err)
	}
	return preset, result, nil
}

func (s *SavingsService) Presets(ctx context.Context) ([]domain.Preset, error) {
	return s.presets.List(ctx)
}

func cacheKey(params domain.ParameterSet) (string, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%016x", CacheKeyPrefix, xxhash.Sum64(encoded)), nil
}
