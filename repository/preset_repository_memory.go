package repository

import (
	"context"
	"sort"

	"membrane-calculator/domain"
)

// PresetRepositoryMemory is a read-only, in-memory PresetRepository.
type PresetRepositoryMemory struct {
	presets map[string]domain.Preset
}

// NewPresetRepositoryMemory stores the given presets. Later entries win on
// duplicate names, so file presets can override the built-in ones.
func NewPresetRepositoryMemory(presets ...domain.Preset) *PresetRepositoryMemory {
	r := &PresetRepositoryMemory{
		presets: make(map[string]domain.Preset, len(presets)),
	}
	for _, p := range presets {
		r.presets[p.Name] = p
	}
	return r
}

func (r *PresetRepositoryMemory) Get(_ context.Context, name string) (domain.Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// List returns presets sorted by name.
func (r *PresetRepositoryMemory) List(_ context.Context) ([]domain.Preset, error) {
	presets := make([]domain.Preset, 0, len(r.presets))
	for _, p := range r.presets {
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}
