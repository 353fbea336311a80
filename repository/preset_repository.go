package repository

import (
	"context"

	"membrane-calculator/domain"
)

type PresetRepository interface {
	Get(ctx context.Context, name string) (domain.Preset, bool)
	List(ctx context.Context) ([]domain.Preset, error)
}
