package repository

import "membrane-calculator/domain"

func presetNamed(name string, area float64) domain.Preset {
	params := domain.DefaultParameters()
	params.Area = area
	return domain.Preset{Name: name, Parameters: params}
}
