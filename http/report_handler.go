package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"membrane-calculator/domain"
	"membrane-calculator/metrics"
	"membrane-calculator/report"
	"membrane-calculator/service"
)

type ReportRequest struct {
	Format     string               `json:"format" validate:"required,oneof=pdf xlsx"`
	Preset     string               `json:"preset,omitempty" validate:"omitempty,max=64"`
	Parameters *domain.ParameterSet `json:"parameters,omitempty"`
}

type ReportHandler struct {
	service   *service.SavingsService
	validator *validator.Validate
}

func NewReportHandler(service *service.SavingsService) *ReportHandler {
	return &ReportHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Generate renders the savings report. A preset takes precedence over
// inline parameters.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	defaults := domain.DefaultParameters()
	req := ReportRequest{Parameters: &defaults}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Format = strings.ToLower(req.Format)
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var (
		params domain.ParameterSet
		result domain.ComputationResult
		err    error
	)
	if req.Preset != "" {
		var preset domain.Preset
		preset, result, err = h.service.CalculatePreset(r.Context(), req.Preset)
		params = preset.Parameters
	} else {
		if req.Parameters == nil {
			req.Parameters = &defaults
		}
		params = *req.Parameters
		result, err = h.service.Calculate(r.Context(), params)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data, contentType, err := report.Generate(req.Format, params, result)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	metrics.IncreaseReportsMetric(req.Format)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="membran-besparelse.`+req.Format+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
