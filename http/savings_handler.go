package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"membrane-calculator/domain"
	"membrane-calculator/service"
)

type SavingsHandler struct {
	service   *service.SavingsService
	explainer *service.ExplanationService
}

func NewSavingsHandler(
	service *service.SavingsService,
	explainer *service.ExplanationService,
) *SavingsHandler {
	return &SavingsHandler{service: service, explainer: explainer}
}

type EvaluateResponse struct {
	Preset          string                   `json:"preset,omitempty"`
	Parameters      domain.ParameterSet      `json:"parameters"`
	Result          domain.ComputationResult `json:"result"`
	Summary         domain.Summary           `json:"summary"`
	BreakEvenMarker float64                  `json:"breakEvenMarker"`
	Explanation     string                   `json:"explanation,omitempty"`
}

func (h *SavingsHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, domain.DefaultParameters())
}

func (h *SavingsHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.service.Presets(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	render.JSON(w, r, presets)
}

// Evaluate computes the result for the posted parameters. Fields left out of
// the body keep their default values.
func (h *SavingsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	params := domain.DefaultParameters()
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Calculate(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, h.response(r, "", params, result))
}

func (h *SavingsHandler) EvaluatePreset(w http.ResponseWriter, r *http.Request) {
	preset, result, err := h.service.CalculatePreset(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, h.response(r, preset.Name, preset.Parameters, result))
}

func (h *SavingsHandler) response(
	r *http.Request,
	preset string,
	params domain.ParameterSet,
	result domain.ComputationResult,
) EvaluateResponse {
	resp := EvaluateResponse{
		Preset:          preset,
		Parameters:      params,
		Result:          result,
		Summary:         service.Summarize(result),
		BreakEvenMarker: result.BreakEvenMarker(),
	}

	if explain, _ := strconv.ParseBool(r.URL.Query().Get("explain")); explain && h.explainer != nil {
		resp.Explanation = h.explainer.Explain(r.Context(), params, result)
	}
	return resp
}
