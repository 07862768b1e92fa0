package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/retention-atlas/pkg/adapters"
	"github.com/de-tools/retention-atlas/pkg/services/calculator"
	"github.com/de-tools/retention-atlas/pkg/services/segments"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	calc calculator.Service
}

func NewHandler(calc calculator.Service) *Handler {
	return &Handler{calc: calc}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	overview := h.calc.Overview(ctx)

	writeJSON(w, r, adapters.MapOverviewDomainToApi(overview))
}

func (h *Handler) ListSegments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	aov, err := parseOrderValue(r.URL.Query(), h.calc.Baseline().BaselineOrderValue)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	insights := h.calc.Segments(ctx, aov)
	writeJSON(w, r, adapters.MapSegmentInsightsDomainToApi(insights))
}

func (h *Handler) GetSegment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "segment")

	aov, err := parseOrderValue(r.URL.Query(), h.calc.Baseline().BaselineOrderValue)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	insight, err := h.calc.Segment(ctx, name, aov)
	if err != nil {
		if errors.Is(err, segments.ErrUnknownSegment) {
			http.Error(w, "segment not found: "+name, http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("segment", name).Msg("failed to resolve segment")
		http.Error(w, "failed to resolve segment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, adapters.MapSegmentInsightDomainToApi(insight))
}

func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := parseScenarioInputs(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := h.calc.Evaluate(ctx, in)
	writeJSON(w, r, adapters.MapScenarioReportDomainToApi(report))
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	logger := zerolog.Ctx(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}
