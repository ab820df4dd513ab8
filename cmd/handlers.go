package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/export"
	"github.com/plasma-forge/ellingham-cli/internal/model"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

// apiHandlers exposes the evaluator and registry over HTTP.
type apiHandlers struct {
	env *appEnv
}

func (h *apiHandlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *apiHandlers) listCompounds(w http.ResponseWriter, r *http.Request) {
	var summaries []model.Summary
	if category := r.URL.Query().Get("category"); category != "" {
		cat := model.Category(category)
		if !cat.Valid() {
			writeError(w, http.StatusBadRequest, "unknown category "+category)
			return
		}
		summaries = h.env.Registry.ListByCategory(cat)
	} else {
		summaries = h.env.Registry.List()
	}
	writeJSON(w, http.StatusOK, map[string]any{"compounds": summaries})
}

func (h *apiHandlers) registerCompound(w http.ResponseWriter, r *http.Request) {
	var rec model.CompoundRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.env.Registry.Register(r.Context(), rec); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"name": rec.Name})
}

func (h *apiHandlers) removeCompound(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.env.Registry.Remove(r.Context(), name); err != nil {
		if errors.Is(err, model.ErrCompoundNotFound) {
			writeError(w, http.StatusNotFound, "compound not found: "+name)
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *apiHandlers) curve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	names := q["compound"]
	if len(names) == 0 {
		writeError(w, http.StatusBadRequest, "at least one compound parameter is required")
		return
	}
	records := make([]*model.CompoundRecord, 0, len(names))
	for _, name := range names {
		rec, err := h.env.Registry.Get(name)
		if err != nil {
			writeError(w, http.StatusNotFound, "compound not found: "+name)
			return
		}
		records = append(records, rec)
	}

	var mode thermo.NormalizationMode
	if s := q.Get("normalize"); s != "" {
		m, err := thermo.ParseNormalizationMode(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown normalization mode "+s)
			return
		}
		mode = m
	}

	qp := &queryParser{q: q}
	req := export.Request{
		Records:   records,
		Normalize: mode,
		Range: model.TempRange{
			Min: qp.float("min", cfg.Eval.TempMinK),
			Max: qp.float("max", cfg.Eval.TempMaxK),
		},
		StepK: qp.float("step", cfg.Eval.StepK),
		Process: model.ProcessParameters{
			Field:  qp.float("field", cfg.Process.FieldVm/1e6) * 1e6,
			Radius: qp.float("radius", cfg.Process.RadiusM*1e6) * 1e-6,
			GasMix: q.Get("gas_mix"),
		},
	}
	if qp.err != nil {
		writeError(w, http.StatusBadRequest, qp.err.Error())
		return
	}

	series, err := export.BuildSeries(r.Context(), h.env.Eval, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	type seriesJSON struct {
		Name    string              `json:"name"`
		Formula string              `json:"formula"`
		Points  []thermo.CurvePoint `json:"points"`
		Unit    string              `json:"unit,omitempty"`
	}
	out := make([]seriesJSON, len(series))
	for i, s := range series {
		out[i] = seriesJSON{Name: s.Name, Formula: s.Formula, Points: s.Points, Unit: s.Unit}
	}
	writeJSON(w, http.StatusOK, map[string]any{"series": out})
}

func (h *apiHandlers) gasRatio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := q.Get("compound")
	if name == "" {
		writeError(w, http.StatusBadRequest, "compound parameter is required")
		return
	}
	rec, err := h.env.Registry.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "compound not found: "+name)
		return
	}

	qp := &queryParser{q: q}
	tempK := qp.float("temp", 1273.15)
	fieldVm := qp.float("field", cfg.Process.FieldVm/1e6) * 1e6
	radiusM := qp.float("radius", cfg.Process.RadiusM*1e6) * 1e-6
	if qp.err != nil {
		writeError(w, http.StatusBadRequest, qp.err.Error())
		return
	}

	off, err := h.env.Eval.OffEquilibrium(rec, tempK, fieldVm, radiusM)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	systems := model.GasSystems
	if requested := q["system"]; len(requested) > 0 {
		systems = make([]model.GasSystem, 0, len(requested))
		for _, s := range requested {
			sys, err := model.ParseGasSystem(s)
			if err != nil {
				writeError(w, http.StatusBadRequest, "unsupported gas system: "+s)
				return
			}
			systems = append(systems, sys)
		}
	}

	ratios, err := h.env.Eval.GasRatios(off.Effective, systems, tempK)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"compound":    rec.Name,
		"temp_k":      tempK,
		"dg_eff":      off.Effective,
		"feasibility": h.env.Eval.Feasibility(off.Effective),
		"ratios":      ratios,
	})
}

// queryParser collects float query parameters, remembering the first
// malformed value instead of silently defaulting it.
type queryParser struct {
	q   url.Values
	err error
}

func (p *queryParser) float(key string, fallback float64) float64 {
	s := p.q.Get(key)
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if p.err == nil {
			p.err = eris.Errorf("invalid numeric parameter %q: %q", key, s)
		}
		return fallback
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
