// Package web exposes the calculator as an embeddable JSON API.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"flipcalc/internal/deal"
	"flipcalc/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds the HTTP handlers and their dependencies. The store may be
// nil, in which case the scenario endpoints respond 503.
type Server struct {
	store *store.Store
}

// NewServer creates a server backed by the given scenario store.
func NewServer(st *store.Store) *Server {
	return &Server{store: st}
}

// Router builds the chi router for all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/v1/health", s.handleHealth)
	r.Post("/v1/evaluate", s.handleEvaluate)
	r.Get("/v1/scenarios", s.handleListScenarios)
	r.Post("/v1/scenarios", s.handleSaveScenario)
	r.Get("/v1/scenarios/{id}", s.handleGetScenario)
	r.Delete("/v1/scenarios/{id}", s.handleDeleteScenario)

	return r
}

// ScenarioRequest is the wire form of a scenario. Absent or null amounts are
// unset, matching the core's semantics.
type ScenarioRequest struct {
	Mode         string   `json:"mode,omitempty"`
	ARV          *float64 `json:"arv"`
	Rehab        *float64 `json:"rehab"`
	Purchase     *float64 `json:"purchase"`
	NoRehabValue *float64 `json:"no_rehab_value"`
}

func (sr ScenarioRequest) scenario() deal.Scenario {
	return deal.Scenario{
		Mode:         deal.ModeFromString(sr.Mode),
		ARV:          sr.ARV,
		Rehab:        sr.Rehab,
		Purchase:     sr.Purchase,
		NoRehabValue: sr.NoRehabValue,
	}
}

// DerivedPayload mirrors deal.DerivedValues; null fields are unset.
type DerivedPayload struct {
	AsIsValue    *float64 `json:"as_is_value"`
	PurchaseDraw *float64 `json:"purchase_draw"`
	TotalLoan    *float64 `json:"total_loan"`
	Downpayment  *float64 `json:"downpayment"`
	Depth        *float64 `json:"depth"`
	NoRehabLoan  *float64 `json:"no_rehab_loan"`
}

// OutcomePayload carries the category and its display values.
type OutcomePayload struct {
	Category     string   `json:"category"`
	AsIsValue    *float64 `json:"as_is_value,omitempty"`
	PurchaseDraw *float64 `json:"purchase_draw,omitempty"`
	Rehab        *float64 `json:"rehab,omitempty"`
	TotalLoan    *float64 `json:"total_loan,omitempty"`
	Downpayment  *float64 `json:"downpayment,omitempty"`
	Depth        *float64 `json:"depth,omitempty"`
	NoRehabLoan  *float64 `json:"no_rehab_loan,omitempty"`
}

// EvaluateResponse is the full evaluation result.
type EvaluateResponse struct {
	Mode    string         `json:"mode"`
	Derived DerivedPayload `json:"derived"`
	Outcome OutcomePayload `json:"outcome"`
}

func evaluate(sc deal.Scenario) EvaluateResponse {
	d := deal.Derive(sc)
	o := deal.Classify(sc, d)

	return EvaluateResponse{
		Mode: sc.Mode.String(),
		Derived: DerivedPayload{
			AsIsValue:    d.AsIsValue,
			PurchaseDraw: d.PurchaseDraw,
			TotalLoan:    d.TotalLoan,
			Downpayment:  d.Downpayment,
			Depth:        d.Depth,
			NoRehabLoan:  d.NoRehabLoan,
		},
		Outcome: OutcomePayload{
			Category:     o.Category.String(),
			AsIsValue:    o.AsIsValue,
			PurchaseDraw: o.PurchaseDraw,
			Rehab:        o.Rehab,
			TotalLoan:    o.TotalLoan,
			Downpayment:  o.Downpayment,
			Depth:        o.Depth,
			NoRehabLoan:  o.NoRehabLoan,
		},
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, evaluate(req.scenario()))
}

// SavedPayload is the wire form of an archived scenario.
type SavedPayload struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Scenario  ScenarioRequest `json:"scenario"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

func savedPayload(sv store.Saved) SavedPayload {
	return SavedPayload{
		ID:   sv.ID,
		Name: sv.Name,
		Scenario: ScenarioRequest{
			Mode:         sv.Scenario.Mode.String(),
			ARV:          sv.Scenario.ARV,
			Rehab:        sv.Scenario.Rehab,
			Purchase:     sv.Scenario.Purchase,
			NoRehabValue: sv.Scenario.NoRehabValue,
		},
		Category:  sv.Category.String(),
		CreatedAt: sv.CreatedAt,
	}
}

// SaveScenarioRequest names a scenario to archive.
type SaveScenarioRequest struct {
	Name     string          `json:"name"`
	Scenario ScenarioRequest `json:"scenario"`
}

func (s *Server) handleListScenarios(w http.ResponseWriter, _ *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scenario store not available")
		return
	}
	saved, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing scenarios")
		return
	}
	payloads := make([]SavedPayload, 0, len(saved))
	for _, sv := range saved {
		payloads = append(payloads, savedPayload(sv))
	}
	writeJSON(w, http.StatusOK, payloads)
}

func (s *Server) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scenario store not available")
		return
	}
	var req SaveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := s.store.Save(req.Name, req.Scenario.scenario())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving scenario")
		return
	}
	sv, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading saved scenario")
		return
	}
	writeJSON(w, http.StatusCreated, savedPayload(sv))
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scenario store not available")
		return
	}
	sv, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "scenario not found")
		return
	}
	writeJSON(w, http.StatusOK, savedPayload(sv))
}

func (s *Server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scenario store not available")
		return
	}
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "deleting scenario")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
