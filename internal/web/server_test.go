package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"flipcalc/internal/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewServer(st).Router()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateExampleScenario(t *testing.T) {
	h := newTestServer(t)

	arv, rehab, purchase := 200000.0, 10000.0, 80000.0
	rec := postJSON(t, h, "/v1/evaluate", ScenarioRequest{
		Mode: "rehab", ARV: &arv, Rehab: &rehab, Purchase: &purchase,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Outcome.Category != "fully_fundable" {
		t.Fatalf("category = %q, want fully_fundable", resp.Outcome.Category)
	}
	if resp.Derived.AsIsValue == nil || *resp.Derived.AsIsValue != 130000 {
		t.Fatalf("as_is_value = %v, want 130000", resp.Derived.AsIsValue)
	}
	if resp.Derived.TotalLoan == nil || *resp.Derived.TotalLoan != 114000 {
		t.Fatalf("total_loan = %v, want 114000", resp.Derived.TotalLoan)
	}
}

func TestEvaluateIncompleteScenario(t *testing.T) {
	h := newTestServer(t)

	rec := postJSON(t, h, "/v1/evaluate", ScenarioRequest{Mode: "rehab"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Outcome.Category != "none" {
		t.Fatalf("category = %q, want none", resp.Outcome.Category)
	}
	if resp.Derived.Depth != nil {
		t.Fatalf("depth = %v, want null", *resp.Derived.Depth)
	}
}

func TestEvaluateNoRehabMode(t *testing.T) {
	h := newTestServer(t)

	value := 100000.0
	rec := postJSON(t, h, "/v1/evaluate", ScenarioRequest{Mode: "no-rehab", NoRehabValue: &value})

	var resp EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Outcome.Category != "no_rehab_funded" {
		t.Fatalf("category = %q, want no_rehab_funded", resp.Outcome.Category)
	}
	if resp.Outcome.NoRehabLoan == nil || *resp.Outcome.NoRehabLoan != 70000 {
		t.Fatalf("no_rehab_loan = %v, want 70000", resp.Outcome.NoRehabLoan)
	}
}

func TestEvaluateRejectsBadJSON(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestScenarioLifecycle(t *testing.T) {
	h := newTestServer(t)

	arv, rehab, purchase := 200000.0, 10000.0, 80000.0
	rec := postJSON(t, h, "/v1/scenarios", SaveScenarioRequest{
		Name: "maple st",
		Scenario: ScenarioRequest{
			Mode: "rehab", ARV: &arv, Rehab: &rehab, Purchase: &purchase,
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201", rec.Code)
	}

	var created SavedPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created scenario has empty id")
	}
	if created.Category != "fully_fundable" {
		t.Fatalf("category = %q, want fully_fundable", created.Category)
	}

	// List contains it
	req := httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var list []SavedPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("list = %+v, want the created scenario", list)
	}

	// Get by id
	req = httptest.NewRequest(http.MethodGet, "/v1/scenarios/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	// Delete
	req = httptest.NewRequest(http.MethodDelete, "/v1/scenarios/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/scenarios/"+created.ID, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestSaveRequiresName(t *testing.T) {
	h := newTestServer(t)

	rec := postJSON(t, h, "/v1/scenarios", SaveScenarioRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
