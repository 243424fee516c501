package store

import (
	"path/filepath"
	"testing"

	"flipcalc/internal/deal"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	var sc deal.Scenario
	sc.LoadExample()

	id, err := s.Save("maple st flip", sc)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "maple st flip" {
		t.Fatalf("Name = %q, want %q", got.Name, "maple st flip")
	}
	if got.Category != deal.FullyFundable {
		t.Fatalf("Category = %s, want fully_fundable", got.Category)
	}
	if got.Scenario.ARV == nil || *got.Scenario.ARV != deal.ExampleARV {
		t.Fatalf("ARV = %v, want %d", got.Scenario.ARV, deal.ExampleARV)
	}
	if got.Scenario.Mode != deal.RehabRequired {
		t.Fatalf("Mode = %s, want rehab", got.Scenario.Mode)
	}
}

func TestSavePreservesUnsetFields(t *testing.T) {
	s := openTestStore(t)

	arv := 200000.0
	sc := deal.Scenario{Mode: deal.NoRehab, ARV: &arv}

	id, err := s.Save("partial", sc)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Scenario.Rehab != nil || got.Scenario.Purchase != nil || got.Scenario.NoRehabValue != nil {
		t.Fatal("unset fields came back set")
	}
	if got.Scenario.Mode != deal.NoRehab {
		t.Fatalf("Mode = %s, want no-rehab", got.Scenario.Mode)
	}
	if got.Category != deal.NoOutcomeYet {
		t.Fatalf("Category = %s, want none for incomplete scenario", got.Category)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)

	var sc deal.Scenario
	sc.LoadExample()

	id1, err := s.Save("first", sc)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("second", sc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List len = %d, want 2", len(all))
	}

	if err := s.Delete(id1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("Count = %d, want 1", count)
	}

	// Deleting an id that no longer exists is fine.
	if err := s.Delete(id1); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}
