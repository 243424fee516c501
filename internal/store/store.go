// Package store provides a SQLite-backed archive of saved scenarios.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flipcalc/internal/deal"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists scenario snapshots.
type Store struct {
	db *sql.DB
}

// Saved is one archived scenario with the outcome category it classified to
// at save time.
type Saved struct {
	ID        string
	Name      string
	Scenario  deal.Scenario
	Category  deal.Category
	CreatedAt time.Time
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives a scenario snapshot under the given name and returns its id.
// The category is recomputed here so the stored row always matches the
// scenario it carries.
func (s *Store) Save(name string, sc deal.Scenario) (string, error) {
	id := uuid.NewString()
	outcome := deal.Classify(sc, deal.Derive(sc))
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.Exec(`INSERT INTO scenarios
		(id, name, mode, arv, rehab, purchase, no_rehab_value, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, sc.Mode.String(),
		nullable(sc.ARV), nullable(sc.Rehab), nullable(sc.Purchase), nullable(sc.NoRehabValue),
		outcome.Category.String(), now,
	)
	if err != nil {
		return "", fmt.Errorf("saving scenario: %w", err)
	}
	return id, nil
}

// List returns all saved scenarios, newest first.
func (s *Store) List() ([]Saved, error) {
	rows, err := s.db.Query(`SELECT id, name, mode, arv, rehab, purchase, no_rehab_value, category, created_at
		FROM scenarios ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var saved []Saved
	for rows.Next() {
		sv, err := scanSaved(rows)
		if err != nil {
			return nil, err
		}
		saved = append(saved, sv)
	}
	return saved, rows.Err()
}

// Get returns one saved scenario by id.
func (s *Store) Get(id string) (Saved, error) {
	row := s.db.QueryRow(`SELECT id, name, mode, arv, rehab, purchase, no_rehab_value, category, created_at
		FROM scenarios WHERE id = ?`, id)
	return scanSaved(row)
}

// Delete removes a saved scenario. Deleting an unknown id is not an error.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM scenarios WHERE id = ?", id)
	return err
}

// Count returns the number of saved scenarios.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scenarios").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSaved(r rowScanner) (Saved, error) {
	var sv Saved
	var mode, category, createdStr string
	var arv, rehab, purchase, noRehabValue sql.NullFloat64

	err := r.Scan(&sv.ID, &sv.Name, &mode, &arv, &rehab, &purchase, &noRehabValue, &category, &createdStr)
	if err != nil {
		return Saved{}, err
	}

	sv.Scenario.Mode = deal.ModeFromString(mode)
	sv.Scenario.ARV = fromNull(arv)
	sv.Scenario.Rehab = fromNull(rehab)
	sv.Scenario.Purchase = fromNull(purchase)
	sv.Scenario.NoRehabValue = fromNull(noRehabValue)
	sv.Category = categoryFromString(category)
	sv.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)

	return sv, nil
}

func categoryFromString(s string) deal.Category {
	for _, c := range []deal.Category{
		deal.FullyFundable, deal.FundableWithDownpayment,
		deal.NotFundable, deal.NoRehabFunded,
	} {
		if c.String() == s {
			return c
		}
	}
	return deal.NoOutcomeYet
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
