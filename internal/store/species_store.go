// Package store reads and writes species rows in the hosted data store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	postgrest "github.com/supabase-community/postgrest-go"
	"github.com/sirupsen/logrus"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

// ErrRecordNotFound is returned when a database record is not found.
var ErrRecordNotFound = errors.New("record not found")

// DefaultTable is the table species rows live in.
const DefaultTable = "species"

// Querier starts a query against a table. Both *supabase.Client and
// *postgrest.Client satisfy it.
type Querier interface {
	From(table string) *postgrest.QueryBuilder
}

// Observer is told about every request the store makes.
type Observer interface {
	ObserveStoreRequest(operation string, err error)
}

// SpeciesStore is the species table accessed through PostgREST.
type SpeciesStore struct {
	db       Querier
	table    string
	logger   *logrus.Logger
	observer Observer
}

// NewSpeciesStore creates a store over db. An empty table means DefaultTable.
func NewSpeciesStore(db Querier, table string, logger *logrus.Logger) *SpeciesStore {
	if table == "" {
		table = DefaultTable
	}
	return &SpeciesStore{db: db, table: table, logger: logger}
}

// WithObserver sets the request observer and returns the store.
func (s *SpeciesStore) WithObserver(o Observer) *SpeciesStore {
	s.observer = o
	return s
}

func (s *SpeciesStore) observe(operation string, err error) {
	if s.observer != nil {
		s.observer.ObserveStoreRequest(operation, err)
	}
}

// List returns every species ordered by id.
func (s *SpeciesStore) List(ctx context.Context) ([]models.Species, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, _, err := s.db.From(s.table).
		Select("*", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	s.observe("list", err)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve species: %w", err)
	}

	var rows []models.Species
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("could not process species data: %w", err)
	}
	if rows == nil {
		rows = []models.Species{}
	}

	s.logger.WithField("count", len(rows)).Debug("Fetched species")
	return rows, nil
}

// Get returns the species with the given id, or ErrRecordNotFound.
func (s *SpeciesStore) Get(ctx context.Context, id int64) (models.Species, error) {
	if err := ctx.Err(); err != nil {
		return models.Species{}, err
	}

	body, _, err := s.db.From(s.table).
		Select("*", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Limit(1, "").
		Execute()
	s.observe("get", err)
	if err != nil {
		return models.Species{}, fmt.Errorf("could not retrieve species %d: %w", id, err)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return models.Species{}, fmt.Errorf("could not process species %d: %w", id, err)
	}
	if len(rows) == 0 {
		return models.Species{}, fmt.Errorf("species %d: %w", id, ErrRecordNotFound)
	}
	return rows[0], nil
}

// CreateOrUpdate writes a single normalized record. A zero ID inserts a new
// row; otherwise the row with that ID is updated. The stored row is returned.
func (s *SpeciesStore) CreateOrUpdate(ctx context.Context, rec models.Species) (models.Species, error) {
	if err := ctx.Err(); err != nil {
		return models.Species{}, err
	}
	if rec.ID == 0 {
		return s.create(rec)
	}
	return s.update(rec)
}

func (s *SpeciesStore) create(rec models.Species) (models.Species, error) {
	data := columns(rec)
	if rec.Author != nil {
		data["author"] = *rec.Author
	}

	body, _, err := s.db.From(s.table).
		Insert(data, false, "", "representation", "").
		Execute()
	s.observe("create", err)
	if err != nil {
		return models.Species{}, fmt.Errorf("could not create species: %w", err)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return models.Species{}, fmt.Errorf("could not process species creation response: %w", err)
	}
	if len(rows) == 0 {
		return models.Species{}, errors.New("failed to create species, response was empty")
	}

	s.logger.WithField("species_id", rows[0].ID).Info("Species created")
	return rows[0], nil
}

func (s *SpeciesStore) update(rec models.Species) (models.Species, error) {
	body, _, err := s.db.From(s.table).
		Update(columns(rec), "representation", "").
		Eq("id", strconv.FormatInt(rec.ID, 10)).
		Execute()
	s.observe("update", err)
	if err != nil {
		return models.Species{}, fmt.Errorf("could not update species %d: %w", rec.ID, err)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return models.Species{}, fmt.Errorf("could not process species update response for %d: %w", rec.ID, err)
	}
	if len(rows) == 0 {
		return models.Species{}, fmt.Errorf("species %d: %w", rec.ID, ErrRecordNotFound)
	}

	s.logger.WithField("species_id", rec.ID).Info("Species updated")
	return rows[0], nil
}

// columns is the writable part of a row. Null values are sent explicitly so
// clearing a field in the form clears it in storage.
func columns(rec models.Species) map[string]interface{} {
	return map[string]interface{}{
		"common_name":      rec.CommonName,
		"description":      rec.Description,
		"kingdom":          rec.Kingdom,
		"scientific_name":  rec.ScientificName,
		"total_population": rec.TotalPopulation,
		"image":            rec.Image,
	}
}

func decodeRows(body []byte) ([]models.Species, error) {
	var rows []models.Species
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
