// Package submission drives a species form from raw input to a persisted
// record: validate, persist, resync the form, close the overlay and ask the
// hosting page to refresh.
package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/species"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

// State is a step of the submission state machine.
type State int

const (
	Idle State = iota
	Validating
	Failed
	Persisting
	Succeeded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Failed:
		return "failed"
	case Persisting:
		return "persisting"
	case Succeeded:
		return "succeeded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Store persists a single normalized record and returns what was stored.
type Store interface {
	CreateOrUpdate(ctx context.Context, rec models.Species) (models.Species, error)
}

// Refresher asks the hosting page to re-fetch and re-render its data.
type Refresher interface {
	RequestRefresh()
}

// RefreshFunc adapts a plain function to Refresher.
type RefreshFunc func()

func (f RefreshFunc) RequestRefresh() { f() }

// BackendError wraps a failure from the data store.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("persisting species: %v", e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Flow is the local form state of one add or edit dialog. It is owned by a
// single caller and is not safe for concurrent use.
type Flow struct {
	store   Store
	refresh Refresher
	logger  logrus.FieldLogger

	id     int64
	author *string

	state  State
	open   bool
	values species.Input
	errs   species.ValidationErrors

	// OnTransition, if set, is called for every state change.
	OnTransition func(from, to State)
}

// NewFlow creates a closed, idle flow whose form starts at initial.
func NewFlow(store Store, refresh Refresher, logger logrus.FieldLogger, initial species.Input) *Flow {
	return &Flow{
		store:   store,
		refresh: refresh,
		logger:  logger,
		values:  initial,
	}
}

// ForRecord targets an existing row, so submissions update it.
func (f *Flow) ForRecord(id int64) *Flow {
	f.id = id
	return f
}

// WithAuthor stamps new rows with the opaque id of the submitting user.
func (f *Flow) WithAuthor(userID string) *Flow {
	if userID != "" {
		f.author = &userID
	}
	return f
}

func (f *Flow) State() State                     { return f.state }
func (f *Flow) IsOpen() bool                     { return f.open }
func (f *Flow) Values() species.Input            { return f.values }
func (f *Flow) Errors() species.ValidationErrors { return f.errs }

// Open shows the overlay.
func (f *Flow) Open() { f.open = true }

// Close hides the overlay without submitting.
func (f *Flow) Close() { f.open = false }

func (f *Flow) transition(to State) {
	from := f.state
	f.state = to
	f.logger.WithFields(logrus.Fields{"from": from.String(), "to": to.String()}).Debug("Submission state changed")
	if f.OnTransition != nil {
		f.OnTransition(from, to)
	}
}

// Submit runs raw through validation and, if it passes, persists it.
//
// On a validation failure the errors are kept for display, the overlay stays
// open and a species.ValidationErrors is returned. On a store failure a
// *BackendError is returned and the form keeps the raw values. On success the
// form is overwritten with the normalized values, the overlay closes and a
// refresh is requested.
func (f *Flow) Submit(ctx context.Context, raw species.Input) (models.Species, error) {
	f.transition(Validating)
	f.values = raw

	rec, err := species.Parse(raw)
	if err != nil {
		var verrs species.ValidationErrors
		if errors.As(err, &verrs) {
			f.errs = verrs
		}
		f.transition(Failed)
		f.logger.WithError(err).Warn("Species submission rejected")
		f.transition(Idle)
		return models.Species{}, err
	}
	f.errs = nil

	rec.ID = f.id
	if f.id == 0 {
		rec.Author = f.author
	}

	f.transition(Persisting)
	stored, err := f.store.CreateOrUpdate(ctx, rec)
	if err != nil {
		f.logger.WithError(err).Error("Species submission could not be persisted")
		f.transition(Idle)
		return models.Species{}, &BackendError{Err: err}
	}

	f.transition(Succeeded)
	f.values = species.FromSpecies(rec)
	f.open = false
	if f.refresh != nil {
		f.refresh.RequestRefresh()
	}
	f.logger.WithField("species_id", stored.ID).Info("Species submission stored")
	f.transition(Idle)
	return stored, nil
}
