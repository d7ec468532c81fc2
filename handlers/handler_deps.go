package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/metrics"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/species"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/submission"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/middleware"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

// SpeciesStore defines the data store operations handlers expect.
// The concrete implementation is provided by the store package.
type SpeciesStore interface {
	List(ctx context.Context) ([]models.Species, error)
	Get(ctx context.Context, id int64) (models.Species, error)
	submission.Store
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Store   SpeciesStore
	Logger  *logrus.Logger
	Metrics *metrics.Metrics
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(store SpeciesStore, logger *logrus.Logger, m *metrics.Metrics) *ApplicationHandler {
	return &ApplicationHandler{
		Store:   store,
		Logger:  logger,
		Metrics: m,
	}
}

// requestLogger returns the logger tagged with the current request id.
func (h *ApplicationHandler) requestLogger(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(h.Logger)
	if id, ok := c.Locals(middleware.RequestIDKey).(string); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

// newFlow starts a submission for this request with the form open.
func (h *ApplicationHandler) newFlow(c *fiber.Ctx, refresh submission.Refresher, initial species.Input) *submission.Flow {
	flow := submission.NewFlow(h.Store, refresh, h.requestLogger(c), initial).
		WithAuthor(middleware.CurrentUserID(c))
	flow.Open()
	return flow
}

func (h *ApplicationHandler) observeSubmission(outcome string) {
	if h.Metrics != nil {
		h.Metrics.ObserveSubmission(outcome)
	}
}
