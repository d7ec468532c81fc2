package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/metrics"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/species"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/store"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/submission"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/utils"
)

// HeaderRefresh asks an HTMX-style client to reload the current page.
const HeaderRefresh = "HX-Refresh"

// SpeciesSuccessResponse defines the structure for a successful response for a single species.
type SpeciesSuccessResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    models.Species `json:"data"`
}

// SpeciesListSuccessResponse defines the structure for a successful response when listing species.
type SpeciesListSuccessResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    []models.Species `json:"data"`
}

func parseSpeciesID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid species ID %q", c.Params("id"))
	}
	return id, nil
}

// ListSpecies godoc
// @Summary List all species
// @Description Retrieves every species record ordered by id.
// @Tags species
// @Produce  json
// @Success 200 {object} SpeciesListSuccessResponse "Successfully retrieved list of species"
// @Failure 502 {object} utils.ErrorResponse "Data store unavailable"
// @Router /species [get]
func (h *ApplicationHandler) ListSpecies(c *fiber.Ctx) error {
	rows, err := h.Store.List(c.UserContext())
	if err != nil {
		h.requestLogger(c).WithError(err).Error("Error fetching species")
		return utils.RespondWithError(c, fiber.StatusBadGateway, fmt.Sprintf("Could not retrieve species: %v", err))
	}

	return c.Status(fiber.StatusOK).JSON(SpeciesListSuccessResponse{
		Status:  "success",
		Message: "Species retrieved successfully",
		Data:    rows,
	})
}

// GetSpecies godoc
// @Summary Get a species
// @Description Retrieves a single species record by id.
// @Tags species
// @Produce  json
// @Param   id path int true "Species ID"
// @Success 200 {object} SpeciesSuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Invalid id"
// @Failure 404 {object} utils.ErrorResponse "Species not found"
// @Failure 502 {object} utils.ErrorResponse "Data store unavailable"
// @Router /species/{id} [get]
func (h *ApplicationHandler) GetSpecies(c *fiber.Ctx) error {
	id, err := parseSpeciesID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.Store.Get(c.UserContext(), id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Species with ID %d not found", id))
	}
	if err != nil {
		h.requestLogger(c).WithError(err).WithField("species_id", id).Error("Error fetching species")
		return utils.RespondWithError(c, fiber.StatusBadGateway, fmt.Sprintf("Could not retrieve species %d: %v", id, err))
	}

	return c.Status(fiber.StatusOK).JSON(SpeciesSuccessResponse{
		Status:  "success",
		Message: "Species retrieved successfully",
		Data:    rec,
	})
}

// CreateSpecies godoc
// @Summary Create a species
// @Description Validates, normalizes and stores a new species record.
// @Tags species
// @Accept  json
// @Produce  json
// @Param   species body species.Input true "Species to create"
// @Success 201 {object} SpeciesSuccessResponse "Species created successfully"
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 502 {object} utils.ErrorResponse "Data store unavailable"
// @Router /species [post]
func (h *ApplicationHandler) CreateSpecies(c *fiber.Ctx) error {
	return h.submitJSON(c, 0, fiber.StatusCreated, "Species created successfully")
}

// UpdateSpecies godoc
// @Summary Update a species
// @Description Validates, normalizes and replaces the fields of an existing species record.
// @Tags species
// @Accept  json
// @Produce  json
// @Param   id path int true "Species ID"
// @Param   species body species.Input true "New field values"
// @Success 200 {object} SpeciesSuccessResponse "Species updated successfully"
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 404 {object} utils.ErrorResponse "Species not found"
// @Failure 502 {object} utils.ErrorResponse "Data store unavailable"
// @Router /species/{id} [put]
func (h *ApplicationHandler) UpdateSpecies(c *fiber.Ctx) error {
	id, err := parseSpeciesID(c)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}
	return h.submitJSON(c, id, fiber.StatusOK, "Species updated successfully")
}

func (h *ApplicationHandler) submitJSON(c *fiber.Ctx, id int64, status int, message string) error {
	var raw species.Input
	if err := c.BodyParser(&raw); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse species JSON: %v", err))
	}

	refresh := submission.RefreshFunc(func() { c.Set(HeaderRefresh, "true") })
	stored, err := h.newFlow(c, refresh, raw).ForRecord(id).Submit(c.UserContext(), raw)

	var verrs species.ValidationErrors
	var backendErr *submission.BackendError
	switch {
	case err == nil:
		h.observeSubmission(metrics.OutcomeSucceeded)
		return c.Status(status).JSON(SpeciesSuccessResponse{
			Status:  "success",
			Message: message,
			Data:    stored,
		})
	case errors.As(err, &verrs):
		h.observeSubmission(metrics.OutcomeInvalid)
		return utils.RespondWithValidationError(c, err)
	case errors.Is(err, store.ErrRecordNotFound):
		h.observeSubmission(metrics.OutcomeBackendError)
		return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Species with ID %d not found", id))
	case errors.As(err, &backendErr):
		h.observeSubmission(metrics.OutcomeBackendError)
		return utils.RespondWithError(c, fiber.StatusBadGateway, fmt.Sprintf("Could not save species: %v", backendErr.Err))
	default:
		return err
	}
}
