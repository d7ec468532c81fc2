package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/metrics"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/species"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/store"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/internal/submission"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/middleware"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/models"
)

const speciesPath = "/species"

// SpeciesPage is the data behind the species list page.
type SpeciesPage struct {
	Title  string
	UserID string
	Cards  []species.Card
	Form   *FormView
}

// FormView is the add or edit dialog.
type FormView struct {
	Dialog       species.Dialog
	Title        string
	SubmitLabel  string
	Action       string
	Values       FormValues
	Errors       map[string]string
	BackendError string
}

// FormValues holds the text shown in each form input.
type FormValues struct {
	CommonName      string
	Description     string
	Kingdom         string
	ScientificName  string
	TotalPopulation string
	Image           string
}

func valuesFromInput(in species.Input) FormValues {
	v := FormValues{Kingdom: in.Kingdom, ScientificName: in.ScientificName}
	if in.CommonName != nil {
		v.CommonName = *in.CommonName
	}
	if in.Description != nil {
		v.Description = *in.Description
	}
	if in.Image != nil {
		v.Image = *in.Image
	}
	if in.TotalPopulation != nil && !math.IsNaN(*in.TotalPopulation) {
		v.TotalPopulation = strconv.FormatFloat(*in.TotalPopulation, 'f', -1, 64)
	}
	return v
}

func valuesFromRequest(c *fiber.Ctx) FormValues {
	return FormValues{
		CommonName:      c.FormValue("common_name"),
		Description:     c.FormValue("description"),
		Kingdom:         c.FormValue("kingdom"),
		ScientificName:  c.FormValue("scientific_name"),
		TotalPopulation: c.FormValue("total_population"),
		Image:           c.FormValue("image"),
	}
}

// bindSpeciesForm reads the species form fields. A population that is not a
// number is kept as NaN so validation reports it as out of range.
func bindSpeciesForm(c *fiber.Ctx) species.Input {
	v := valuesFromRequest(c)
	in := species.Input{
		CommonName:     &v.CommonName,
		Description:    &v.Description,
		Kingdom:        v.Kingdom,
		ScientificName: v.ScientificName,
		Image:          &v.Image,
	}
	if raw := strings.TrimSpace(v.TotalPopulation); raw != "" {
		n, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			n = math.NaN()
		}
		in.TotalPopulation = &n
	}
	return in
}

func newForm(id int64, values FormValues) *FormView {
	f := &FormView{
		Dialog:      species.Dialog{Open: true},
		Title:       "Add Species",
		SubmitLabel: "Add Species",
		Action:      speciesPath,
		Values:      values,
	}
	if id != 0 {
		f.Title = "Edit Species"
		f.SubmitLabel = "Save Changes"
		f.Action = speciesPath + "/" + strconv.FormatInt(id, 10)
	}
	return f
}

func queryID(c *fiber.Ctx, key string) int64 {
	id, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// buildPage lays out every card for the current user, opening the details
// dialog of detailsID when it is non-zero.
func (h *ApplicationHandler) buildPage(c *fiber.Ctx, rows []models.Species, detailsID int64) SpeciesPage {
	userID := middleware.CurrentUserID(c)
	page := SpeciesPage{Title: "Species", UserID: userID, Cards: make([]species.Card, 0, len(rows))}
	for _, row := range rows {
		card := species.NewCard(row, userID)
		if detailsID != 0 && row.ID == detailsID {
			card = card.Open()
		}
		page.Cards = append(page.Cards, card)
	}
	return page
}

func (h *ApplicationHandler) renderPage(c *fiber.Ctx, status int, page SpeciesPage) error {
	return c.Status(status).Render("species", page, "layout")
}

// ShowSpeciesPage renders the species list. The details, edit and add query
// parameters decide which dialog, if any, is open.
func (h *ApplicationHandler) ShowSpeciesPage(c *fiber.Ctx) error {
	rows, err := h.Store.List(c.UserContext())
	if err != nil {
		h.requestLogger(c).WithError(err).Error("Error fetching species for page")
		return fiber.NewError(fiber.StatusBadGateway, "Could not retrieve species")
	}

	page := h.buildPage(c, rows, queryID(c, "details"))

	if editID := queryID(c, "edit"); editID != 0 {
		for _, row := range rows {
			if row.ID == editID {
				page.Form = newForm(editID, valuesFromInput(species.FromSpecies(row)))
				break
			}
		}
		if page.Form == nil {
			return fiber.NewError(fiber.StatusNotFound, "Species not found")
		}
	} else if c.Query("add") != "" {
		page.Form = newForm(0, valuesFromInput(species.DefaultInput()))
	}

	return h.renderPage(c, fiber.StatusOK, page)
}

// SubmitSpeciesForm handles the add form.
func (h *ApplicationHandler) SubmitSpeciesForm(c *fiber.Ctx) error {
	return h.submitForm(c, 0)
}

// SubmitSpeciesEditForm handles the edit form of one species.
func (h *ApplicationHandler) SubmitSpeciesEditForm(c *fiber.Ctx) error {
	id, err := parseSpeciesID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return h.submitForm(c, id)
}

// submitForm runs the posted form through the submission flow. A refresh
// request becomes a redirect back to the list so it is fetched again.
func (h *ApplicationHandler) submitForm(c *fiber.Ctx, id int64) error {
	raw := bindSpeciesForm(c)

	refreshed := false
	flow := h.newFlow(c, submission.RefreshFunc(func() { refreshed = true }), raw).ForRecord(id)

	_, err := flow.Submit(c.UserContext(), raw)
	if err == nil {
		h.observeSubmission(metrics.OutcomeSucceeded)
		if refreshed {
			return c.Redirect(speciesPath, fiber.StatusSeeOther)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	form := newForm(id, valuesFromRequest(c))
	form.Dialog.Open = flow.IsOpen()
	status := fiber.StatusUnprocessableEntity

	var backendErr *submission.BackendError
	switch {
	case errors.As(err, &backendErr):
		h.observeSubmission(metrics.OutcomeBackendError)
		if errors.Is(err, store.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Species not found")
		}
		form.BackendError = "Could not save species. Please try again."
		status = fiber.StatusBadGateway
	default:
		h.observeSubmission(metrics.OutcomeInvalid)
		form.Errors = flow.Errors().ByField()
	}

	// The list is best effort here; the dialog is what the user needs to see.
	rows, listErr := h.Store.List(c.UserContext())
	if listErr != nil {
		h.requestLogger(c).WithError(listErr).Warn("Error fetching species while re-rendering form")
	}
	page := h.buildPage(c, rows, 0)
	page.Form = form
	return h.renderPage(c, status, page)
}
