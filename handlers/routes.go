package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/middleware"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/utils"
	"github.com/Ketan-Raghu/f23-eng-r2-deliverable/views"

	_ "github.com/Ketan-Raghu/f23-eng-r2-deliverable/docs" // registers the swagger document
)

// AppOptions configures NewApp.
type AppOptions struct {
	UserHeader string
}

// errorHandler renders every unhandled error in the standard JSON envelope.
func (h *ApplicationHandler) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		h.requestLogger(c).WithError(err).Error("Unhandled error")
	}
	return utils.RespondWithError(c, code, message)
}

// NewApp builds the fiber app with every route wired to h.
func NewApp(h *ApplicationHandler, opts AppOptions) *fiber.App {
	if opts.UserHeader == "" {
		opts.UserHeader = "X-User-Id"
	}

	app := fiber.New(fiber.Config{
		Views:        views.New(),
		ErrorHandler: h.errorHandler,
		// Form values are kept past the handler by the flow and the store.
		Immutable: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + opts.UserHeader,
	}))
	app.Use(middleware.RequestLogger(h.Logger))
	app.Use(middleware.UserID(opts.UserHeader))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Species catalog is healthy",
		})
	})

	if h.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(h.Metrics.Registry(), promhttp.HandlerOpts{})))
	}
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Pages
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(speciesPath, fiber.StatusSeeOther)
	})
	app.Get(speciesPath, h.ShowSpeciesPage)
	app.Post(speciesPath, h.SubmitSpeciesForm)
	app.Post(speciesPath+"/:id", h.SubmitSpeciesEditForm)

	// API v1 routes
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/species", h.ListSpecies)
	apiV1.Post("/species", h.CreateSpecies)
	apiV1.Get("/species/:id", h.GetSpecies)
	apiV1.Put("/species/:id", h.UpdateSpecies)

	return app
}
