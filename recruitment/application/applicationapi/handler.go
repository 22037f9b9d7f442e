package applicationapi

import (
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/pkg/validatex"
	"github.com/Abraxas-365/campus/recruitment/actor/actorapi"
	"github.com/Abraxas-365/campus/recruitment/application"
	"github.com/Abraxas-365/campus/recruitment/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SubmitApplication applies the caller to a job posting
// POST /api/applications
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.Submit(c.Context(), actorapi.GetActor(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// ListApplications lists the applications visible to the caller
// GET /api/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), actorapi.GetActor(c))
	if err != nil {
		return err
	}

	return c.JSON(application.ListApplicationsResponse{Applications: list})
}

// GetApplication retrieves one application with posting and applicant details
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	details, err := h.service.Get(c.Context(), actorapi.GetActor(c), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// UpdateApplicationStatus applies a partial review update
// PATCH /api/applications/:id
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if errs := validatex.Struct(&req); errs != nil {
		return application.ErrValidationFailed().WithDetail("fields", errs)
	}

	update, err := req.ToStatusUpdate()
	if err != nil {
		return err
	}

	app, err := h.service.UpdateStatus(c.Context(), actorapi.GetActor(c), applicationID, update)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// RegisterRoutes registers all application routes.
// Actor resolution must already run on the app or be passed in mw.
func RegisterRoutes(app *fiber.App, handlers *Handlers, mw ...fiber.Handler) {
	api := app.Group("/api/applications", mw...)

	api.Post("/", handlers.SubmitApplication)
	api.Get("/", handlers.ListApplications)
	api.Get("/:id", handlers.GetApplication)
	api.Patch("/:id", handlers.UpdateApplicationStatus)
}
