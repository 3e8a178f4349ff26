package handlers

import (
	"errors"
	"log"

	"healthtrack/internal/middleware"
	"healthtrack/internal/models"
	"healthtrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DailyDataHandler handles HTTP requests for daily biometric data.
type DailyDataHandler struct {
	service  *services.DailyDataService
	validate *validator.Validate
}

// NewDailyDataHandler creates a new DailyDataHandler.
func NewDailyDataHandler(service *services.DailyDataService) *DailyDataHandler {
	return &DailyDataHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the daily data routes. The router must already
// carry the authentication middleware.
func (h *DailyDataHandler) RegisterRoutes(router fiber.Router) {
	dataRoutes := router.Group("/data")
	dataRoutes.Post("/daily", h.HandleSubmit)
	dataRoutes.Get("/daily", h.HandleList)
	dataRoutes.Get("/daily/:date", h.HandleGetByDate)
}

// DailyDataRequest is the body of a daily data submission. Omitted readings
// are stored as absent, replacing whatever was stored for that date.
type DailyDataRequest struct {
	Date                   *models.Date `json:"date" validate:"required"`
	Steps                  *int         `json:"steps"`
	Distance               *float64     `json:"distance"`
	CaloriesBurned         *int         `json:"caloriesBurned"`
	HeartRate              *int         `json:"heartRate"`
	BloodPressureSystolic  *float64     `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *float64     `json:"bloodPressureDiastolic"`
}

// HandleSubmit creates or replaces the caller's entry for a date.
func (h *DailyDataHandler) HandleSubmit(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req DailyDataRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if ok, err := validateRequest(c, h.validate, req); !ok {
		return err
	}

	_, err := h.service.Submit(c.UserContext(), p.UserID, services.SubmitDailyData{
		Date:                   *req.Date,
		Steps:                  req.Steps,
		Distance:               req.Distance,
		CaloriesBurned:         req.CaloriesBurned,
		HeartRate:              req.HeartRate,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
	})
	if err != nil {
		log.Printf("Error saving daily data for user %d: %v", p.UserID, err)
		return errorResponse(c, err, "Could not save daily data")
	}

	return c.JSON(fiber.Map{"message": "Daily data saved successfully!"})
}

// HandleList returns every daily data entry of the caller.
func (h *DailyDataHandler) HandleList(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	entries, err := h.service.ListAll(c.UserContext(), p.UserID)
	if err != nil {
		log.Printf("Error listing daily data for user %d: %v", p.UserID, err)
		return errorResponse(c, err, "Could not retrieve daily data")
	}
	return c.JSON(entries)
}

// HandleGetByDate returns the caller's entry for the date in the path.
// A miss is answered with 404 and no body.
func (h *DailyDataHandler) HandleGetByDate(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	entry, err := h.service.GetByDate(c.UserContext(), p.UserID, c.Params("date"))
	switch {
	case errors.Is(err, services.ErrDailyDataNotFound):
		// SendStatus would fill the empty body with "Not Found".
		return c.Status(fiber.StatusNotFound).Send(nil)
	case err != nil:
		log.Printf("Error getting daily data for user %d: %v", p.UserID, err)
		return errorResponse(c, err, "Could not retrieve daily data")
	}
	return c.JSON(entry)
}
