package handlers

import (
	"log"

	"healthtrack/internal/middleware"
	"healthtrack/internal/models"
	"healthtrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MedicalHistoryHandler handles HTTP requests for medical history entries.
type MedicalHistoryHandler struct {
	service  *services.MedicalHistoryService
	validate *validator.Validate
}

// NewMedicalHistoryHandler creates a new MedicalHistoryHandler.
func NewMedicalHistoryHandler(service *services.MedicalHistoryService) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the medical history routes.
func (h *MedicalHistoryHandler) RegisterRoutes(router fiber.Router) {
	medicalRoutes := router.Group("/medical")
	medicalRoutes.Post("/history", h.HandleAdd)
	medicalRoutes.Get("/history", h.HandleList)
}

// MedicalHistoryRequest is the body of a new medical history entry.
type MedicalHistoryRequest struct {
	Condition     *string      `json:"condition" validate:"omitempty,max=255"`
	Diagnosis     *string      `json:"diagnosis"`
	DiagnosisDate *models.Date `json:"diagnosisDate"`
	Treatment     *string      `json:"treatment"`
	Medications   *string      `json:"medications"`
}

// HandleAdd appends a medical history entry for the caller.
func (h *MedicalHistoryHandler) HandleAdd(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	var req MedicalHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if ok, err := validateRequest(c, h.validate, req); !ok {
		return err
	}

	_, err := h.service.Add(c.UserContext(), p.UserID, services.AddMedicalHistory{
		Condition:     req.Condition,
		Diagnosis:     req.Diagnosis,
		DiagnosisDate: req.DiagnosisDate,
		Treatment:     req.Treatment,
		Medications:   req.Medications,
	})
	if err != nil {
		log.Printf("Error adding medical history for user %d: %v", p.UserID, err)
		return errorResponse(c, err, "Could not add medical history")
	}

	return c.JSON(fiber.Map{"message": "Medical history added successfully!"})
}

// HandleList returns every medical history entry of the caller.
func (h *MedicalHistoryHandler) HandleList(c *fiber.Ctx) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return unauthenticated(c)
	}

	entries, err := h.service.ListAll(c.UserContext(), p.UserID)
	if err != nil {
		log.Printf("Error listing medical history for user %d: %v", p.UserID, err)
		return errorResponse(c, err, "Could not retrieve medical history")
	}
	return c.JSON(entries)
}
