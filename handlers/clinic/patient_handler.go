package handlers // handlers/clinic package

import (
	"errors"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/pkg/flashmessages"
	"serenemind.app/pkg/renderer"
	"serenemind.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PatientHandler serves patient record CRUD.
type PatientHandler struct {
	service services.IPatientService
}

// NewPatientHandler creates a PatientHandler with the default service wiring.
func NewPatientHandler() *PatientHandler {
	return &PatientHandler{service: services.NewPatientService()}
}

// ListPatients renders the patient list.
func (h *PatientHandler) ListPatients(c *fiber.Ctx) error {
	patients, err := h.service.GetAllPatients(c.UserContext())
	renderData := fiber.Map{
		"Title":    "Patients",
		"Patients": patients,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	if err != nil {
		configslog.Log.Error("Clinic - ListPatients Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "The patient list could not be loaded."
		renderData["Patients"] = []models.Patient{}
	}
	return renderer.Render(c, "patients", "layouts/clinic_layout", renderData)
}

// CreatePatient handles POST /add_patient.
func (h *PatientHandler) CreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/patients", fiber.StatusSeeOther)
	}
	if _, err := h.service.CreatePatient(c.UserContext(), patient); err != nil {
		if !errors.Is(err, services.ErrPatientFieldsRequired) {
			configslog.Log.Error("Clinic - CreatePatient Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/patients", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Patient added.")
	return c.Redirect("/patients", fiber.StatusFound)
}

// ShowUpdatePatient renders the pre-filled edit form for one patient.
func (h *PatientHandler) ShowUpdatePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "patient not found")
	}
	patient, err := h.service.GetPatientByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - ShowUpdatePatient Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The patient could not be loaded.")
		return c.Redirect("/patients", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "edit_patient", "layouts/clinic_layout", fiber.Map{
		"Title":   "Edit Patient",
		"Patient": patient,
	})
}

// UpdatePatient handles POST /edit_patient/:id.
func (h *PatientHandler) UpdatePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "patient not found")
	}
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/patients", fiber.StatusSeeOther)
	}
	if err := h.service.UpdatePatient(c.UserContext(), uint(id), patient); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		if !errors.Is(err, services.ErrPatientFieldsRequired) {
			configslog.Log.Error("Clinic - UpdatePatient Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/patients", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Patient updated.")
	return c.Redirect("/patients", fiber.StatusFound)
}

// DeletePatient handles POST /delete_patient/:id.
func (h *PatientHandler) DeletePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "patient not found")
	}
	if err := h.service.DeletePatient(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - DeletePatient Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/patients", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Patient deleted.")
	return c.Redirect("/patients", fiber.StatusSeeOther)
}
