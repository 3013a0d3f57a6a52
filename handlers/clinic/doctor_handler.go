package handlers

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

// DoctorHandler serves doctor record CRUD.
type DoctorHandler struct {
	service services.IDoctorService
}

// NewDoctorHandler creates a DoctorHandler with the default service wiring.
func NewDoctorHandler() *DoctorHandler {
	return &DoctorHandler{service: services.NewDoctorService()}
}

// ListDoctors renders the doctor list.
func (h *DoctorHandler) ListDoctors(c *fiber.Ctx) error {
	doctors, err := h.service.GetAllDoctors(c.UserContext())
	renderData := fiber.Map{
		"Title":   "Doctors",
		"Doctors": doctors,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	if err != nil {
		configslog.Log.Error("Clinic - ListDoctors Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "The doctor list could not be loaded."
		renderData["Doctors"] = []models.Doctor{}
	}
	return renderer.Render(c, "doctors", "layouts/clinic_layout", renderData)
}

// CreateDoctor handles POST /add_doctor.
func (h *DoctorHandler) CreateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/doctors", fiber.StatusSeeOther)
	}
	if _, err := h.service.CreateDoctor(c.UserContext(), doctor); err != nil {
		if !errors.Is(err, services.ErrDoctorFieldsRequired) {
			configslog.Log.Error("Clinic - CreateDoctor Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/doctors", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Doctor added.")
	return c.Redirect("/doctors", fiber.StatusFound)
}

// ShowUpdateDoctor renders the pre-filled edit form for one doctor.
func (h *DoctorHandler) ShowUpdateDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "doctor not found")
	}
	doctor, err := h.service.GetDoctorByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - ShowUpdateDoctor Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The doctor could not be loaded.")
		return c.Redirect("/doctors", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "edit_doctor", "layouts/clinic_layout", fiber.Map{
		"Title":  "Edit Doctor",
		"Doctor": doctor,
	})
}

// UpdateDoctor handles POST /edit_doctor/:id.
func (h *DoctorHandler) UpdateDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "doctor not found")
	}
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/doctors", fiber.StatusSeeOther)
	}
	if err := h.service.UpdateDoctor(c.UserContext(), uint(id), doctor); err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		if !errors.Is(err, services.ErrDoctorFieldsRequired) {
			configslog.Log.Error("Clinic - UpdateDoctor Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/doctors", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Doctor updated.")
	return c.Redirect("/doctors", fiber.StatusFound)
}

// DeleteDoctor handles POST /delete_doctor/:id.
func (h *DoctorHandler) DeleteDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "doctor not found")
	}
	if err := h.service.DeleteDoctor(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - DeleteDoctor Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/doctors", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Doctor deleted.")
	return c.Redirect("/doctors", fiber.StatusSeeOther)
}
