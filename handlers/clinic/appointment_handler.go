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

// AppointmentHandler serves appointment CRUD. The list and edit pages also
// carry the patient and doctor lists for their select inputs.
type AppointmentHandler struct {
	service  services.IAppointmentService
	patients services.IPatientService
	doctors  services.IDoctorService
}

// NewAppointmentHandler creates an AppointmentHandler with the default
// service wiring.
func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{
		service:  services.NewAppointmentService(),
		patients: services.NewPatientService(),
		doctors:  services.NewDoctorService(),
	}
}

// ListAppointments renders the appointment list.
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	appointments, err := h.service.GetAllAppointments(c.UserContext())
	patients, _ := h.patients.GetAllPatients(c.UserContext())
	doctors, _ := h.doctors.GetAllDoctors(c.UserContext())

	renderData := fiber.Map{
		"Title":        "Appointments",
		"Appointments": appointments,
		"Patients":     patients,
		"Doctors":      doctors,
		"Statuses":     models.ValidAppointmentStatuses,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	if err != nil {
		configslog.Log.Error("Clinic - ListAppointments Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "The appointment list could not be loaded."
		renderData["Appointments"] = []models.Appointment{}
	}
	return renderer.Render(c, "appointments", "layouts/clinic_layout", renderData)
}

// CreateAppointment handles POST /add_appointment. Status is omitted from
// the add form and defaults to scheduled.
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/appointments", fiber.StatusSeeOther)
	}
	if _, err := h.service.CreateAppointment(c.UserContext(), appointment); err != nil {
		if !isAppointmentInputError(err) {
			configslog.Log.Error("Clinic - CreateAppointment Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/appointments", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Appointment added.")
	return c.Redirect("/appointments", fiber.StatusFound)
}

// ShowUpdateAppointment renders the pre-filled edit form for one appointment.
func (h *AppointmentHandler) ShowUpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "appointment not found")
	}
	appointment, err := h.service.GetAppointmentByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - ShowUpdateAppointment Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The appointment could not be loaded.")
		return c.Redirect("/appointments", fiber.StatusSeeOther)
	}
	patients, _ := h.patients.GetAllPatients(c.UserContext())
	doctors, _ := h.doctors.GetAllDoctors(c.UserContext())
	return renderer.Render(c, "edit_appointment", "layouts/clinic_layout", fiber.Map{
		"Title":       "Edit Appointment",
		"Appointment": appointment,
		"Patients":    patients,
		"Doctors":     doctors,
		"Statuses":    models.ValidAppointmentStatuses,
	})
}

// UpdateAppointment handles POST /edit_appointment/:id.
func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "appointment not found")
	}
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/appointments", fiber.StatusSeeOther)
	}
	if err := h.service.UpdateAppointment(c.UserContext(), uint(id), appointment); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		if !isAppointmentInputError(err) {
			configslog.Log.Error("Clinic - UpdateAppointment Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/appointments", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Appointment updated.")
	return c.Redirect("/appointments", fiber.StatusFound)
}

// DeleteAppointment handles POST /delete_appointment/:id.
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "appointment not found")
	}
	if err := h.service.DeleteAppointment(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - DeleteAppointment Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/appointments", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Appointment deleted.")
	return c.Redirect("/appointments", fiber.StatusSeeOther)
}

func isAppointmentInputError(err error) bool {
	return errors.Is(err, services.ErrAppointmentFieldsRequired) ||
		errors.Is(err, services.ErrAppointmentStatusInvalid) ||
		errors.Is(err, services.ErrAppointmentPatientMissing) ||
		errors.Is(err, services.ErrAppointmentDoctorMissing)
}
