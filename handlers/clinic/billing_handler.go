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

// BillingHandler serves billing record CRUD. The list and edit pages also
// carry the patient and appointment lists for their select inputs.
type BillingHandler struct {
	service      services.IBillingService
	patients     services.IPatientService
	appointments services.IAppointmentService
}

// NewBillingHandler creates a BillingHandler with the default service wiring.
func NewBillingHandler() *BillingHandler {
	return &BillingHandler{
		service:      services.NewBillingService(),
		patients:     services.NewPatientService(),
		appointments: services.NewAppointmentService(),
	}
}

// ListRecords renders the billing list.
func (h *BillingHandler) ListRecords(c *fiber.Ctx) error {
	records, err := h.service.GetAllRecords(c.UserContext())
	patients, _ := h.patients.GetAllPatients(c.UserContext())
	appointments, _ := h.appointments.GetAllAppointments(c.UserContext())

	renderData := fiber.Map{
		"Title":          "Billing",
		"BillingRecords": records,
		"Patients":       patients,
		"Appointments":   appointments,
		"Statuses":       models.ValidPaymentStatuses,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	if err != nil {
		configslog.Log.Error("Clinic - ListRecords Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "The billing list could not be loaded."
		renderData["BillingRecords"] = []models.BillingRecord{}
	}
	return renderer.Render(c, "billing", "layouts/clinic_layout", renderData)
}

// CreateRecord handles POST /add_billing.
func (h *BillingHandler) CreateRecord(c *fiber.Ctx) error {
	var record models.BillingRecord
	if err := c.BodyParser(&record); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/billing", fiber.StatusSeeOther)
	}
	if _, err := h.service.CreateRecord(c.UserContext(), record); err != nil {
		if !isBillingInputError(err) {
			configslog.Log.Error("Clinic - CreateRecord Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/billing", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Billing record added.")
	return c.Redirect("/billing", fiber.StatusFound)
}

// ShowUpdateRecord renders the pre-filled edit form for one billing record.
func (h *BillingHandler) ShowUpdateRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "billing record not found")
	}
	record, err := h.service.GetRecordByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBillingNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - ShowUpdateRecord Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The billing record could not be loaded.")
		return c.Redirect("/billing", fiber.StatusSeeOther)
	}
	patients, _ := h.patients.GetAllPatients(c.UserContext())
	appointments, _ := h.appointments.GetAllAppointments(c.UserContext())
	return renderer.Render(c, "edit_billing", "layouts/clinic_layout", fiber.Map{
		"Title":        "Edit Billing Record",
		"Record":       record,
		"Patients":     patients,
		"Appointments": appointments,
		"Statuses":     models.ValidPaymentStatuses,
	})
}

// UpdateRecord handles POST /edit_billing/:id.
func (h *BillingHandler) UpdateRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "billing record not found")
	}
	var record models.BillingRecord
	if err := c.BodyParser(&record); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/billing", fiber.StatusSeeOther)
	}
	if err := h.service.UpdateRecord(c.UserContext(), uint(id), record); err != nil {
		if errors.Is(err, services.ErrBillingNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		if !isBillingInputError(err) {
			configslog.Log.Error("Clinic - UpdateRecord Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/billing", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Billing record updated.")
	return c.Redirect("/billing", fiber.StatusFound)
}

// DeleteRecord handles POST /delete_billing/:id.
func (h *BillingHandler) DeleteRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "billing record not found")
	}
	if err := h.service.DeleteRecord(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrBillingNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Clinic - DeleteRecord Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/billing", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Billing record deleted.")
	return c.Redirect("/billing", fiber.StatusSeeOther)
}

func isBillingInputError(err error) bool {
	return errors.Is(err, services.ErrBillingFieldsRequired) ||
		errors.Is(err, services.ErrBillingAmountNegative) ||
		errors.Is(err, services.ErrBillingStatusInvalid) ||
		errors.Is(err, services.ErrBillingAppointmentMissing) ||
		errors.Is(err, services.ErrBillingPatientMissing)
}
