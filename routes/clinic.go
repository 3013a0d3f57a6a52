package routes

import (
	clinic_handlers "serenemind.app/handlers/clinic"

	"github.com/gofiber/fiber/v2"
)

// registerClinicRoutes defines the clinic-staff resources: patients,
// doctors, appointments and billing.
func registerClinicRoutes(app *fiber.App) {
	patientHandler := clinic_handlers.NewPatientHandler()
	doctorHandler := clinic_handlers.NewDoctorHandler()
	appointmentHandler := clinic_handlers.NewAppointmentHandler()
	billingHandler := clinic_handlers.NewBillingHandler()

	// --- Patients ---
	app.Get("/patients", patientHandler.ListPatients)               // GET /patients
	app.Post("/add_patient", patientHandler.CreatePatient)          // POST /add_patient
	app.Get("/edit_patient/:id", patientHandler.ShowUpdatePatient)  // GET /edit_patient/{id}
	app.Post("/edit_patient/:id", patientHandler.UpdatePatient)     // POST /edit_patient/{id}
	app.Post("/delete_patient/:id", patientHandler.DeletePatient)   // POST /delete_patient/{id}

	// --- Doctors ---
	app.Get("/doctors", doctorHandler.ListDoctors)              // GET /doctors
	app.Post("/add_doctor", doctorHandler.CreateDoctor)         // POST /add_doctor
	app.Get("/edit_doctor/:id", doctorHandler.ShowUpdateDoctor) // GET /edit_doctor/{id}
	app.Post("/edit_doctor/:id", doctorHandler.UpdateDoctor)    // POST /edit_doctor/{id}
	app.Post("/delete_doctor/:id", doctorHandler.DeleteDoctor)  // POST /delete_doctor/{id}

	// --- Appointments ---
	app.Get("/appointments", appointmentHandler.ListAppointments)              // GET /appointments
	app.Post("/add_appointment", appointmentHandler.CreateAppointment)         // POST /add_appointment
	app.Get("/edit_appointment/:id", appointmentHandler.ShowUpdateAppointment) // GET /edit_appointment/{id}
	app.Post("/edit_appointment/:id", appointmentHandler.UpdateAppointment)    // POST /edit_appointment/{id}
	app.Post("/delete_appointment/:id", appointmentHandler.DeleteAppointment)  // POST /delete_appointment/{id}

	// --- Billing ---
	app.Get("/billing", billingHandler.ListRecords)               // GET /billing
	app.Post("/add_billing", billingHandler.CreateRecord)         // POST /add_billing
	app.Get("/edit_billing/:id", billingHandler.ShowUpdateRecord) // GET /edit_billing/{id}
	app.Post("/edit_billing/:id", billingHandler.UpdateRecord)    // POST /edit_billing/{id}
	app.Post("/delete_billing/:id", billingHandler.DeleteRecord)  // POST /delete_billing/{id}
}
