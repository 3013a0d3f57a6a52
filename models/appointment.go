package models

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
)

// ValidAppointmentStatuses lists every accepted status.
var ValidAppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled,
	AppointmentCompleted,
	AppointmentCanceled,
}

// IsValid reports whether s is one of the fixed status values.
func (s AppointmentStatus) IsValid() bool {
	for _, v := range ValidAppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Appointment links a patient and a doctor at a date and time.
type Appointment struct {
	BaseModel
	PatientID uint              `gorm:"not null;index" form:"patient_id"`
	DoctorID  uint              `gorm:"not null;index" form:"doctor_id"`
	Date      string            `gorm:"type:varchar(20);not null" form:"date"`
	Time      string            `gorm:"type:varchar(20);not null" form:"time"`
	Purpose   string            `gorm:"type:text;not null" form:"purpose"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';check:status IN ('scheduled','completed','canceled')" form:"status"`

	Patient        Patient         `gorm:"foreignKey:PatientID"`
	Doctor         Doctor          `gorm:"foreignKey:DoctorID"`
	BillingRecords []BillingRecord `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
