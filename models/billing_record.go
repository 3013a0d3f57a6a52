package models

// PaymentStatus is the payment state of a billing record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// ValidPaymentStatuses lists every accepted payment status.
var ValidPaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentOverdue}

// IsValid reports whether s is one of the fixed payment status values.
func (s PaymentStatus) IsValid() bool {
	for _, v := range ValidPaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// BillingRecord is a charge raised against an appointment. CreatedAt is the
// record's creation date shown on the billing page.
type BillingRecord struct {
	BaseModel
	AppointmentID      uint          `gorm:"not null;index" form:"appointment_id"`
	PatientID          uint          `gorm:"not null;index" form:"patient_id"`
	ServiceDescription string        `gorm:"type:varchar(200);not null" form:"service_description"`
	Amount             float64       `gorm:"not null" form:"amount"`
	PaymentStatus      PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';check:payment_status IN ('pending','paid','overdue')" form:"payment_status"`
	DueDate            string        `gorm:"type:varchar(20);not null" form:"due_date"`
	Notes              string        `gorm:"type:text" form:"notes"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID"`
	Patient     Patient     `gorm:"foreignKey:PatientID"`
}
