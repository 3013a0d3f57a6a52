package models

// Patient is a clinic patient record.
type Patient struct {
	BaseModel
	Name           string `gorm:"type:varchar(100);not null" form:"name"`
	DOB            string `gorm:"type:varchar(20);not null" form:"dob"`
	Contact        string `gorm:"type:varchar(100);not null" form:"contact"`
	MedicalHistory string `gorm:"type:text;not null" form:"medical_history"`

	Appointments   []Appointment   `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BillingRecords []BillingRecord `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
