package models

// Doctor is a clinic practitioner record.
type Doctor struct {
	BaseModel
	Name           string `gorm:"type:varchar(100);not null" form:"name"`
	Specialization string `gorm:"type:varchar(100);not null" form:"specialization"`
	Contact        string `gorm:"type:varchar(100);not null" form:"contact"`
	LicenseNumber  string `gorm:"type:varchar(50);not null" form:"license_number"`
	Experience     string `gorm:"type:text;not null" form:"experience"`

	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
