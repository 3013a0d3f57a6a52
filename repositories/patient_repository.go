package repositories

import (
	"context"

	"serenemind.app/configs"
	"serenemind.app/models"

	"gorm.io/gorm"
)

// IPatientRepository is the database contract for patient records.
type IPatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, id uint) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patient *models.Patient) error
	Count(ctx context.Context) (int64, error)
}

// PatientRepository implements IPatientRepository on GORM.
type PatientRepository struct {
	*BaseRepository[models.Patient]
}

// NewPatientRepository creates a PatientRepository on the shared connection.
func NewPatientRepository() IPatientRepository {
	return NewPatientRepositoryDB(configs.GetDB())
}

// NewPatientRepositoryDB creates a PatientRepository bound to an explicit handle.
func NewPatientRepositoryDB(db *gorm.DB) IPatientRepository {
	return &PatientRepository{BaseRepository: NewBaseRepository[models.Patient](db)}
}

var _ IPatientRepository = (*PatientRepository)(nil)
