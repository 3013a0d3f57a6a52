package repositories

import (
	"context"

	"serenemind.app/configs"
	"serenemind.app/models"

	"gorm.io/gorm"
)

// IDoctorRepository is the database contract for doctor records.
type IDoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, id uint) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, doctor *models.Doctor) error
	Count(ctx context.Context) (int64, error)
}

// DoctorRepository implements IDoctorRepository on GORM.
type DoctorRepository struct {
	*BaseRepository[models.Doctor]
}

// NewDoctorRepository creates a DoctorRepository on the shared connection.
func NewDoctorRepository() IDoctorRepository {
	return NewDoctorRepositoryDB(configs.GetDB())
}

// NewDoctorRepositoryDB creates a DoctorRepository bound to an explicit handle.
func NewDoctorRepositoryDB(db *gorm.DB) IDoctorRepository {
	return &DoctorRepository{BaseRepository: NewBaseRepository[models.Doctor](db)}
}

var _ IDoctorRepository = (*DoctorRepository)(nil)
