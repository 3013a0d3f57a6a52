package repositories

import (
	"context"
	"errors"

	"serenemind.app/configs"
	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAppointmentRepository is the database contract for appointments.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, appointment *models.Appointment) error
	Count(ctx context.Context) (int64, error)
}

// AppointmentRepository implements IAppointmentRepository on GORM.
type AppointmentRepository struct {
	*BaseRepository[models.Appointment]
	db *gorm.DB
}

// NewAppointmentRepository creates an AppointmentRepository on the shared connection.
func NewAppointmentRepository() IAppointmentRepository {
	return NewAppointmentRepositoryDB(configs.GetDB())
}

// NewAppointmentRepositoryDB creates an AppointmentRepository bound to an explicit handle.
func NewAppointmentRepositoryDB(db *gorm.DB) IAppointmentRepository {
	return &AppointmentRepository{
		BaseRepository: NewBaseRepository[models.Appointment](db),
		db:             db,
	}
}

// FindAll returns every appointment with its patient and doctor preloaded
// for the list view.
func (r *AppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).Preload("Patient").Preload("Doctor").Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindByID loads one appointment with its patient and doctor.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).Preload("Patient").Preload("Doctor").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
