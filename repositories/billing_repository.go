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

// IBillingRepository is the database contract for billing records.
type IBillingRepository interface {
	Create(ctx context.Context, record *models.BillingRecord) error
	FindAll(ctx context.Context) ([]models.BillingRecord, error)
	FindByID(ctx context.Context, id uint) (*models.BillingRecord, error)
	Update(ctx context.Context, record *models.BillingRecord) error
	Delete(ctx context.Context, record *models.BillingRecord) error
	Count(ctx context.Context) (int64, error)
}

// BillingRepository implements IBillingRepository on GORM.
type BillingRepository struct {
	*BaseRepository[models.BillingRecord]
	db *gorm.DB
}

// NewBillingRepository creates a BillingRepository on the shared connection.
func NewBillingRepository() IBillingRepository {
	return NewBillingRepositoryDB(configs.GetDB())
}

// NewBillingRepositoryDB creates a BillingRepository bound to an explicit handle.
func NewBillingRepositoryDB(db *gorm.DB) IBillingRepository {
	return &BillingRepository{
		BaseRepository: NewBaseRepository[models.BillingRecord](db),
		db:             db,
	}
}

// FindAll returns every billing record with its patient and appointment
// preloaded for the list view.
func (r *BillingRepository) FindAll(ctx context.Context) ([]models.BillingRecord, error) {
	var records []models.BillingRecord
	err := r.db.WithContext(ctx).Preload("Patient").Preload("Appointment").Find(&records).Error
	if err != nil {
		configslog.Log.Error("BillingRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// FindByID loads one billing record with its patient and appointment.
func (r *BillingRepository) FindByID(ctx context.Context, id uint) (*models.BillingRecord, error) {
	var record models.BillingRecord
	err := r.db.WithContext(ctx).Preload("Patient").Preload("Appointment").First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BillingRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &record, nil
}

var _ IBillingRepository = (*BillingRepository)(nil)
