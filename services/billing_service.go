package services

import (
	"context"
	"errors"
	"strings"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/repositories"

	"go.uber.org/zap"
)

// BillingServiceError is the typed error for billing record operations.
type BillingServiceError string

func (e BillingServiceError) Error() string { return string(e) }

const (
	ErrBillingNotFound           BillingServiceError = "billing record not found"
	ErrBillingFieldsRequired     BillingServiceError = "appointment, patient, service description, amount and due date are required"
	ErrBillingAmountNegative     BillingServiceError = "amount must not be negative"
	ErrBillingStatusInvalid      BillingServiceError = "payment status must be one of: pending, paid, overdue"
	ErrBillingAppointmentMissing BillingServiceError = "referenced appointment does not exist"
	ErrBillingPatientMissing     BillingServiceError = "referenced patient does not exist"
	ErrBillingCreationFailed     BillingServiceError = "billing record could not be created"
	ErrBillingUpdateFailed       BillingServiceError = "billing record could not be updated"
	ErrBillingDeletionFailed     BillingServiceError = "billing record could not be deleted"
)

// IBillingService handles billing record operations.
type IBillingService interface {
	CreateRecord(ctx context.Context, record models.BillingRecord) (*models.BillingRecord, error)
	GetAllRecords(ctx context.Context) ([]models.BillingRecord, error)
	GetRecordByID(ctx context.Context, id uint) (*models.BillingRecord, error)
	UpdateRecord(ctx context.Context, id uint, record models.BillingRecord) error
	DeleteRecord(ctx context.Context, id uint) error
}

// BillingService implements IBillingService.
type BillingService struct {
	repo            repositories.IBillingRepository
	appointmentRepo repositories.IAppointmentRepository
	patientRepo     repositories.IPatientRepository
}

// NewBillingService creates a BillingService on the shared repositories.
func NewBillingService() IBillingService {
	return &BillingService{
		repo:            repositories.NewBillingRepository(),
		appointmentRepo: repositories.NewAppointmentRepository(),
		patientRepo:     repositories.NewPatientRepository(),
	}
}

// ValidateBillingRecord checks required fields, the payment status
// enumeration, and that the amount is not negative.
func ValidateBillingRecord(record models.BillingRecord) error {
	if record.AppointmentID == 0 || record.PatientID == 0 ||
		strings.TrimSpace(record.ServiceDescription) == "" ||
		strings.TrimSpace(record.DueDate) == "" {
		return ErrBillingFieldsRequired
	}
	if record.Amount < 0 {
		return ErrBillingAmountNegative
	}
	if record.PaymentStatus != "" && !record.PaymentStatus.IsValid() {
		return ErrBillingStatusInvalid
	}
	return nil
}

func (s *BillingService) checkReferences(ctx context.Context, record models.BillingRecord) error {
	if _, err := s.appointmentRepo.FindByID(ctx, record.AppointmentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBillingAppointmentMissing
		}
		return err
	}
	if _, err := s.patientRepo.FindByID(ctx, record.PatientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBillingPatientMissing
		}
		return err
	}
	return nil
}

// CreateRecord validates, checks references and stores a new billing record.
// An empty payment status defaults to pending.
func (s *BillingService) CreateRecord(ctx context.Context, record models.BillingRecord) (*models.BillingRecord, error) {
	if err := ValidateBillingRecord(record); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, record); err != nil {
		return nil, err
	}
	if record.PaymentStatus == "" {
		record.PaymentStatus = models.PaymentPending
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		configslog.Log.Error("BillingService.CreateRecord failed", zap.Error(err))
		return nil, ErrBillingCreationFailed
	}
	return &record, nil
}

// GetAllRecords returns every billing record with patient and appointment loaded.
func (s *BillingService) GetAllRecords(ctx context.Context) ([]models.BillingRecord, error) {
	return s.repo.FindAll(ctx)
}

// GetRecordByID fetches one billing record or ErrBillingNotFound.
func (s *BillingService) GetRecordByID(ctx context.Context, id uint) (*models.BillingRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBillingNotFound
		}
		return nil, err
	}
	return record, nil
}

// UpdateRecord overwrites every mutable field from the submitted values.
func (s *BillingService) UpdateRecord(ctx context.Context, id uint, updated models.BillingRecord) error {
	if err := ValidateBillingRecord(updated); err != nil {
		return err
	}
	if updated.PaymentStatus == "" {
		return ErrBillingStatusInvalid
	}
	if err := s.checkReferences(ctx, updated); err != nil {
		return err
	}
	record, err := s.GetRecordByID(ctx, id)
	if err != nil {
		return err
	}
	record.AppointmentID = updated.AppointmentID
	record.PatientID = updated.PatientID
	record.ServiceDescription = updated.ServiceDescription
	record.Amount = updated.Amount
	record.PaymentStatus = updated.PaymentStatus
	record.DueDate = updated.DueDate
	record.Notes = updated.Notes
	// Clear stale preloads so Save does not write associations.
	record.Appointment = models.Appointment{}
	record.Patient = models.Patient{}
	if err := s.repo.Update(ctx, record); err != nil {
		configslog.Log.Error("BillingService.UpdateRecord failed", zap.Uint("id", id), zap.Error(err))
		return ErrBillingUpdateFailed
	}
	return nil
}

// DeleteRecord removes the billing record permanently.
func (s *BillingService) DeleteRecord(ctx context.Context, id uint) error {
	record, err := s.GetRecordByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBillingNotFound
		}
		configslog.Log.Error("BillingService.DeleteRecord failed", zap.Uint("id", id), zap.Error(err))
		return ErrBillingDeletionFailed
	}
	return nil
}

var _ IBillingService = (*BillingService)(nil)
