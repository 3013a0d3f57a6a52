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

// PatientServiceError is the typed error for patient operations.
type PatientServiceError string

func (e PatientServiceError) Error() string { return string(e) }

const (
	ErrPatientNotFound       PatientServiceError = "patient not found"
	ErrPatientFieldsRequired PatientServiceError = "name, date of birth, contact and medical history are required"
	ErrPatientCreationFailed PatientServiceError = "patient could not be created"
	ErrPatientUpdateFailed   PatientServiceError = "patient could not be updated"
	ErrPatientDeletionFailed PatientServiceError = "patient could not be deleted"
)

// IPatientService handles patient record operations.
type IPatientService interface {
	CreatePatient(ctx context.Context, patient models.Patient) (*models.Patient, error)
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetPatientByID(ctx context.Context, id uint) (*models.Patient, error)
	UpdatePatient(ctx context.Context, id uint, patient models.Patient) error
	DeletePatient(ctx context.Context, id uint) error
}

// PatientService implements IPatientService.
type PatientService struct {
	repo repositories.IPatientRepository
}

// NewPatientService creates a PatientService on the shared repositories.
func NewPatientService() IPatientService {
	return &PatientService{repo: repositories.NewPatientRepository()}
}

// ValidatePatient checks that every required field is present.
func ValidatePatient(patient models.Patient) error {
	if strings.TrimSpace(patient.Name) == "" ||
		strings.TrimSpace(patient.DOB) == "" ||
		strings.TrimSpace(patient.Contact) == "" ||
		strings.TrimSpace(patient.MedicalHistory) == "" {
		return ErrPatientFieldsRequired
	}
	return nil
}

// CreatePatient validates and stores a new patient.
func (s *PatientService) CreatePatient(ctx context.Context, patient models.Patient) (*models.Patient, error) {
	if err := ValidatePatient(patient); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &patient); err != nil {
		configslog.Log.Error("PatientService.CreatePatient failed", zap.Error(err))
		return nil, ErrPatientCreationFailed
	}
	return &patient, nil
}

// GetAllPatients returns every patient.
func (s *PatientService) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return s.repo.FindAll(ctx)
}

// GetPatientByID fetches one patient or ErrPatientNotFound.
func (s *PatientService) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// UpdatePatient overwrites every mutable field from the submitted values.
func (s *PatientService) UpdatePatient(ctx context.Context, id uint, updated models.Patient) error {
	if err := ValidatePatient(updated); err != nil {
		return err
	}
	patient, err := s.GetPatientByID(ctx, id)
	if err != nil {
		return err
	}
	patient.Name = updated.Name
	patient.DOB = updated.DOB
	patient.Contact = updated.Contact
	patient.MedicalHistory = updated.MedicalHistory
	if err := s.repo.Update(ctx, patient); err != nil {
		configslog.Log.Error("PatientService.UpdatePatient failed", zap.Uint("id", id), zap.Error(err))
		return ErrPatientUpdateFailed
	}
	return nil
}

// DeletePatient removes the patient permanently.
func (s *PatientService) DeletePatient(ctx context.Context, id uint) error {
	patient, err := s.GetPatientByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, patient); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPatientNotFound
		}
		configslog.Log.Error("PatientService.DeletePatient failed", zap.Uint("id", id), zap.Error(err))
		return ErrPatientDeletionFailed
	}
	return nil
}

var _ IPatientService = (*PatientService)(nil)
