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

// DoctorServiceError is the typed error for doctor operations.
type DoctorServiceError string

func (e DoctorServiceError) Error() string { return string(e) }

const (
	ErrDoctorNotFound       DoctorServiceError = "doctor not found"
	ErrDoctorFieldsRequired DoctorServiceError = "name, specialization, contact, license number and experience are required"
	ErrDoctorCreationFailed DoctorServiceError = "doctor could not be created"
	ErrDoctorUpdateFailed   DoctorServiceError = "doctor could not be updated"
	ErrDoctorDeletionFailed DoctorServiceError = "doctor could not be deleted"
)

// IDoctorService handles doctor record operations.
type IDoctorService interface {
	CreateDoctor(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, id uint, doctor models.Doctor) error
	DeleteDoctor(ctx context.Context, id uint) error
}

// DoctorService implements IDoctorService.
type DoctorService struct {
	repo repositories.IDoctorRepository
}

// NewDoctorService creates a DoctorService on the shared repositories.
func NewDoctorService() IDoctorService {
	return &DoctorService{repo: repositories.NewDoctorRepository()}
}

// ValidateDoctor checks that every required field is present.
func ValidateDoctor(doctor models.Doctor) error {
	if strings.TrimSpace(doctor.Name) == "" ||
		strings.TrimSpace(doctor.Specialization) == "" ||
		strings.TrimSpace(doctor.Contact) == "" ||
		strings.TrimSpace(doctor.LicenseNumber) == "" ||
		strings.TrimSpace(doctor.Experience) == "" {
		return ErrDoctorFieldsRequired
	}
	return nil
}

// CreateDoctor validates and stores a new doctor.
func (s *DoctorService) CreateDoctor(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	if err := ValidateDoctor(doctor); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &doctor); err != nil {
		configslog.Log.Error("DoctorService.CreateDoctor failed", zap.Error(err))
		return nil, ErrDoctorCreationFailed
	}
	return &doctor, nil
}

// GetAllDoctors returns every doctor.
func (s *DoctorService) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.repo.FindAll(ctx)
}

// GetDoctorByID fetches one doctor or ErrDoctorNotFound.
func (s *DoctorService) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

// UpdateDoctor overwrites every mutable field from the submitted values.
func (s *DoctorService) UpdateDoctor(ctx context.Context, id uint, updated models.Doctor) error {
	if err := ValidateDoctor(updated); err != nil {
		return err
	}
	doctor, err := s.GetDoctorByID(ctx, id)
	if err != nil {
		return err
	}
	doctor.Name = updated.Name
	doctor.Specialization = updated.Specialization
	doctor.Contact = updated.Contact
	doctor.LicenseNumber = updated.LicenseNumber
	doctor.Experience = updated.Experience
	if err := s.repo.Update(ctx, doctor); err != nil {
		configslog.Log.Error("DoctorService.UpdateDoctor failed", zap.Uint("id", id), zap.Error(err))
		return ErrDoctorUpdateFailed
	}
	return nil
}

// DeleteDoctor removes the doctor permanently.
func (s *DoctorService) DeleteDoctor(ctx context.Context, id uint) error {
	doctor, err := s.GetDoctorByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, doctor); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDoctorNotFound
		}
		configslog.Log.Error("DoctorService.DeleteDoctor failed", zap.Uint("id", id), zap.Error(err))
		return ErrDoctorDeletionFailed
	}
	return nil
}

var _ IDoctorService = (*DoctorService)(nil)
