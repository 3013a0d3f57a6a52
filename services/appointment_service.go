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

// AppointmentServiceError is the typed error for appointment operations.
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound       AppointmentServiceError = "appointment not found"
	ErrAppointmentFieldsRequired AppointmentServiceError = "patient, doctor, date, time and purpose are required"
	ErrAppointmentStatusInvalid  AppointmentServiceError = "status must be one of: scheduled, completed, canceled"
	ErrAppointmentPatientMissing AppointmentServiceError = "referenced patient does not exist"
	ErrAppointmentDoctorMissing  AppointmentServiceError = "referenced doctor does not exist"
	ErrAppointmentCreationFailed AppointmentServiceError = "appointment could not be created"
	ErrAppointmentUpdateFailed   AppointmentServiceError = "appointment could not be updated"
	ErrAppointmentDeletionFailed AppointmentServiceError = "appointment could not be deleted"
)

// IAppointmentService handles appointment operations.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error)
	GetAllAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id uint, appointment models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error
}

// AppointmentService implements IAppointmentService. Referential checks
// against patients and doctors happen here, ahead of the schema constraint.
type AppointmentService struct {
	repo        repositories.IAppointmentRepository
	patientRepo repositories.IPatientRepository
	doctorRepo  repositories.IDoctorRepository
}

// NewAppointmentService creates an AppointmentService on the shared repositories.
func NewAppointmentService() IAppointmentService {
	return &AppointmentService{
		repo:        repositories.NewAppointmentRepository(),
		patientRepo: repositories.NewPatientRepository(),
		doctorRepo:  repositories.NewDoctorRepository(),
	}
}

// ValidateAppointment checks required fields and the status enumeration.
func ValidateAppointment(appointment models.Appointment) error {
	if appointment.PatientID == 0 || appointment.DoctorID == 0 ||
		strings.TrimSpace(appointment.Date) == "" ||
		strings.TrimSpace(appointment.Time) == "" ||
		strings.TrimSpace(appointment.Purpose) == "" {
		return ErrAppointmentFieldsRequired
	}
	if appointment.Status != "" && !appointment.Status.IsValid() {
		return ErrAppointmentStatusInvalid
	}
	return nil
}

func (s *AppointmentService) checkReferences(ctx context.Context, appointment models.Appointment) error {
	if _, err := s.patientRepo.FindByID(ctx, appointment.PatientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentPatientMissing
		}
		return err
	}
	if _, err := s.doctorRepo.FindByID(ctx, appointment.DoctorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentDoctorMissing
		}
		return err
	}
	return nil
}

// CreateAppointment validates, checks references and stores a new
// appointment. An empty status defaults to scheduled.
func (s *AppointmentService) CreateAppointment(ctx context.Context, appointment models.Appointment) (*models.Appointment, error) {
	if err := ValidateAppointment(appointment); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, appointment); err != nil {
		return nil, err
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentScheduled
	}
	if err := s.repo.Create(ctx, &appointment); err != nil {
		configslog.Log.Error("AppointmentService.CreateAppointment failed", zap.Error(err))
		return nil, ErrAppointmentCreationFailed
	}
	return &appointment, nil
}

// GetAllAppointments returns every appointment with patient and doctor loaded.
func (s *AppointmentService) GetAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.FindAll(ctx)
}

// GetAppointmentByID fetches one appointment or ErrAppointmentNotFound.
func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// UpdateAppointment overwrites every mutable field from the submitted values.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uint, updated models.Appointment) error {
	if err := ValidateAppointment(updated); err != nil {
		return err
	}
	if updated.Status == "" {
		return ErrAppointmentStatusInvalid
	}
	if err := s.checkReferences(ctx, updated); err != nil {
		return err
	}
	appointment, err := s.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}
	appointment.PatientID = updated.PatientID
	appointment.DoctorID = updated.DoctorID
	appointment.Date = updated.Date
	appointment.Time = updated.Time
	appointment.Purpose = updated.Purpose
	appointment.Status = updated.Status
	// Clear stale preloads so Save does not write associations.
	appointment.Patient = models.Patient{}
	appointment.Doctor = models.Doctor{}
	if err := s.repo.Update(ctx, appointment); err != nil {
		configslog.Log.Error("AppointmentService.UpdateAppointment failed", zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentUpdateFailed
	}
	return nil
}

// DeleteAppointment removes the appointment permanently.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	appointment, err := s.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, appointment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("AppointmentService.DeleteAppointment failed", zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentDeletionFailed
	}
	return nil
}

var _ IAppointmentService = (*AppointmentService)(nil)
