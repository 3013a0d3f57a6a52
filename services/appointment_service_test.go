package services

import (
	"context"
	"testing"

	"serenemind.app/models"
	"serenemind.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uint]models.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	r.nextID++
	appointment.ID = r.nextID
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context) ([]models.Appointment, error) {
	all := make([]models.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		all = append(all, a)
	}
	return all, nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, appointment *models.Appointment) error {
	if _, ok := r.appointments[appointment.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.appointments, appointment.ID)
	return nil
}

func (r *fakeAppointmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

func newAppointmentFixture(t *testing.T) (*AppointmentService, uint, uint) {
	t.Helper()
	patientRepo := newFakePatientRepo()
	doctorRepo := newFakeDoctorRepo()
	patient := validPatient()
	require.NoError(t, patientRepo.Create(context.Background(), &patient))
	doctor := validDoctor()
	require.NoError(t, doctorRepo.Create(context.Background(), &doctor))
	svc := &AppointmentService{
		repo:        newFakeAppointmentRepo(),
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
	return svc, patient.ID, doctor.ID
}

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	svc, patientID, doctorID := newAppointmentFixture(t)

	appointment, err := svc.CreateAppointment(context.Background(), models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2026-09-15",
		Time:      "10:30",
		Purpose:   "Initial consultation",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
}

func TestCreateAppointmentRequiresFields(t *testing.T) {
	svc, patientID, doctorID := newAppointmentFixture(t)

	_, err := svc.CreateAppointment(context.Background(), models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2026-09-15",
	})

	assert.ErrorIs(t, err, ErrAppointmentFieldsRequired)
}

func TestCreateAppointmentRejectsUnknownStatus(t *testing.T) {
	svc, patientID, doctorID := newAppointmentFixture(t)

	_, err := svc.CreateAppointment(context.Background(), models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2026-09-15",
		Time:      "10:30",
		Purpose:   "Follow-up",
		Status:    models.AppointmentStatus("postponed"),
	})

	assert.ErrorIs(t, err, ErrAppointmentStatusInvalid)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	svc, _, doctorID := newAppointmentFixture(t)

	_, err := svc.CreateAppointment(context.Background(), models.Appointment{
		PatientID: 99,
		DoctorID:  doctorID,
		Date:      "2026-09-15",
		Time:      "10:30",
		Purpose:   "Follow-up",
	})

	assert.ErrorIs(t, err, ErrAppointmentPatientMissing)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	svc, patientID, _ := newAppointmentFixture(t)

	_, err := svc.CreateAppointment(context.Background(), models.Appointment{
		PatientID: patientID,
		DoctorID:  99,
		Date:      "2026-09-15",
		Time:      "10:30",
		Purpose:   "Follow-up",
	})

	assert.ErrorIs(t, err, ErrAppointmentDoctorMissing)
}

func TestUpdateAppointmentOverwritesStatus(t *testing.T) {
	svc, patientID, doctorID := newAppointmentFixture(t)
	appointment, err := svc.CreateAppointment(context.Background(), models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2026-09-15",
		Time:      "10:30",
		Purpose:   "Initial consultation",
	})
	require.NoError(t, err)

	err = svc.UpdateAppointment(context.Background(), appointment.ID, models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2026-09-15",
		Time:      "11:00",
		Purpose:   "Initial consultation",
		Status:    models.AppointmentCompleted,
	})
	require.NoError(t, err)

	stored, err := svc.GetAppointmentByID(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, stored.Status)
	assert.Equal(t, "11:00", stored.Time)
}

func TestDeleteAppointmentUnknownIDIsNotFound(t *testing.T) {
	svc, _, _ := newAppointmentFixture(t)

	err := svc.DeleteAppointment(context.Background(), 5)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
