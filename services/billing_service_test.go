package services

import (
	"context"
	"testing"

	"serenemind.app/models"
	"serenemind.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillingRepo struct {
	records map[uint]models.BillingRecord
	nextID  uint
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{records: map[uint]models.BillingRecord{}}
}

func (r *fakeBillingRepo) Create(ctx context.Context, record *models.BillingRecord) error {
	r.nextID++
	record.ID = r.nextID
	r.records[record.ID] = *record
	return nil
}

func (r *fakeBillingRepo) FindAll(ctx context.Context) ([]models.BillingRecord, error) {
	all := make([]models.BillingRecord, 0, len(r.records))
	for _, rec := range r.records {
		all = append(all, rec)
	}
	return all, nil
}

func (r *fakeBillingRepo) FindByID(ctx context.Context, id uint) (*models.BillingRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &rec, nil
}

func (r *fakeBillingRepo) Update(ctx context.Context, record *models.BillingRecord) error {
	r.records[record.ID] = *record
	return nil
}

func (r *fakeBillingRepo) Delete(ctx context.Context, record *models.BillingRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.records, record.ID)
	return nil
}

func (r *fakeBillingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func newBillingFixture(t *testing.T) (*BillingService, uint, uint) {
	t.Helper()
	patientRepo := newFakePatientRepo()
	appointmentRepo := newFakeAppointmentRepo()
	patient := validPatient()
	require.NoError(t, patientRepo.Create(context.Background(), &patient))
	appointment := models.Appointment{
		PatientID: patient.ID,
		DoctorID:  1,
		Date:      "2026-09-15",
		Time:      "10:30",
		Purpose:   "Initial consultation",
		Status:    models.AppointmentScheduled,
	}
	require.NoError(t, appointmentRepo.Create(context.Background(), &appointment))
	svc := &BillingService{
		repo:            newFakeBillingRepo(),
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
	return svc, appointment.ID, patient.ID
}

func TestCreateRecordDefaultsToPending(t *testing.T) {
	svc, appointmentID, patientID := newBillingFixture(t)

	record, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          patientID,
		ServiceDescription: "Therapy session",
		Amount:             120.50,
		DueDate:            "2026-10-01",
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, record.PaymentStatus)
}

func TestCreateRecordRejectsNegativeAmount(t *testing.T) {
	svc, appointmentID, patientID := newBillingFixture(t)

	_, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          patientID,
		ServiceDescription: "Therapy session",
		Amount:             -1,
		DueDate:            "2026-10-01",
	})

	assert.ErrorIs(t, err, ErrBillingAmountNegative)
}

func TestCreateRecordAcceptsZeroAmount(t *testing.T) {
	svc, appointmentID, patientID := newBillingFixture(t)

	record, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          patientID,
		ServiceDescription: "Covered by insurance",
		Amount:             0,
		DueDate:            "2026-10-01",
	})

	require.NoError(t, err)
	assert.Zero(t, record.Amount)
}

func TestCreateRecordRejectsUnknownStatus(t *testing.T) {
	svc, appointmentID, patientID := newBillingFixture(t)

	_, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          patientID,
		ServiceDescription: "Therapy session",
		Amount:             80,
		DueDate:            "2026-10-01",
		PaymentStatus:      models.PaymentStatus("refunded"),
	})

	assert.ErrorIs(t, err, ErrBillingStatusInvalid)
}

func TestCreateRecordUnknownAppointment(t *testing.T) {
	svc, _, patientID := newBillingFixture(t)

	_, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      42,
		PatientID:          patientID,
		ServiceDescription: "Therapy session",
		Amount:             80,
		DueDate:            "2026-10-01",
	})

	assert.ErrorIs(t, err, ErrBillingAppointmentMissing)
}

func TestCreateRecordUnknownPatient(t *testing.T) {
	svc, appointmentID, _ := newBillingFixture(t)

	_, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          42,
		ServiceDescription: "Therapy session",
		Amount:             80,
		DueDate:            "2026-10-01",
	})

	assert.ErrorIs(t, err, ErrBillingPatientMissing)
}

func TestUpdateRecordOverwritesPaymentStatus(t *testing.T) {
	svc, appointmentID, patientID := newBillingFixture(t)
	record, err := svc.CreateRecord(context.Background(), models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          patientID,
		ServiceDescription: "Therapy session",
		Amount:             120.50,
		DueDate:            "2026-10-01",
	})
	require.NoError(t, err)

	err = svc.UpdateRecord(context.Background(), record.ID, models.BillingRecord{
		AppointmentID:      appointmentID,
		PatientID:          patientID,
		ServiceDescription: "Therapy session",
		Amount:             120.50,
		DueDate:            "2026-10-01",
		PaymentStatus:      models.PaymentPaid,
	})
	require.NoError(t, err)

	stored, err := svc.GetRecordByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestDeleteRecordUnknownIDIsNotFound(t *testing.T) {
	svc, _, _ := newBillingFixture(t)

	err := svc.DeleteRecord(context.Background(), 11)

	assert.ErrorIs(t, err, ErrBillingNotFound)
}
