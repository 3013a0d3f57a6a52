package services

import (
	"context"
	"testing"

	"serenemind.app/models"
	"serenemind.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientRepo struct {
	patients map[uint]models.Patient
	nextID   uint
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[uint]models.Patient{}}
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	r.nextID++
	patient.ID = r.nextID
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) FindAll(ctx context.Context) ([]models.Patient, error) {
	all := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		all = append(all, p)
	}
	return all, nil
}

func (r *fakePatientRepo) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, patient *models.Patient) error {
	if _, ok := r.patients[patient.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.patients, patient.ID)
	return nil
}

func (r *fakePatientRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.patients)), nil
}

func validPatient() models.Patient {
	return models.Patient{
		Name:           "Jordan Avery",
		DOB:            "1990-04-12",
		Contact:        "555-0134",
		MedicalHistory: "No known allergies",
	}
}

func TestCreatePatientStoresRecord(t *testing.T) {
	repo := newFakePatientRepo()
	svc := &PatientService{repo: repo}

	patient, err := svc.CreatePatient(context.Background(), validPatient())

	require.NoError(t, err)
	assert.NotZero(t, patient.ID)
	stored, err := svc.GetPatientByID(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Avery", stored.Name)
}

func TestCreatePatientRequiresEveryField(t *testing.T) {
	svc := &PatientService{repo: newFakePatientRepo()}

	for _, mutate := range []func(*models.Patient){
		func(p *models.Patient) { p.Name = "" },
		func(p *models.Patient) { p.DOB = " " },
		func(p *models.Patient) { p.Contact = "" },
		func(p *models.Patient) { p.MedicalHistory = "" },
	} {
		patient := validPatient()
		mutate(&patient)
		_, err := svc.CreatePatient(context.Background(), patient)
		assert.ErrorIs(t, err, ErrPatientFieldsRequired)
	}
}

func TestUpdatePatientOverwritesFields(t *testing.T) {
	repo := newFakePatientRepo()
	svc := &PatientService{repo: repo}
	patient, _ := svc.CreatePatient(context.Background(), validPatient())

	updated := validPatient()
	updated.Contact = "555-0199"
	require.NoError(t, svc.UpdatePatient(context.Background(), patient.ID, updated))

	stored, err := svc.GetPatientByID(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", stored.Contact)
}

func TestUpdatePatientUnknownIDIsNotFound(t *testing.T) {
	svc := &PatientService{repo: newFakePatientRepo()}

	err := svc.UpdatePatient(context.Background(), 9, validPatient())

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDeletePatientTwiceIsNotFound(t *testing.T) {
	repo := newFakePatientRepo()
	svc := &PatientService{repo: repo}
	patient, _ := svc.CreatePatient(context.Background(), validPatient())

	require.NoError(t, svc.DeletePatient(context.Background(), patient.ID))
	err := svc.DeletePatient(context.Background(), patient.ID)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}
