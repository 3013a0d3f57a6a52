package services

import (
	"context"
	"testing"

	"serenemind.app/models"
	"serenemind.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	doctors map[uint]models.Doctor
	nextID  uint
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[uint]models.Doctor{}}
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	r.nextID++
	doctor.ID = r.nextID
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context) ([]models.Doctor, error) {
	all := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		all = append(all, d)
	}
	return all, nil
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, doctor *models.Doctor) error {
	if _, ok := r.doctors[doctor.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.doctors, doctor.ID)
	return nil
}

func (r *fakeDoctorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.doctors)), nil
}

func validDoctor() models.Doctor {
	return models.Doctor{
		Name:           "Dr. Priya Raman",
		Specialization: "Psychiatry",
		Contact:        "555-0150",
		LicenseNumber:  "MED-88231",
		Experience:     "12 years",
	}
}

func TestCreateDoctorStoresRecord(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := &DoctorService{repo: repo}

	doctor, err := svc.CreateDoctor(context.Background(), validDoctor())

	require.NoError(t, err)
	assert.NotZero(t, doctor.ID)
	stored, err := svc.GetDoctorByID(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Psychiatry", stored.Specialization)
}

func TestCreateDoctorRequiresEveryField(t *testing.T) {
	svc := &DoctorService{repo: newFakeDoctorRepo()}

	for _, mutate := range []func(*models.Doctor){
		func(d *models.Doctor) { d.Name = "" },
		func(d *models.Doctor) { d.Specialization = "" },
		func(d *models.Doctor) { d.Contact = " " },
		func(d *models.Doctor) { d.LicenseNumber = "" },
		func(d *models.Doctor) { d.Experience = "" },
	} {
		doctor := validDoctor()
		mutate(&doctor)
		_, err := svc.CreateDoctor(context.Background(), doctor)
		assert.ErrorIs(t, err, ErrDoctorFieldsRequired)
	}
}

func TestUpdateDoctorUnknownIDIsNotFound(t *testing.T) {
	svc := &DoctorService{repo: newFakeDoctorRepo()}

	err := svc.UpdateDoctor(context.Background(), 3, validDoctor())

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDeleteDoctorTwiceIsNotFound(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := &DoctorService{repo: repo}
	doctor, _ := svc.CreateDoctor(context.Background(), validDoctor())

	require.NoError(t, svc.DeleteDoctor(context.Background(), doctor.ID))
	err := svc.DeleteDoctor(context.Background(), doctor.ID)

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
