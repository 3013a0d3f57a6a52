package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"serenemind.app/models"
	"serenemind.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientService struct {
	patients map[uint]models.Patient
	nextID   uint
}

func newFakePatientService() *fakePatientService {
	return &fakePatientService{patients: map[uint]models.Patient{}}
}

func (s *fakePatientService) CreatePatient(ctx context.Context, patient models.Patient) (*models.Patient, error) {
	if err := services.ValidatePatient(patient); err != nil {
		return nil, err
	}
	s.nextID++
	patient.ID = s.nextID
	s.patients[patient.ID] = patient
	return &patient, nil
}

func (s *fakePatientService) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	all := make([]models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		all = append(all, p)
	}
	return all, nil
}

func (s *fakePatientService) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, services.ErrPatientNotFound
	}
	return &p, nil
}

func (s *fakePatientService) UpdatePatient(ctx context.Context, id uint, patient models.Patient) error {
	if err := services.ValidatePatient(patient); err != nil {
		return err
	}
	if _, ok := s.patients[id]; !ok {
		return services.ErrPatientNotFound
	}
	patient.ID = id
	s.patients[id] = patient
	return nil
}

func (s *fakePatientService) DeletePatient(ctx context.Context, id uint) error {
	if _, ok := s.patients[id]; !ok {
		return services.ErrPatientNotFound
	}
	delete(s.patients, id)
	return nil
}

var _ services.IPatientService = (*fakePatientService)(nil)

func newPatientTestApp(svc services.IPatientService) *fiber.App {
	app := fiber.New()
	store := session.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	})
	handler := &PatientHandler{service: svc}
	app.Post("/add_patient", handler.CreatePatient)
	app.Get("/edit_patient/:id", handler.ShowUpdatePatient)
	app.Post("/edit_patient/:id", handler.UpdatePatient)
	app.Post("/delete_patient/:id", handler.DeletePatient)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func patientForm() url.Values {
	form := url.Values{}
	form.Set("name", "Jordan Avery")
	form.Set("dob", "1990-04-12")
	form.Set("contact", "555-0134")
	form.Set("medical_history", "No known allergies")
	return form
}

func TestCreatePatientRedirectsToList(t *testing.T) {
	svc := newFakePatientService()
	app := newPatientTestApp(svc)

	resp := postForm(t, app, "/add_patient", patientForm())

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/patients", resp.Header.Get("Location"))
	require.Len(t, svc.patients, 1)
	assert.Equal(t, "Jordan Avery", svc.patients[1].Name)
}

func TestCreatePatientMissingFieldRedirectsWithoutSaving(t *testing.T) {
	svc := newFakePatientService()
	app := newPatientTestApp(svc)
	form := patientForm()
	form.Set("contact", "")

	resp := postForm(t, app, "/add_patient", form)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/patients", resp.Header.Get("Location"))
	assert.Empty(t, svc.patients)
}

func TestShowUpdatePatientUnknownIDIsNotFoundJSON(t *testing.T) {
	app := newPatientTestApp(newFakePatientService())

	req := httptest.NewRequest(http.MethodGet, "/edit_patient/9", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "patient not found", payload["error"])
}

func TestUpdatePatientOverwritesRecord(t *testing.T) {
	svc := newFakePatientService()
	app := newPatientTestApp(svc)
	postForm(t, app, "/add_patient", patientForm())

	form := patientForm()
	form.Set("contact", "555-0199")
	resp := postForm(t, app, "/edit_patient/1", form)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "555-0199", svc.patients[1].Contact)
}

func TestDeletePatientTwiceIsNotFoundJSON(t *testing.T) {
	svc := newFakePatientService()
	app := newPatientTestApp(svc)
	postForm(t, app, "/add_patient", patientForm())

	first := postForm(t, app, "/delete_patient/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, first.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/delete_patient/1", nil)
	req.Header.Set("Accept", "application/json")
	second, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, second.StatusCode)
}
