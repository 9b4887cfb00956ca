package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicare-portal-server/internal/models"
	"medicare-portal-server/internal/store"
)

func TestListAppointmentsDoctorScope(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoDoctorEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/appointments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var appointments []models.Appointment
	decodeBody(t, rec, &appointments)
	require.Len(t, appointments, 2)
	for _, appt := range appointments {
		assert.Equal(t, "2", appt.DoctorID)
	}
}

func TestListAppointmentsPatientScope(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoPatientEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/appointments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var appointments []models.Appointment
	decodeBody(t, rec, &appointments)
	require.Len(t, appointments, 2)
	for _, appt := range appointments {
		assert.Equal(t, "1", appt.PatientID)
	}
}

func TestListAppointmentsWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "No token provided", body["message"])
}

func TestCreateAppointment(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoPatientEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodPost, "/api/appointments", token, map[string]string{
		"doctorId": "2",
		"date":     "2024-03-01",
		"time":     "9:00 AM",
		"type":     "Consultation",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Appointment
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "1", created.PatientID)
	assert.Equal(t, "2", created.DoctorID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "John Patient", created.PatientName)
	assert.Equal(t, "Dr. Sarah Johnson", created.DoctorName)
	assert.Equal(t, "Cardiology", created.DoctorSpecialization)

	// The new appointment shows up in the patient's list.
	rec = doJSON(t, router, http.MethodGet, "/api/appointments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var appointments []models.Appointment
	decodeBody(t, rec, &appointments)
	assert.Len(t, appointments, 3)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoPatientEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodPost, "/api/appointments", token, map[string]string{
		"doctorId": "2",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPrescriptionsRoleScoped(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoPatientEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/prescriptions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var prescriptions []models.Prescription
	decodeBody(t, rec, &prescriptions)
	require.Len(t, prescriptions, 2)
	for _, pres := range prescriptions {
		assert.Equal(t, "1", pres.PatientID)
		assert.Equal(t, models.PrescriptionActive, pres.Status)
	}
}

func TestListMedicalRecordsRoleScoped(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoDoctorEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/records", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.MedicalRecord
	decodeBody(t, rec, &records)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "2", record.DoctorID)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/prescriptions",
		"/api/records",
		"/api/dashboard/stats",
	} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}
