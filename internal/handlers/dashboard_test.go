package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicare-portal-server/internal/store"
)

// Fixture dates all lie in early 2024, so relative to the clock at test
// time nothing is upcoming and nothing falls on today.

func TestPatientDashboardStats(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoPatientEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats store.PatientStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 2, stats.TotalAppointments)
	assert.Equal(t, 2, stats.ActivePrescriptions)
	assert.Equal(t, 2, stats.MedicalRecords)
	assert.Equal(t, 0, stats.UpcomingAppointments)
}

func TestDoctorDashboardStats(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, store.DemoDoctorEmail, store.DemoPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats store.DoctorStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 0, stats.TodayAppointments)
	assert.Equal(t, 1, stats.TotalPatients)
	assert.Equal(t, 2, stats.ActivePrescriptions)
	assert.Equal(t, 2, stats.RecordsUpdated)
}

func TestAdminDashboardStats(t *testing.T) {
	router := newTestRouter(t)

	registerRec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"firstName": "Ada",
		"lastName":  "Admin",
		"email":     "admin@medicare.com",
		"password":  "admin-password",
		"role":      "admin",
	})
	require.Equal(t, http.StatusCreated, registerRec.Code)
	token := loginAs(t, router, "admin@medicare.com", "admin-password")

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats store.AdminStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 2, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TotalPrescriptions)
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 3, stats.RegisteredUsers)
}
