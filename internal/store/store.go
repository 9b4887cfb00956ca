package store

import (
	"errors"
	"time"

	"medicare-portal-server/internal/models"
)

// Sentinel errors mapped to HTTP status codes by the handlers.
var (
	// ErrDuplicateEmail is returned by Register when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Authenticate on any mismatch.
	// It does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned by lookups for a missing identifier.
	ErrNotFound = errors.New("not found")
)

// UserStore manages portal accounts.
type UserStore interface {
	Register(user *models.User, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}

// RecordStore exposes role-scoped reads over the clinical collections and
// the single write operation in scope (appointment creation).
type RecordStore interface {
	ListAppointments(scope AccessScope) []models.Appointment
	ListPrescriptions(scope AccessScope) []models.Prescription
	ListMedicalRecords(scope AccessScope) []models.MedicalRecord
	CreateAppointment(appt models.Appointment) models.Appointment
}

// StatsStore derives dashboard counters from the clinical collections.
type StatsStore interface {
	PatientStats(scope AccessScope, now time.Time) PatientStats
	DoctorStats(scope AccessScope, now time.Time) DoctorStats
	AdminStats() AdminStats
}

// Store is the full storage surface handed to the route setup.
type Store interface {
	UserStore
	RecordStore
	StatsStore
}

// AccessScope identifies the caller for role-scoped reads.
type AccessScope struct {
	UserID string
	Role   models.Role
}

// Allows reports whether a record owned by the given patient and doctor is
// visible to this caller. This switch is the only access-control decision
// in the data layer.
func (s AccessScope) Allows(patientID, doctorID string) bool {
	switch s.Role {
	case models.RolePatient:
		return patientID == s.UserID
	case models.RoleDoctor:
		return doctorID == s.UserID
	default:
		// Administrative view: unfiltered.
		return true
	}
}
