package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"medicare-portal-server/internal/models"
)

const dateLayout = "2006-01-02"

// MemoryStore holds every collection in process memory. It is the explicit
// owner of the demo data: constructed once in main, seeded with fixtures,
// and passed by reference into the handlers. Gin serves requests on
// parallel goroutines, so every access goes through the mutex.
type MemoryStore struct {
	mu             sync.RWMutex
	usersByEmail   map[string]*models.User
	usersByID      map[string]*models.User
	appointments   []models.Appointment
	prescriptions  []models.Prescription
	medicalRecords []models.MedicalRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. Call SeedDemoData to load the
// demo accounts and fixture collections.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByEmail: make(map[string]*models.User),
		usersByID:    make(map[string]*models.User),
	}
}

// Register stores a new account. The email must be unused. When the user
// carries no ID (the normal path), a UUID is assigned; fixture accounts
// keep their preset identifiers.
func (s *MemoryStore) Register(user *models.User, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[user.Email]; exists {
		return nil, ErrDuplicateEmail
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if err := stored.SetPassword(password); err != nil {
		return nil, err
	}

	s.usersByEmail[stored.Email] = &stored
	s.usersByID[stored.ID] = &stored

	out := stored
	return &out, nil
}

// Authenticate looks up the account by email and checks the password
// against the stored bcrypt hash.
func (s *MemoryStore) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByEmail[email]
	if !exists || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	out := *user
	return &out, nil
}

// FindByID returns the account with the given identifier.
func (s *MemoryStore) FindByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByID[id]
	if !exists {
		return nil, ErrNotFound
	}

	out := *user
	return &out, nil
}

// ListAppointments returns the appointments visible to the caller.
func (s *MemoryStore) ListAppointments(scope AccessScope) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.appointments))
	for _, appt := range s.appointments {
		if scope.Allows(appt.PatientID, appt.DoctorID) {
			out = append(out, appt)
		}
	}
	return out
}

// ListPrescriptions returns the prescriptions visible to the caller.
func (s *MemoryStore) ListPrescriptions(scope AccessScope) []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Prescription, 0, len(s.prescriptions))
	for _, pres := range s.prescriptions {
		if scope.Allows(pres.PatientID, pres.DoctorID) {
			out = append(out, pres)
		}
	}
	return out
}

// ListMedicalRecords returns the medical records visible to the caller.
func (s *MemoryStore) ListMedicalRecords(scope AccessScope) []models.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MedicalRecord, 0, len(s.medicalRecords))
	for _, rec := range s.medicalRecords {
		if scope.Allows(rec.PatientID, rec.DoctorID) {
			out = append(out, rec)
		}
	}
	return out
}

// CreateAppointment appends a new appointment and returns it with its
// generated identifier. Overlapping doctor/time slots are not rejected.
func (s *MemoryStore) CreateAppointment(appt models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	s.appointments = append(s.appointments, appt)
	return appt
}

// PatientStats holds the patient dashboard counters.
type PatientStats struct {
	TotalAppointments    int `json:"totalAppointments"`
	ActivePrescriptions  int `json:"activePrescriptions"`
	MedicalRecords       int `json:"medicalRecords"`
	UpcomingAppointments int `json:"upcomingAppointments"`
}

// DoctorStats holds the doctor dashboard counters.
type DoctorStats struct {
	TodayAppointments   int `json:"todayAppointments"`
	TotalPatients       int `json:"totalPatients"`
	ActivePrescriptions int `json:"activePrescriptions"`
	RecordsUpdated      int `json:"recordsUpdated"`
}

// AdminStats holds unfiltered totals for the administrative view.
type AdminStats struct {
	TotalAppointments  int `json:"totalAppointments"`
	TotalPrescriptions int `json:"totalPrescriptions"`
	TotalRecords       int `json:"totalRecords"`
	RegisteredUsers    int `json:"registeredUsers"`
}

// PatientStats derives the dashboard counters for a patient caller.
// An appointment counts as upcoming when its date parses and lies
// strictly after now.
func (s *MemoryStore) PatientStats(scope AccessScope, now time.Time) PatientStats {
	appointments := s.ListAppointments(scope)
	prescriptions := s.ListPrescriptions(scope)
	records := s.ListMedicalRecords(scope)

	stats := PatientStats{
		TotalAppointments: len(appointments),
		MedicalRecords:    len(records),
	}
	for _, pres := range prescriptions {
		if pres.Status == models.PrescriptionActive {
			stats.ActivePrescriptions++
		}
	}
	for _, appt := range appointments {
		if date, err := time.Parse(dateLayout, appt.Date); err == nil && date.After(now) {
			stats.UpcomingAppointments++
		}
	}
	return stats
}

// DoctorStats derives the dashboard counters for a doctor caller.
// TotalPatients counts distinct patient identifiers across the doctor's
// appointments, prescriptions, and records.
func (s *MemoryStore) DoctorStats(scope AccessScope, now time.Time) DoctorStats {
	appointments := s.ListAppointments(scope)
	prescriptions := s.ListPrescriptions(scope)
	records := s.ListMedicalRecords(scope)

	today := now.Format(dateLayout)
	patients := make(map[string]struct{})

	stats := DoctorStats{RecordsUpdated: len(records)}
	for _, appt := range appointments {
		if appt.Date == today {
			stats.TodayAppointments++
		}
		patients[appt.PatientID] = struct{}{}
	}
	for _, pres := range prescriptions {
		if pres.Status == models.PrescriptionActive {
			stats.ActivePrescriptions++
		}
		patients[pres.PatientID] = struct{}{}
	}
	for _, rec := range records {
		patients[rec.PatientID] = struct{}{}
	}
	stats.TotalPatients = len(patients)
	return stats
}

// AdminStats derives unfiltered totals over every collection.
func (s *MemoryStore) AdminStats() AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return AdminStats{
		TotalAppointments:  len(s.appointments),
		TotalPrescriptions: len(s.prescriptions),
		TotalRecords:       len(s.medicalRecords),
		RegisteredUsers:    len(s.usersByID),
	}
}
