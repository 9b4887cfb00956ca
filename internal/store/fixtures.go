package store

import (
	"fmt"

	"medicare-portal-server/internal/models"
)

// Demo account credentials. Both fixture accounts share the same password;
// it is bcrypt-hashed at seed time.
const (
	DemoPatientEmail = "patient@medicare.com"
	DemoDoctorEmail  = "doctor@medicare.com"
	DemoPassword     = "password123"
)

// SeedDemoData loads the two demo accounts and the fixture collections.
// Intended to run once against a fresh store.
func (s *MemoryStore) SeedDemoData() error {
	users := []models.User{
		{
			ID:          "1",
			FirstName:   "John",
			LastName:    "Patient",
			Email:       DemoPatientEmail,
			Role:        models.RolePatient,
			Phone:       "+1-555-0123",
			DateOfBirth: "1990-05-15",
			Gender:      "male",
		},
		{
			ID:              "2",
			FirstName:       "Dr. Sarah",
			LastName:        "Johnson",
			Email:           DemoDoctorEmail,
			Role:            models.RoleDoctor,
			Specialization:  "Cardiology",
			LicenseNumber:   "MD123456",
			Experience:      8,
			ConsultationFee: 150,
		},
	}
	for i := range users {
		if _, err := s.Register(&users[i], DemoPassword); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = []models.Appointment{
		{
			ID:                   "1",
			PatientID:            "1",
			DoctorID:             "2",
			PatientName:          "John Patient",
			DoctorName:           "Dr. Sarah Johnson",
			DoctorSpecialization: "Cardiology",
			Date:                 "2024-02-15",
			Time:                 "10:00 AM",
			Type:                 "Regular Checkup",
			Status:               models.StatusConfirmed,
			Notes:                "Annual physical examination",
		},
		{
			ID:                   "2",
			PatientID:            "1",
			DoctorID:             "2",
			PatientName:          "John Patient",
			DoctorName:           "Dr. Sarah Johnson",
			DoctorSpecialization: "Cardiology",
			Date:                 "2024-02-20",
			Time:                 "2:30 PM",
			Type:                 "Follow-up",
			Status:               models.StatusPending,
			Notes:                "Follow-up for blood pressure monitoring",
		},
	}

	s.prescriptions = []models.Prescription{
		{
			ID:             "1",
			PatientID:      "1",
			DoctorID:       "2",
			PatientName:    "John Patient",
			DoctorName:     "Dr. Sarah Johnson",
			Medication:     "Lisinopril 10mg",
			Dosage:         "Once daily",
			Duration:       "30 days",
			Instructions:   "Take with food in the morning",
			Status:         models.PrescriptionActive,
			PrescribedDate: "2024-01-15",
		},
		{
			ID:             "2",
			PatientID:      "1",
			DoctorID:       "2",
			PatientName:    "John Patient",
			DoctorName:     "Dr. Sarah Johnson",
			Medication:     "Metformin 500mg",
			Dosage:         "Twice daily",
			Duration:       "90 days",
			Instructions:   "Take with meals",
			Status:         models.PrescriptionActive,
			PrescribedDate: "2024-01-10",
		},
	}

	s.medicalRecords = []models.MedicalRecord{
		{
			ID:          "1",
			PatientID:   "1",
			DoctorID:    "2",
			PatientName: "John Patient",
			DoctorName:  "Dr. Sarah Johnson",
			Title:       "Annual Physical Examination",
			Type:        models.RecordTypeConsultation,
			Date:        "2024-01-28",
			Diagnosis:   "Hypertension, well controlled",
			Symptoms:    "No acute symptoms",
			Treatment:   "Continue current medication",
			Notes:       "Patient reports feeling well. Blood pressure stable.",
		},
		{
			ID:          "2",
			PatientID:   "1",
			DoctorID:    "2",
			PatientName: "John Patient",
			DoctorName:  "Dr. Sarah Johnson",
			Title:       "Blood Work Results",
			Type:        models.RecordTypeLabResult,
			Date:        "2024-01-20",
			Diagnosis:   "Normal glucose levels",
			Symptoms:    "Routine screening",
			Treatment:   "No treatment needed",
			Notes:       "All lab values within normal range",
		},
	}

	return nil
}
