package models

// PrescriptionStatus represents the status of a prescription
type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "Active"
	PrescriptionCompleted PrescriptionStatus = "Completed"
	PrescriptionExpired   PrescriptionStatus = "Expired"
)

// Prescription represents medication prescribed by a doctor to a patient.
type Prescription struct {
	ID             string             `json:"id"`
	PatientID      string             `json:"patientId"`
	DoctorID       string             `json:"doctorId"`
	PatientName    string             `json:"patientName"`
	DoctorName     string             `json:"doctorName"`
	Medication     string             `json:"medication"`
	Dosage         string             `json:"dosage"`
	Duration       string             `json:"duration"`
	Instructions   string             `json:"instructions"`
	Status         PrescriptionStatus `json:"status"`
	PrescribedDate string             `json:"prescribedDate"`
}
