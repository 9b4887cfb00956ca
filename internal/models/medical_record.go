package models

// MedicalRecordType represents the type of medical record
type MedicalRecordType string

const (
	RecordTypeConsultation MedicalRecordType = "consultation"
	RecordTypeLabResult    MedicalRecordType = "lab-result"
	RecordTypeImaging      MedicalRecordType = "imaging"
	RecordTypeVaccination  MedicalRecordType = "vaccination"
)

// MedicalRecord represents an entry in a patient's medical history,
// authored by a doctor.
type MedicalRecord struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	DoctorID    string            `json:"doctorId"`
	PatientName string            `json:"patientName"`
	DoctorName  string            `json:"doctorName"`
	Title       string            `json:"title"`
	Type        MedicalRecordType `json:"type"`
	Date        string            `json:"date"`
	Diagnosis   string            `json:"diagnosis"`
	Symptoms    string            `json:"symptoms"`
	Treatment   string            `json:"treatment"`
	Notes       string            `json:"notes"`
}
