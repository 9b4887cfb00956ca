package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a scheduled visit between a patient and a doctor.
// Date is a calendar day ("2006-01-02"); Time is a display slot ("10:00 AM").
type Appointment struct {
	ID                   string            `json:"id"`
	PatientID            string            `json:"patientId"`
	DoctorID             string            `json:"doctorId"`
	PatientName          string            `json:"patientName"`
	DoctorName           string            `json:"doctorName"`
	DoctorSpecialization string            `json:"doctorSpecialization"`
	Date                 string            `json:"date"`
	Time                 string            `json:"time"`
	Type                 string            `json:"type"`
	Status               AppointmentStatus `json:"status"`
	Notes                string            `json:"notes"`
}
