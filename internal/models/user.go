package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// User represents an account in the portal. Patients and doctors share the
// same record type; role-specific fields are populated per Role.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"-"` // bcrypt hash, never serialized
	Role      Role   `json:"role"`
	Phone     string `json:"phone,omitempty"`

	// Patient fields
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`

	// Doctor fields
	Specialization  string  `json:"specialization,omitempty"`
	LicenseNumber   string  `json:"licenseNumber,omitempty"`
	Experience      int     `json:"experience,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Role            Role    `json:"role"`
	Phone           string  `json:"phone,omitempty"`
	DateOfBirth     string  `json:"dateOfBirth,omitempty"`
	Gender          string  `json:"gender,omitempty"`
	Specialization  string  `json:"specialization,omitempty"`
	LicenseNumber   string  `json:"licenseNumber,omitempty"`
	Experience      int     `json:"experience,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Role:            u.Role,
		Phone:           u.Phone,
		DateOfBirth:     u.DateOfBirth,
		Gender:          u.Gender,
		Specialization:  u.Specialization,
		LicenseNumber:   u.LicenseNumber,
		Experience:      u.Experience,
		ConsultationFee: u.ConsultationFee,
	}
}
