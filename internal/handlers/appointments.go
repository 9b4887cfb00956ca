package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/middleware"
	"medicare-portal-server/internal/models"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Records store.RecordStore
	Users   store.UserStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(records store.RecordStore, users store.UserStore) *AppointmentHandler {
	return &AppointmentHandler{Records: records, Users: users}
}

// ListAppointments returns the appointments visible to the caller:
// patients see their own, doctors see the ones they hold, admins see all.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		utils.Unauthorized(c, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, h.Records.ListAppointments(scope))
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Notes    string `json:"notes"`
}

// CreateAppointment books a new appointment for the caller. The caller is
// always the patient in this flow; the record starts out pending.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		utils.Unauthorized(c, "Invalid token")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required")
		return
	}

	appt := models.Appointment{
		PatientID: scope.UserID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      req.Type,
		Status:    models.StatusPending,
		Notes:     req.Notes,
	}
	if patient, err := h.Users.FindByID(scope.UserID); err == nil {
		appt.PatientName = patient.FullName()
	}
	if doctor, err := h.Users.FindByID(req.DoctorID); err == nil {
		appt.DoctorName = doctor.FullName()
		appt.DoctorSpecialization = doctor.Specialization
	}

	created := h.Records.CreateAppointment(appt)
	c.JSON(http.StatusCreated, created)
}
