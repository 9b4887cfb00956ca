package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/middleware"
	"medicare-portal-server/internal/models"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

// DashboardHandler derives role-dependent dashboard counters.
type DashboardHandler struct {
	Stats store.StatsStore
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(stats store.StatsStore) *DashboardHandler {
	return &DashboardHandler{Stats: stats, Now: time.Now}
}

// GetStats returns the dashboard counters for the caller's role. Patients
// and doctors get counters over their own records; any other role gets
// the administrative totals.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		utils.Unauthorized(c, "Invalid token")
		return
	}

	switch scope.Role {
	case models.RolePatient:
		c.JSON(http.StatusOK, h.Stats.PatientStats(scope, h.Now()))
	case models.RoleDoctor:
		c.JSON(http.StatusOK, h.Stats.DoctorStats(scope, h.Now()))
	default:
		c.JSON(http.StatusOK, h.Stats.AdminStats())
	}
}
