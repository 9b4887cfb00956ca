package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/middleware"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

// PrescriptionHandler handles prescription related requests.
type PrescriptionHandler struct {
	Records store.RecordStore
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(records store.RecordStore) *PrescriptionHandler {
	return &PrescriptionHandler{Records: records}
}

// ListPrescriptions returns the prescriptions visible to the caller.
func (h *PrescriptionHandler) ListPrescriptions(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		utils.Unauthorized(c, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, h.Records.ListPrescriptions(scope))
}
