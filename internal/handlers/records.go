package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/middleware"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

// MedicalRecordHandler handles medical record related requests.
type MedicalRecordHandler struct {
	Records store.RecordStore
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(records store.RecordStore) *MedicalRecordHandler {
	return &MedicalRecordHandler{Records: records}
}

// ListMedicalRecords returns the medical records visible to the caller.
func (h *MedicalRecordHandler) ListMedicalRecords(c *gin.Context) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		utils.Unauthorized(c, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, h.Records.ListMedicalRecords(scope))
}
