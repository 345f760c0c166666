package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/httpresp"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's own audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var logs []models.AuditLog
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not load the audit trail.")
		return
	}

	httpresp.OK(c, logs)
}
