package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/dto"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}

	switch user.Role {
	case models.RoleChef:
		var chef models.Chef
		if err := h.db.Preload("User").Where("user_id = ?", user.ID).First(&chef).Error; err == nil {
			resp["chef_profile"] = dto.NewChefView(&chef)
		}
	case models.RoleClient:
		var client models.Client
		if err := h.db.Preload("User").Where("user_id = ?", user.ID).First(&client).Error; err == nil {
			resp["client_profile"] = dto.NewClientView(&client)
		}
	}

	c.JSON(http.StatusOK, resp)
}
