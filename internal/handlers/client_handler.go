package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/audit"
	"github.com/findmychef/chef-marketplace/internal/dto"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/httpresp"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/models"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: dispatcher}
}

// Email lives on the user record and is read-only; a name change writes
// through to the user record.
type UpdateClientRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	PreferredCuisines *string `json:"preferred_cuisines"`
}

func (h *ClientHandler) Get(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "client_not_found", "Client profile not found.")
		return
	}

	var client models.Client
	if err := h.db.Preload("User").First(&client, uint(clientID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not load the client profile.")
		return
	}

	httpresp.OK(c, dto.NewClientView(&client))
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	clientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "client_not_found", "Client profile not found.")
		return
	}

	var client models.Client
	if err := h.db.Preload("User").First(&client, uint(clientID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Client profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Could not load the client profile.")
		return
	}

	if client.UserID != userID {
		httperr.Forbidden(c, "not_profile_owner", "Only the owner can edit this profile.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Malformed profile update.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if req.Name != nil && *req.Name != "" {
			client.User.Name = *req.Name
			if err := tx.Model(&models.User{}).
				Where("id = ?", client.UserID).
				Update("name", *req.Name).Error; err != nil {
				return err
			}
		}

		if req.Phone != nil {
			client.Phone = *req.Phone
		}
		if req.Address != nil {
			client.Address = *req.Address
		}
		if req.PreferredCuisines != nil {
			client.PreferredCuisines = *req.PreferredCuisines
		}

		return tx.Save(&client).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not save the client profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionClientProfileUpdated,
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, dto.NewClientView(&client))
}
