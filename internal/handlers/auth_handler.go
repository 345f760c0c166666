package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/audit"
	"github.com/findmychef/chef-marketplace/internal/auth"
	"github.com/findmychef/chef-marketplace/internal/dto"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/httpresp"
	"github.com/findmychef/chef-marketplace/internal/models"
	"github.com/findmychef/chef-marketplace/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	issuer *auth.TokenIssuer
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, issuer *auth.TokenIssuer, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, issuer: issuer, audit: dispatcher}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=chef client"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Name, email, password and role are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailValid(email) {
		httperr.Unprocessable(c, "invalid_email", "The email address does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         req.Role,
	}

	// User and role profile are created together or not at all.
	var chef *models.Chef
	var client *models.Client
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch user.Role {
		case models.RoleChef:
			chef = &models.Chef{UserID: user.ID, IsAvailable: true}
			return tx.Create(chef).Error
		default:
			client = &models.Client{UserID: user.ID}
			return tx.Create(client).Error
		}
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	token, err := h.issuer.Issue(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate the access token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: audit.ActionUserRegistered,
		Entity: "user",
	})

	resp := gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	}
	if chef != nil {
		chef.User = user
		resp["chef_profile"] = dto.NewChefView(chef)
	}
	if client != nil {
		client.User = user
		resp["client_profile"] = dto.NewClientView(client)
	}

	httpresp.Created(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not look up the account.")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
		return
	}

	token, err := h.issuer.Issue(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate the access token.")
		return
	}

	resp := gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	}
	h.attachProfile(resp, &user)

	httpresp.OK(c, resp)
}

func (h *AuthHandler) attachProfile(resp gin.H, user *models.User) {
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
}
