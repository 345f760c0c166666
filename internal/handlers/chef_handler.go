package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/audit"
	"github.com/findmychef/chef-marketplace/internal/cache"
	"github.com/findmychef/chef-marketplace/internal/dto"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/httpresp"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ChefHandler struct {
	db       *gorm.DB
	cache    cache.Cache
	cacheTTL time.Duration
	audit    *audit.Dispatcher
}

func NewChefHandler(db *gorm.DB, c cache.Cache, cacheTTL time.Duration, dispatcher *audit.Dispatcher) *ChefHandler {
	return &ChefHandler{
		db:       db,
		cache:    c,
		cacheTTL: cacheTTL,
		audit:    dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateChefRequest struct {
	Bio               *string  `json:"bio"`
	Cuisines          *string  `json:"cuisines"`
	Specialties       *string  `json:"specialties"`
	HourlyRate        *float64 `json:"hourly_rate"`
	Location          *string  `json:"location"`
	Phone             *string  `json:"phone"`
	PhotoURL          *string  `json:"photo_url"`
	YearsOfExperience *int     `json:"years_of_experience"`
	IsAvailable       *bool    `json:"is_available"`
}

// ======================================================
// SEARCH
// ======================================================

// List applies the search filters ANDed together. Results are cached per
// query string; entries age out by TTL rather than being invalidated.
func (h *ChefHandler) List(c *gin.Context) {
	cacheKey := "chefs:" + c.Request.URL.RawQuery
	if body, hit, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil && hit {
		c.Data(200, "application/json; charset=utf-8", body)
		return
	}

	q := h.db.
		Joins("JOIN users ON users.id = chefs.user_id").
		Preload("User")

	if cuisine := strings.TrimSpace(c.Query("cuisine")); cuisine != "" {
		// Matches membership in the comma list, padded so "Asian" does
		// not match "South Asian Fusion," etc.
		q = q.Where(
			"(',' || LOWER(chefs.cuisines) || ',') LIKE ?",
			"%,"+strings.ToLower(cuisine)+",%",
		)
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		q = q.Where("LOWER(chefs.location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		price, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			httperr.Unprocessable(c, "invalid_max_price", "max_price must be a number.")
			return
		}
		q = q.Where("chefs.hourly_rate <= ?", price)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(users.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var chefs []models.Chef
	if err := q.Order("chefs.id").Find(&chefs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_chefs", "Could not search chefs.")
		return
	}

	views := dto.NewChefViews(chefs)
	if body, err := json.Marshal(views); err == nil {
		_ = h.cache.Set(c.Request.Context(), cacheKey, body, h.cacheTTL)
	}

	httpresp.OK(c, views)
}

// ======================================================
// GET / UPDATE
// ======================================================

func (h *ChefHandler) Get(c *gin.Context) {
	chefID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "chef_not_found", "Chef profile not found.")
		return
	}

	cacheKey := chefCacheKey(uint(chefID))
	if body, hit, cerr := h.cache.Get(c.Request.Context(), cacheKey); cerr == nil && hit {
		c.Data(200, "application/json; charset=utf-8", body)
		return
	}

	var chef models.Chef
	if err := h.db.Preload("User").First(&chef, uint(chefID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "chef_not_found", "Chef profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_chef", "Could not load the chef profile.")
		return
	}

	view := dto.NewChefView(&chef)
	if body, err := json.Marshal(view); err == nil {
		_ = h.cache.Set(c.Request.Context(), cacheKey, body, h.cacheTTL)
	}

	httpresp.OK(c, view)
}

func (h *ChefHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chefID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "chef_not_found", "Chef profile not found.")
		return
	}

	var chef models.Chef
	if err := h.db.Preload("User").First(&chef, uint(chefID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "chef_not_found", "Chef profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_chef", "Could not load the chef profile.")
		return
	}

	if chef.UserID != userID {
		httperr.Forbidden(c, "not_profile_owner", "Only the owner can edit this profile.")
		return
	}

	var req UpdateChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Malformed profile update.")
		return
	}

	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		httperr.Unprocessable(c, "invalid_hourly_rate", "Hourly rate must be zero or positive.")
		return
	}
	if req.YearsOfExperience != nil && *req.YearsOfExperience < 0 {
		httperr.Unprocessable(c, "invalid_years_of_experience", "Years of experience must be zero or positive.")
		return
	}

	// Partial patch: only supplied fields are touched.
	if req.Bio != nil {
		chef.Bio = *req.Bio
	}
	if req.Cuisines != nil {
		chef.Cuisines = *req.Cuisines
	}
	if req.Specialties != nil {
		chef.Specialties = *req.Specialties
	}
	if req.HourlyRate != nil {
		chef.HourlyRate = *req.HourlyRate
	}
	if req.Location != nil {
		chef.Location = *req.Location
	}
	if req.Phone != nil {
		chef.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		chef.PhotoURL = *req.PhotoURL
	}
	if req.YearsOfExperience != nil {
		chef.YearsOfExperience = *req.YearsOfExperience
	}
	if req.IsAvailable != nil {
		chef.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&chef).Error; err != nil {
		httperr.Internal(c, "failed_to_update_chef", "Could not save the chef profile.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), chefCacheKey(chef.ID))

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionChefProfileUpdated,
		Entity:   "chef",
		EntityID: &chef.ID,
	})

	httpresp.OK(c, dto.NewChefView(&chef))
}

func chefCacheKey(chefID uint) string {
	return fmt.Sprintf("chef:%d", chefID)
}
