package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/audit"
	"github.com/findmychef/chef-marketplace/internal/cache"
	"github.com/findmychef/chef-marketplace/internal/dto"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/httpresp"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/models"
	"github.com/findmychef/chef-marketplace/internal/storage"
)

type ChefPhotoHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore // nil when S3 is not configured
	cache  cache.Cache
	audit  *audit.Dispatcher
}

func NewChefPhotoHandler(db *gorm.DB, photos *storage.PhotoStore, c cache.Cache, dispatcher *audit.Dispatcher) *ChefPhotoHandler {
	return &ChefPhotoHandler{
		db:     db,
		photos: photos,
		cache:  c,
		audit:  dispatcher,
	}
}

// Upload takes a multipart "photo" field, transcodes it to webp, stores it
// in S3 and writes the resulting URL on the profile.
func (h *ChefPhotoHandler) Upload(c *gin.Context) {
	if h.photos == nil {
		httperr.Write(c, http.StatusNotImplemented, "photo_storage_disabled", "Photo storage is not configured.")
		return
	}

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
		httperr.Forbidden(c, "not_profile_owner", "Only the owner can change this photo.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.Unprocessable(c, "missing_photo", "A multipart 'photo' field is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	url, err := h.photos.UploadChefPhoto(c.Request.Context(), chef.ID, file)
	if err != nil {
		if err == storage.ErrNotImage {
			httperr.Unprocessable(c, "invalid_photo", "The uploaded file is not a supported image.")
			return
		}
		httperr.Internal(c, "failed_to_store_photo", "Could not store the photo.")
		return
	}

	chef.PhotoURL = url
	if err := h.db.Save(&chef).Error; err != nil {
		httperr.Internal(c, "failed_to_update_chef", "Could not save the chef profile.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), chefCacheKey(chef.ID))

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionChefPhotoUploaded,
		Entity:   "chef",
		EntityID: &chef.ID,
	})

	httpresp.OK(c, dto.NewChefView(&chef))
}
