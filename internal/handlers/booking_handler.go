package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/findmychef/chef-marketplace/internal/dto"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/httpresp"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	ucBooking "github.com/findmychef/chef-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
	updateUC *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
	updateUC *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ChefID          uint    `json:"chef_id" binding:"required"`
	BookingDate     string  `json:"booking_date" binding:"required"`
	BookingTime     string  `json:"booking_time" binding:"required"`
	DurationHours   float64 `json:"duration_hours" binding:"required"`
	Location        string  `json:"location" binding:"required"`
	SpecialRequests string  `json:"special_requests"`
}

type UpdateBookingRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "chef_id, booking_date, booking_time, duration_hours and location are required.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:          userID,
		Role:            role,
		ChefID:          req.ChefID,
		Date:            req.BookingDate,
		Time:            req.BookingTime,
		DurationHours:   req.DurationHours,
		Location:        req.Location,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, dto.NewBookingView(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingViews(bookings))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "A status value is required.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingStatusInput{
		UserID:    userID,
		BookingID: uint(bookingID),
		NewStatus: req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingView(b))
}

// ======================================================
// ERROR MAPPING
// ======================================================

// Business codes from the booking workflow map 1:1 onto the error
// taxonomy: forbidden, not found, or validation.
func writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong handling the booking.")
		return
	}

	switch code {
	case "clients_only":
		httperr.Forbidden(c, code, "Only clients can create bookings.")
	case "client_profile_required":
		httperr.Forbidden(c, code, "A client profile is required to create bookings.")
	case "profile_required":
		httperr.Forbidden(c, code, "No chef or client profile exists for this account.")
	case "chefs_only":
		httperr.Forbidden(c, code, "Only chefs can change a booking status.")
	case "not_booking_chef":
		httperr.Forbidden(c, code, "Only the booked chef can change this booking.")
	case "chef_not_found":
		httperr.NotFound(c, code, "Chef profile not found.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking not found.")
	case "invalid_duration":
		httperr.Unprocessable(c, code, "Duration must be greater than zero hours.")
	case "empty_location":
		httperr.Unprocessable(c, code, "A booking location is required.")
	case "invalid_date":
		httperr.Unprocessable(c, code, "booking_date must be formatted YYYY-MM-DD.")
	case "invalid_time":
		httperr.Unprocessable(c, code, "booking_time must be formatted HH:MM.")
	case "invalid_status":
		httperr.Unprocessable(c, code, "Unknown booking status.")
	case "invalid_transition":
		httperr.Unprocessable(c, code, "The booking cannot move to that status from its current one.")
	default:
		httperr.Internal(c, code, "Something went wrong handling the booking.")
	}
}
