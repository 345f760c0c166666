package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *BookingGormRepository) GetChefByID(
	ctx context.Context,
	chefID uint,
) (*models.Chef, error) {

	var chef models.Chef
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&chef, chefID).Error; err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *BookingGormRepository) GetChefByUserID(
	ctx context.Context,
	userID uint,
) (*models.Chef, error) {

	var chef models.Chef
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&chef).Error; err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *BookingGormRepository) GetClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client.User").
		Preload("Chef.User").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsByClient(
	ctx context.Context,
	clientID uint,
	status string,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "client_id = ?", clientID, status)
}

func (r *BookingGormRepository) ListBookingsByChef(
	ctx context.Context,
	chefID uint,
	status string,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "chef_id = ?", chefID, status)
}

func (r *BookingGormRepository) listBookings(
	ctx context.Context,
	ownerCond string,
	ownerID uint,
	status string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client.User").
		Preload("Chef.User").
		Where(ownerCond, ownerID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

// SaveStatusChange persists the transition; completion also bumps both
// profiles' booking counters, all in one transaction.
func (r *BookingGormRepository) SaveStatusChange(
	ctx context.Context,
	b *models.Booking,
	completed bool,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"status": b.Status,
				"notes":  b.Notes,
			}).Error; err != nil {
			return err
		}

		if !completed {
			return nil
		}

		if err := tx.Model(&models.Chef{}).
			Where("id = ?", b.ChefID).
			UpdateColumn("total_bookings", gorm.Expr("total_bookings + 1")).
			Error; err != nil {
			return err
		}

		return tx.Model(&models.Client{}).
			Where("id = ?", b.ClientID).
			UpdateColumn("total_bookings", gorm.Expr("total_bookings + 1")).
			Error
	})
}
