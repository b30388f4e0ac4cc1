package common

import (
	"errors"
	"log"
	"strings"
	"time"

	"panditseva/src/models"
	"panditseva/src/types"
	"panditseva/src/utils"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrServiceNotFound = errors.New("service not found")
	// ErrBookingConflict is returned when an accept or reject loses the
	// race: the booking is no longer pending or a pandit is already bound.
	ErrBookingConflict = errors.New("booking is no longer pending")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
)

// MatchesWorkLocations reports whether the booking location contains any of
// the pandit's registered work locations, case-insensitively. Substring
// containment, not exact match: "Near Mumbai Central" matches "Mumbai".
func MatchesWorkLocations(location string, workLocations []string) bool {
	loc := strings.ToLower(location)
	for _, wl := range workLocations {
		wl = strings.TrimSpace(strings.ToLower(wl))
		if wl == "" {
			continue
		}
		if strings.Contains(loc, wl) {
			return true
		}
	}
	return false
}

// ComputeStats aggregates status counts over one logical booking list.
// "assigned" counts toward confirmed since both are claimed states.
func ComputeStats(bookings []models.Booking) types.BookingStats {
	stats := types.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch {
		case b.Status == types.BOOKING_PENDING:
			stats.Pending++
		case b.Status.Claimed():
			stats.Confirmed++
		case b.Status == types.BOOKING_COMPLETED:
			stats.Completed++
		}
	}
	return stats
}

// SumPaidAmounts computes earnings over a booking's payment rows. Rows
// that are not paid contribute nothing; no rows means zero, not an error.
func SumPaidAmounts(payments []*models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p != nil && p.Status == types.PAYMENT_PAID {
			total += p.Amount
		}
	}
	return total
}

// NewBookingFromRequest shapes a pending booking row from the request and
// the resolved catalog service. The persisted service id always comes from
// the service row, never from client-side state. Location and address pass
// through untouched.
func NewBookingFromRequest(service *models.Service, userID uint, body *types.CreateBookingRequestBody) (*models.Booking, error) {
	fromDate, err := utils.ParseDate(body.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := utils.ParseDate(body.ToDate)
	if err != nil {
		return nil, err
	}
	return &models.Booking{
		CreatedBy:     userID,
		ServiceID:     service.ID,
		TentativeDate: &fromDate,
		ToDate:        &toDate,
		Status:        types.BOOKING_PENDING,
		Location:      body.Location,
		Address:       body.Address,
	}, nil
}

// CreateBooking inserts a pending booking for the resolved catalog service.
func CreateBooking(d *gorm.DB, userID uint, body *types.CreateBookingRequestBody) (*models.Booking, error) {
	var service models.Service
	if err := d.
		Model(&models.Service{}).
		Where(&models.Service{ID: body.ServiceID}).
		First(&service).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	booking, err := NewBookingFromRequest(&service, userID, body)
	if err != nil {
		return nil, err
	}
	if err := d.Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// AcceptBooking binds the pandit and moves pending to confirmed. The update
// is conditional on the row still being pending with no pandit bound, so a
// lost accept race surfaces as ErrBookingConflict instead of silently
// overwriting the winner's assignment.
func AcceptBooking(d *gorm.DB, bookingID uint, panditID uint) (*models.Booking, error) {
	now := time.Now()
	res := d.
		Model(&models.Booking{}).
		Where("id = ? AND status = ? AND pandit_id IS NULL", bookingID, types.BOOKING_PENDING).
		Updates(map[string]any{
			"status":      types.BOOKING_CONFIRMED,
			"pandit_id":   panditID,
			"assigned_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, disambiguate(d, bookingID)
	}
	var booking models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingID}).
		First(&booking).
		Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// RejectBooking moves a pending booking to rejected. No pandit is bound;
// the booking leaves every pandit's pending pool regardless of who
// rejected it.
func RejectBooking(d *gorm.DB, bookingID uint) error {
	res := d.
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, types.BOOKING_PENDING).
		Update("status", types.BOOKING_REJECTED)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return disambiguate(d, bookingID)
	}
	return nil
}

// CompleteBooking marks a claimed booking completed. An admin may complete
// any booking; a pandit only one bound to them.
func CompleteBooking(d *gorm.DB, bookingID uint, actorID uint, admin bool) error {
	tx := d.
		Model(&models.Booking{}).
		Where("id = ? AND status IN ?", bookingID, []types.BookingStatus{types.BOOKING_ASSIGNED, types.BOOKING_CONFIRMED})
	if !admin {
		tx = tx.Where("pandit_id = ?", actorID)
	}
	res := tx.Update("status", types.BOOKING_COMPLETED)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return disambiguate(d, bookingID)
	}
	return nil
}

// CancelBooking cancels the customer's own pending booking.
func CancelBooking(d *gorm.DB, bookingID uint, customerID uint) error {
	var booking models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingID}).
		First(&booking).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.CreatedBy != customerID {
		return ErrNotBookingOwner
	}
	res := d.
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, types.BOOKING_PENDING).
		Update("status", types.BOOKING_CANCELLED)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingConflict
	}
	return nil
}

func disambiguate(d *gorm.DB, bookingID uint) error {
	var count int64
	if err := d.
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Count(&count).
		Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrBookingNotFound
	}
	return ErrBookingConflict
}

// PendingBookingsFor returns the unassigned pending pool visible to the
// pandit. Substring matching against the free-text location cannot be an
// index lookup, so rows are filtered here after the fetch.
func PendingBookingsFor(d *gorm.DB, pandit *models.User) ([]models.Booking, error) {
	var pending []models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where("status = ? AND pandit_id IS NULL", types.BOOKING_PENDING).
		Preload("Service").
		Order("created_at desc").
		Find(&pending).
		Error; err != nil {
		return nil, err
	}
	matched := make([]models.Booking, 0, len(pending))
	for _, b := range pending {
		if MatchesWorkLocations(b.Location, pandit.WorkLocations) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// BookingsForPandit concatenates the location-matched pending pool with the
// bookings bound to the pandit. Two disjoint queries by construction: a
// pending booking has no pandit bound.
func BookingsForPandit(d *gorm.DB, pandit *models.User) ([]models.Booking, error) {
	matched, err := PendingBookingsFor(d, pandit)
	if err != nil {
		return nil, err
	}
	var own []models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where("pandit_id = ?", pandit.ID).
		Preload("Service").
		Order("created_at desc").
		Find(&own).
		Error; err != nil {
		return nil, err
	}
	return append(matched, own...), nil
}

// BookingsForCustomer returns the customer's own bookings, newest first.
func BookingsForCustomer(d *gorm.DB, customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where("created_by = ?", customerID).
		Preload("Service").
		Preload("Pandit").
		Order("created_at desc").
		Find(&bookings).
		Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// PanditEarnings sums the paid payment rows over the pandit's completed
// bookings.
func PanditEarnings(d *gorm.DB, panditID uint) (float64, error) {
	var bookings []models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where("pandit_id = ? AND status = ?", panditID, types.BOOKING_COMPLETED).
		Preload("Payments").
		Find(&bookings).
		Error; err != nil {
		return 0, err
	}
	var total float64
	for _, b := range bookings {
		total += SumPaidAmounts(b.Payments)
	}
	return total, nil
}

// CancelStalePending applies the cancellation policy: pending bookings
// whose tentative date has already passed are moved to cancelled. Run from
// the scheduler.
func CancelStalePending(d *gorm.DB) {
	res := d.
		Model(&models.Booking{}).
		Where("status = ? AND tentative_date < ?", types.BOOKING_PENDING, time.Now()).
		Update("status", types.BOOKING_CANCELLED)
	if res.Error != nil {
		log.Printf("Error cancelling stale bookings: %s\n", res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending bookings\n", res.RowsAffected)
	}
}
