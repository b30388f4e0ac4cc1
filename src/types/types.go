package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// StringList is stored as a jsonb array. Used for pandit work locations.
type StringList []string

func (a StringList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringList) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Role string

const (
	ROLE_CUSTOMER Role = "customer"
	ROLE_PANDIT   Role = "pandit"
	ROLE_ADMIN    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case ROLE_CUSTOMER, ROLE_PANDIT, ROLE_ADMIN:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_ASSIGNED  BookingStatus = "assigned"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_COMPLETED BookingStatus = "completed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_REJECTED  BookingStatus = "rejected"
)

// ParseBookingStatus validates the free-text status column on read.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BOOKING_PENDING, BOOKING_ASSIGNED, BOOKING_CONFIRMED,
		BOOKING_COMPLETED, BOOKING_CANCELLED, BOOKING_REJECTED:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// Terminal reports whether no further transition may leave the status.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BOOKING_COMPLETED, BOOKING_CANCELLED, BOOKING_REJECTED:
		return true
	}
	return false
}

// Claimed reports whether a pandit has been matched to the booking but the
// ceremony is not yet done. "assigned" and "confirmed" are equivalent
// unconfirmed-but-claimed states.
func (s BookingStatus) Claimed() bool {
	return s == BOOKING_ASSIGNED || s == BOOKING_CONFIRMED
}

type PaymentStatus string

const (
	PAYMENT_PENDING PaymentStatus = "pending"
	PAYMENT_PAID    PaymentStatus = "paid"
	PAYMENT_FAILED  PaymentStatus = "failed"
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=customer pandit"`

	// pandit-only fields
	Expertise     string   `json:"expertise,omitempty"`
	WorkLocations []string `json:"work_locations,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequestBody struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	FromDate  string `json:"from_date" binding:"required,bookabledate" time_format:"2006-01-02"`
	ToDate    string `json:"to_date" binding:"required,bookabledate,gtdate=FromDate" time_format:"2006-01-02"`
	Location  string `json:"location" binding:"required"`
	Address   string `json:"address" binding:"required"`

	// Client-generated correlation id for the optimistic cache entry.
	RequestID string `json:"request_id,omitempty" binding:"omitempty,uuid"`
}

type UpdateProfileRequestBody struct {
	Name          string   `json:"name,omitempty"`
	Address       string   `json:"address,omitempty"`
	Expertise     string   `json:"expertise,omitempty"`
	WorkLocations []string `json:"work_locations,omitempty"`
}

type CreateServiceRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageKey    string  `json:"image_key,omitempty"`
}

type BookingQueryFilters struct {
	Status string `form:"status" binding:"omitempty,oneof=pending assigned confirmed completed cancelled rejected"`
}

// BookingStats is the per-role dashboard aggregate.
type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

type APIResponseService struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name,omitempty"`
	Slug        string  `json:"slug,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageKey    string  `json:"image_key,omitempty"`
}

type APIResponseUser struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name,omitempty"`
	Email         string   `json:"email,omitempty"`
	Role          string   `json:"role,omitempty"`
	Address       string   `json:"address,omitempty"`
	ImageKey      string   `json:"image_key,omitempty"`
	Expertise     string   `json:"expertise,omitempty"`
	Verified      bool     `json:"verified,omitempty"`
	WorkLocations []string `json:"work_locations,omitempty"`
}

type APIResponseBooking struct {
	ID            uint       `json:"id,omitempty"`
	CreatedBy     uint       `json:"created_by,omitempty"`
	PanditID      *uint      `json:"pandit_id,omitempty"`
	ServiceID     uint       `json:"service_id,omitempty"`
	TentativeDate *time.Time `json:"tentative_date,omitempty"`
	ToDate        *time.Time `json:"to_date,omitempty"`
	Status        string     `json:"status,omitempty"`
	Location      string     `json:"location,omitempty"`
	Address       string     `json:"address,omitempty"`
	AssignedAt    *time.Time `json:"assigned_at,omitempty"`

	Service *APIResponseService `json:"service,omitempty"`
	Pandit  *APIResponseUser    `json:"pandit,omitempty"`

	Timestamps
}
