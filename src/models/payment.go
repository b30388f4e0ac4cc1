package models

import (
	"panditseva/src/types"

	"github.com/google/uuid"
)

type Payment struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`

	BookingID uint
	Amount    float64
	Status    types.PaymentStatus `gorm:"default:'pending'"`
	Reference string

	types.Timestamps

	Booking Booking `gorm:"foreignKey:booking_id" json:"-"`
}
