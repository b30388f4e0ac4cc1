package models

import (
	"panditseva/src/types"

	"github.com/google/uuid"
)

// Notification is an audit row per dispatched booking email.
type Notification struct {
	ID        uuid.UUID    `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID uint         `json:"booking_id"`
	Recipient string       `json:"recipient"`
	Subject   string       `json:"subject"`
	Body      *types.JSONB `gorm:"type:jsonb" json:"body,omitempty"`
	Status    string       `json:"status"`

	types.Timestamps
}
