package models

import (
	"time"

	"panditseva/src/types"
)

type Booking struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	CreatedBy     uint                `json:"created_by,omitempty"`
	PanditID      *uint               `json:"pandit_id,omitempty"`
	ServiceID     uint                `json:"service_id,omitempty"`
	TentativeDate *time.Time          `json:"tentative_date,omitempty"`
	ToDate        *time.Time          `json:"to_date,omitempty"`
	Status        types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`
	Location      string              `json:"location,omitempty"`
	Address       string              `json:"address,omitempty"`
	AssignedAt    *time.Time          `json:"assigned_at,omitempty"`
	InvoiceID     *string             `json:"invoice_id,omitempty"`

	Service  *Service   `gorm:"foreignKey:service_id" json:"service,omitempty"`
	Customer *User      `gorm:"foreignKey:created_by" json:"customer,omitempty"`
	Pandit   *User      `gorm:"foreignKey:pandit_id" json:"pandit,omitempty"`
	Payments []*Payment `gorm:"foreignKey:booking_id" json:"payments,omitempty"`

	types.Timestamps
}
