package models

import "panditseva/src/types"

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `json:"name,omitempty"`
	Email        string     `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         types.Role `json:"role,omitempty"`
	Address      string     `json:"address,omitempty"`
	ImageKey     string     `json:"image_key,omitempty"`

	// pandit-only columns
	Expertise     string           `json:"expertise,omitempty"`
	Verified      bool             `json:"verified,omitempty"`
	WorkLocations types.StringList `gorm:"type:jsonb" json:"work_locations,omitempty"`

	Bookings []Booking `gorm:"foreignKey:created_by" json:"bookings,omitempty"`

	types.Timestamps
}
