package models

import "panditseva/src/types"

type Service struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Slug        string  `gorm:"uniqueIndex" json:"slug,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageKey    string  `json:"image_key,omitempty"`

	types.Timestamps
}
