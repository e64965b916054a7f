package models

import "gorm.io/gorm"

// Offer represents a service or product listing published by a user.
type Offer struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string  `json:"user_id" gorm:"index;type:varchar(36)"`
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"omitempty,max=50"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
