package models

import "time"

type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex:idx_categories_owner_name;not null" json:"name"`
	OwnerID   uint      `gorm:"uniqueIndex:idx_categories_owner_name;not null" json:"owner_id"`
}
