package models

import "time"

const (
	ResourceTypeArticle = "article"
	ResourceTypeVideo   = "video"
	ResourceTypeQuiz    = "quiz"
)

// ValidResourceType reports whether t is one of the allowed resource types.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceTypeArticle, ResourceTypeVideo, ResourceTypeQuiz:
		return true
	}
	return false
}

type Resource struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Type        string    `gorm:"not null" json:"type"`
	Description string    `json:"description,omitempty"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
}

// ResourceWithProgress is a resource enriched with the caller's latest
// progress log, used by the grouped listing endpoint.
type ResourceWithProgress struct {
	Resource
	CategoryName   string     `json:"category_name,omitempty"`
	IsCompleted    bool       `json:"isCompleted"`
	TimeSpent      int        `json:"time_spent"`
	CompletionDate *time.Time `json:"completion_date"`
}
