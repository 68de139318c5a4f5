package models

import "time"

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ProgressLog records one user's progress on one resource. The composite
// unique index keeps the mark-complete upsert from producing duplicate rows
// under concurrent requests.
type ProgressLog struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	UserID           uint       `gorm:"uniqueIndex:idx_progress_user_resource;not null" json:"user_id"`
	ResourceID       uint       `gorm:"uniqueIndex:idx_progress_user_resource;not null" json:"resource_id"`
	CompletionStatus string     `gorm:"default:not_started" json:"completion_status"`
	TimeSpent        int        `gorm:"default:0" json:"time_spent"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
}
