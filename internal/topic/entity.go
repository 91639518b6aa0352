package topic

import "time"

// Topic records that a session has studied a named subject. At most one
// row exists per (session_id, name) pair; repeat study bumps LastStudied.
type Topic struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   string    `gorm:"size:255;index;not null" json:"session_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	LastStudied time.Time `gorm:"index" json:"last_studied"`
}
