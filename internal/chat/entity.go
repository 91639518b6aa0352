package chat

import "time"

const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// ChatTurn is one message in a session's conversation. Rows are append
// only: the core never updates or deletes them.
type ChatTurn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:255;index;not null" json:"session_id"`
	Role      string    `gorm:"size:50;not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
