package resettoken

import (
	"time"

	"zentrix-api/internal/domain/user"
)

// Entry is what a reset token resolves to. It is never persisted to the database.
type Entry struct {
	UserID    user.ID   `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e Entry) Expired(now time.Time) bool { return now.After(e.ExpiresAt) }
