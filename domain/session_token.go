package domain

import "time"

// SessionToken is an opaque bearer identifier issued after a successful login.
// ExpiresAt is nil when sessions are configured to live until revocation.
type SessionToken struct {
	Id        string     `gorm:"primaryKey;size:36" json:"id"`
	Username  string     `gorm:"size:200;not null;index" json:"username"`
	CreatedAt *time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	ExpiresAt *time.Time `gorm:"default:null" json:"expires_at"`
}

func (SessionToken) TableName() string {
	return "session_tokens"
}

func (s SessionToken) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
