package models

import "time"

// PersonalToken is a revocable opaque bearer credential. Only the SHA-256
// of the secret is persisted; the plaintext leaves the process exactly once,
// in the login response.
type PersonalToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
