package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User covers both credential sign-ups and Google sign-ins. Password
// is empty for Google-only accounts.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password     string         `json:"-"`
	Nickname     string         `gorm:"size:100" json:"nickname"`
	Bio          string         `gorm:"size:500" json:"bio"`
	GoogleUserID *string        `gorm:"size:255;index" json:"-"`
	AuthProvider string         `gorm:"size:50;default:'email'" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
