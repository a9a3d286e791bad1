package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reading is one saved divination. Cards holds the drawn-card
// snapshots (name, orientation, resolved meaning) as a JSON document;
// the snapshot keeps historical display stable even if the card
// catalog changes later. Readings are write-once: no update path
// exists anywhere in the service.
type Reading struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Theme      string         `gorm:"size:30;not null" json:"theme"`
	SpreadType string         `gorm:"size:30;not null" json:"spread_type"`
	Cards      datatypes.JSON `gorm:"type:jsonb;not null" json:"cards"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
}

func (Reading) TableName() string {
	return "readings"
}
