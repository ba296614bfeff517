package models

import (
	"time"

	"github.com/google/uuid"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
