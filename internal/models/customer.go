package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente simples, identificado pelo telefone; o vínculo com um User
// autenticado é opcional.
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null;uniqueIndex" json:"phone"`

	UserID *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
