package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	BarberID uuid.UUID `gorm:"type:uuid;not null" json:"barber_id"`
	Barber   Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	// Date é "2006-01-02" e Time é "15:04", iguais às chaves do catálogo
	// de horários. O índice único parcial sobre (barber_id, date, time)
	// é criado em internal/db.
	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
