package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Time   string    `json:"time"`
	Status string    `json:"status"`

	BarberName    string `json:"barber_name"`
	ServiceName   string `json:"service_name"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

type AppointmentDetailDTO struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Time   string    `json:"time"`
	Status string    `json:"status"`

	Barber struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		PhotoURL string    `json:"photo_url"`
	} `json:"barber"`

	Service struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Price       float64   `json:"price"`
		DurationMin int       `json:"duration_min"`
	} `json:"service"`

	Customer struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"customer"`

	CreatedAt time.Time `json:"created_at"`
}
