package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/httperr"
)

type AvailabilityResult struct {
	Date   string   `json:"date"`
	Booked []string `json:"booked"`
	Free   []string `json:"free"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os horários ocupados (não cancelados) do barbeiro na
// data e o catálogo restante.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) (*AvailabilityResult, error) {

	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	booked, err := uc.repo.BookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	if booked == nil {
		booked = []string{}
	}

	return &AvailabilityResult{
		Date:   date,
		Booked: booked,
		Free:   schedule.Subtract(booked),
	}, nil
}
