package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/dto"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Date:          ap.Date,
			Time:          ap.Time,
			Status:        ap.Status,
			BarberName:    ap.Barber.Name,
			ServiceName:   ap.Service.Name,
			CustomerName:  ap.Customer.Name,
			CustomerPhone: ap.Customer.Phone,
		})
	}

	return out, nil
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	return toDetailDTO(ap), nil
}

func toDetailDTO(ap *models.Appointment) *dto.AppointmentDetailDTO {
	out := &dto.AppointmentDetailDTO{
		ID:        ap.ID,
		Date:      ap.Date,
		Time:      ap.Time,
		Status:    ap.Status,
		CreatedAt: ap.CreatedAt,
	}

	out.Barber.ID = ap.Barber.ID
	out.Barber.Name = ap.Barber.Name
	out.Barber.PhotoURL = ap.Barber.PhotoURL

	out.Service.ID = ap.Service.ID
	out.Service.Name = ap.Service.Name
	out.Service.Price = ap.Service.Price
	out.Service.DurationMin = ap.Service.DurationMin

	out.Customer.Name = ap.Customer.Name
	out.Customer.Phone = ap.Customer.Phone

	return out
}
