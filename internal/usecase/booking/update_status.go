package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbershop-project/booking-api/internal/audit"
	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute grava o novo status sem validar transição: repetir o status
// atual é sucesso idempotente. A autorização (admin vs dono) é
// responsabilidade do chamador.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actorID *uuid.UUID,
	appointmentID uuid.UUID,
	newStatus string,
) (*models.Appointment, error) {

	if !schedule.Status(newStatus).Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	ap, err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, newStatus)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   actorID,
			Action:   "appointment_status_changed",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"status": newStatus},
		})
	}

	return ap, nil
}
