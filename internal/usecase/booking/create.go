package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barbershop-project/booking-api/internal/audit"
	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/infra/slotlock"
	"github.com/barbershop-project/booking-api/internal/models"
	"github.com/barbershop-project/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName  string
	CustomerPhone string
	UserID        *uuid.UUID

	ServiceID uuid.UUID
	BarberID  uuid.UUID

	// Date aceita ISO completo ("2025-04-20T00:00:00Z"); só a parte da
	// data é usada.
	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker slotlock.Locker
	policy schedule.Policy
	audit  *audit.Dispatcher

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	locker slotlock.Locker,
	policy schedule.Policy,
	audit *audit.Dispatcher,
) *CreateAppointment {
	if locker == nil {
		locker = slotlock.Noop{}
	}
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		policy: policy,
		audit:  audit,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Telefone normalizado é a chave do cliente.
	phone, ok := validators.NormalizePhone(in.CustomerPhone)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPhone)
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}

	// 2. Só a parte da data; sufixo de hora/fuso é descartado.
	dateOnly := strings.SplitN(in.Date, "T", 2)[0]
	if _, err := time.Parse(schedule.DateLayout, dateOnly); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	// 3. Dia útil dentro da janela de agendamento.
	if !uc.policy.IsBookableDate(dateOnly, uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodeNonWorkingDay)
	}

	// 4. Horário precisa existir no catálogo.
	if !schedule.Contains(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTime)
	}

	// 5. Barbeiro ativo e serviço existentes.
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	// 6. Seção crítica por slot: re-check + cliente + insert em uma
	// transação, sob lock distribuído quando há Redis.
	var created *models.Appointment

	key := slotlock.SlotKey(in.BarberID, dateOnly, in.Time)
	err = uc.locker.WithSlotLock(ctx, key, func(lockCtx context.Context) error {
		ap, err := uc.repo.BookSlot(lockCtx, domain.BookSlotInput{
			CustomerName:  strings.TrimSpace(in.CustomerName),
			CustomerPhone: phone,
			UserID:        in.UserID,
			BarberID:      in.BarberID,
			ServiceID:     in.ServiceID,
			Date:          dateOnly,
			Time:          in.Time,
		})
		if err != nil {
			return err
		}
		created = ap
		return nil
	})

	if err != nil {
		if errors.Is(err, slotlock.ErrNotAcquired) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotBusy)
		}
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.dispatch(audit.Event{
				UserID: in.UserID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      dateOnly,
					"time":      in.Time,
				},
			})
		}
		return nil, err
	}

	uc.dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}

func (uc *CreateAppointment) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}
