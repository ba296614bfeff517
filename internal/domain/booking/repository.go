package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbershop-project/booking-api/internal/models"
)

// BookSlotInput carrega os dados já validados de um novo agendamento.
// O telefone chega normalizado (11 dígitos) e date/time no formato do
// catálogo.
type BookSlotInput struct {
	CustomerName  string
	CustomerPhone string
	UserID        *uuid.UUID

	BarberID  uuid.UUID
	ServiceID uuid.UUID

	Date string
	Time string
}

// ListFilter restringe a listagem de agendamentos. Campos zero são
// ignorados.
type ListFilter struct {
	CustomerID *uuid.UUID
	UserID     *uuid.UUID
	BarberID   *uuid.UUID
	Status     string
	DateFrom   string
	DateTo     string
}

type Repository interface {
	// -------- Reference data --------
	ListServices(ctx context.Context) ([]models.Service, error)
	ListActiveBarbers(ctx context.Context) ([]models.Barber, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error)
	UpdateBarber(ctx context.Context, b *models.Barber) error

	// -------- Availability --------
	BookedTimes(ctx context.Context, barberID uuid.UUID, date string) ([]string, error)

	// -------- Booking (transactional) --------
	// BookSlot executa, em uma única transação: o re-check de conflito
	// sobre agendamentos não cancelados, o find-or-create do cliente por
	// telefone e o insert do agendamento pendente.
	BookSlot(ctx context.Context, in BookSlotInput) (*models.Appointment, error)

	// -------- Appointment (read / state change) --------
	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*models.Appointment, error)
}
