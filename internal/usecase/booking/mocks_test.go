package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockRepo) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Barber), args.Error(1)
}

func (m *mockRepo) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockRepo) GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

func (m *mockRepo) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) BookedTimes(ctx context.Context, barberID uuid.UUID, date string) ([]string, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepo) BookSlot(ctx context.Context, in domain.BookSlotInput) (*models.Appointment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*models.Appointment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

var _ domain.Repository = (*mockRepo)(nil)

// blockedLocker simula um slot com lock já tomado por outro request.
type blockedLocker struct {
	err error
}

func (l blockedLocker) WithSlotLock(ctx context.Context, _ string, _ func(ctx context.Context) error) error {
	return l.err
}
