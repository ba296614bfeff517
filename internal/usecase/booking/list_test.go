package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/models"
)

func TestListAppointments_MapsJoinedFields(t *testing.T) {
	repo := new(mockRepo)
	uc := NewListAppointments(repo)

	id := uuid.New()
	filter := domain.ListFilter{Status: "pending"}

	repo.On("ListAppointments", mock.Anything, filter).
		Return([]models.Appointment{
			{
				ID:       id,
				Date:     "2025-04-21",
				Time:     "09:00",
				Status:   "pending",
				Barber:   models.Barber{Name: "Carlos"},
				Service:  models.Service{Name: "Corte"},
				Customer: models.Customer{Name: "Ana", Phone: "11999998888"},
			},
		}, nil)

	out, err := uc.Execute(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, id, out[0].ID)
	assert.Equal(t, "Carlos", out[0].BarberName)
	assert.Equal(t, "Corte", out[0].ServiceName)
	assert.Equal(t, "Ana", out[0].CustomerName)
	assert.Equal(t, "11999998888", out[0].CustomerPhone)
}

func TestListAppointments_EmptyResultIsNotNil(t *testing.T) {
	repo := new(mockRepo)
	uc := NewListAppointments(repo)

	repo.On("ListAppointments", mock.Anything, mock.Anything).
		Return([]models.Appointment{}, nil)

	out, err := uc.Execute(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetAppointment_NotFound(t *testing.T) {
	repo := new(mockRepo)
	uc := NewGetAppointment(repo)

	id := uuid.New()
	repo.On("GetAppointment", mock.Anything, id).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Execute(context.Background(), id)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestGetAppointment_Detail(t *testing.T) {
	repo := new(mockRepo)
	uc := NewGetAppointment(repo)

	id := uuid.New()
	serviceID := uuid.New()

	repo.On("GetAppointment", mock.Anything, id).
		Return(&models.Appointment{
			ID:      id,
			Date:    "2025-04-21",
			Time:    "09:00",
			Status:  "confirmed",
			Service: models.Service{ID: serviceID, Name: "Corte", Price: 45, DurationMin: 30},
			Barber:  models.Barber{Name: "Carlos"},
		}, nil)

	out, err := uc.Execute(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", out.Status)
	assert.Equal(t, serviceID, out.Service.ID)
	assert.Equal(t, 45.0, out.Service.Price)
	assert.Equal(t, "Carlos", out.Barber.Name)
}
