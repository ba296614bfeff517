package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/models"
)

func TestUpdateStatus_Cancel(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateStatus(repo, nil)

	id := uuid.New()

	repo.On("UpdateAppointmentStatus", mock.Anything, id, "cancelled").
		Return(&models.Appointment{ID: id, Status: "cancelled"}, nil)

	ap, err := uc.Execute(context.Background(), nil, id, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
}

func TestUpdateStatus_CancelTwiceIsIdempotent(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateStatus(repo, nil)

	id := uuid.New()

	// O repositório já devolve o registro cancelado sem erro; repetir o
	// cancelamento é sucesso, não falha.
	repo.On("UpdateAppointmentStatus", mock.Anything, id, "cancelled").
		Return(&models.Appointment{ID: id, Status: "cancelled"}, nil).Twice()

	for i := 0; i < 2; i++ {
		ap, err := uc.Execute(context.Background(), nil, id, "cancelled")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", ap.Status)
	}
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateStatus(repo, nil)

	_, err := uc.Execute(context.Background(), nil, uuid.New(), "agendado")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
	repo.AssertNotCalled(t, "UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateStatus(repo, nil)

	id := uuid.New()

	repo.On("UpdateAppointmentStatus", mock.Anything, id, "confirmed").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Execute(context.Background(), nil, id, "confirmed")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}
