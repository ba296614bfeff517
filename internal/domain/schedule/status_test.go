package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())

	assert.False(t, Status("").Valid())
	assert.False(t, Status("pendente").Valid())
	assert.False(t, Status("scheduled").Valid())
}

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusConfirmed.Active())
	assert.True(t, StatusCompleted.Active())

	assert.False(t, StatusCancelled.Active())
	assert.False(t, Status("unknown").Active())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
