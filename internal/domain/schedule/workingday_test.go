package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-04-16 é uma quarta-feira.
var testNow = time.Date(2025, 4, 16, 15, 30, 0, 0, time.UTC)

func TestIsBookable(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			name: "today is bookable",
			date: time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "yesterday is not",
			date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "any past date is not",
			date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "saturday is a working day",
			date: time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "sunday is not",
			date: time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "horizon boundary is bookable",
			date: time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "beyond the horizon is not",
			date: time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsBookable(tt.date, testNow))
		})
	}
}

func TestIsBookableIgnoresTimeOfDay(t *testing.T) {
	policy := DefaultPolicy()

	// Hoje continua agendável mesmo com o "agora" no fim do dia.
	lateNow := time.Date(2025, 4, 16, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 4, 16, 8, 0, 0, 0, time.UTC)

	assert.True(t, policy.IsBookable(today, lateNow))
}

func TestIsBookableDate(t *testing.T) {
	policy := DefaultPolicy()

	assert.True(t, policy.IsBookableDate("2025-04-17", testNow))
	assert.False(t, policy.IsBookableDate("2025-04-20", testNow)) // domingo
	assert.False(t, policy.IsBookableDate("2025-04-15", testNow)) // passado
	assert.False(t, policy.IsBookableDate("17/04/2025", testNow)) // formato inválido
	assert.False(t, policy.IsBookableDate("", testNow))
}

func TestIsBookableCustomWeekdays(t *testing.T) {
	policy := DefaultPolicy()
	policy.Weekdays = map[time.Weekday]bool{time.Saturday: true}

	assert.True(t, policy.IsBookableDate("2025-04-19", testNow))
	assert.False(t, policy.IsBookableDate("2025-04-17", testNow))
}

func TestIsBookableNoHorizon(t *testing.T) {
	policy := DefaultPolicy()
	policy.HorizonDays = 0

	// Sem janela configurada, qualquer data futura em dia útil vale.
	assert.True(t, policy.IsBookableDate("2026-04-17", testNow))
}
