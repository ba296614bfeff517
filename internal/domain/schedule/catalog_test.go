package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()

	assert.Len(t, catalog, 25)
	assert.Equal(t, "08:00", catalog[0])
	assert.Equal(t, "20:00", catalog[len(catalog)-1])

	// intervalo do meio-dia não existe no catálogo
	assert.NotContains(t, catalog, "12:00")
	assert.NotContains(t, catalog, "12:30")

	// ordem crescente
	for i := 1; i < len(catalog); i++ {
		assert.Less(t, catalog[i-1], catalog[i])
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0] = "00:00"

	assert.Equal(t, "08:00", Catalog()[0])
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("08:00"))
	assert.True(t, Contains("19:30"))
	assert.False(t, Contains("12:00"))
	assert.False(t, Contains("20:30"))
	assert.False(t, Contains("8:00"))
}

func TestSubtract(t *testing.T) {
	free := Subtract([]string{"10:00"})

	assert.Len(t, free, 24)
	assert.NotContains(t, free, "10:00")
	assert.Contains(t, free, "10:30")
	assert.Equal(t, "08:00", free[0])
}

func TestSubtractIgnoresUnknownTimes(t *testing.T) {
	free := Subtract([]string{"12:00", "99:99"})
	assert.Equal(t, Catalog(), free)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		interval int
		want     []string
	}{
		{
			name:     "half hour steps",
			start:    "09:00",
			end:      "10:30",
			interval: 30,
			want:     []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "hourly",
			start:    "08:00",
			end:      "11:00",
			interval: 60,
			want:     []string{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name:     "zero interval falls back to 30",
			start:    "08:00",
			end:      "09:00",
			interval: 0,
			want:     []string{"08:00", "08:30", "09:00"},
		},
		{
			name:     "invalid bounds",
			start:    "abc",
			end:      "09:00",
			interval: 30,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.start, tt.end, tt.interval))
		})
	}
}
