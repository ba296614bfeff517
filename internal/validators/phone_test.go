package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{name: "bare digits", raw: "11999998888", want: "11999998888", valid: true},
		{name: "masked", raw: "(11) 99999-8888", want: "11999998888", valid: true},
		{name: "partial mask", raw: "11 99999-8888", want: "11999998888", valid: true},
		{name: "too short", raw: "1199999888", valid: false},
		{name: "too long", raw: "119999988880", valid: false},
		{name: "landline with 10 digits", raw: "(11) 3333-4444", valid: false},
		{name: "letters", raw: "11abcde8888", valid: false},
		{name: "plus prefix", raw: "+5511999998888", valid: false},
		{name: "empty", raw: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
