package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "float artifact", value: 107.34999999999999, want: 107.35},
		{name: "half rounds up", value: 2.345, want: 2.35},
		{name: "negative half away from zero", value: -2.345, want: -2.35},
		{name: "already clean", value: 100.00, want: 100.00},
		{name: "truncates below half", value: 1.234, want: 1.23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundCurrency(tt.value))
		})
	}
}

func TestRoundRate(t *testing.T) {
	assert.Equal(t, 30.6, RoundRate(30.5569))
	assert.Equal(t, 30.5, RoundRate(30.54))
	assert.Equal(t, 0.0, RoundRate(0))
}
