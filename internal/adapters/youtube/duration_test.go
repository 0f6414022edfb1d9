package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT4M13S", "4:13"},
		{"PT1H2M3S", "1:02:03"},
		{"PT15S", "0:15"},
		{"PT2M", "2:00"},
		{"PT3H", "3:00:00"},
		{"PT1H0M9S", "1:00:09"},
		{"P1DT2H", "26:00:00"},
		{"PT0S", "0:00"},
		{"", "0:00"},
		{"garbage", "0:00"},
		{"4M13S", "0:00"},
		{"PT90S", "1:30"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.iso), "input %q", tc.iso)
	}
}
