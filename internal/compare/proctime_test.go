package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeeks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"2-4 weeks", 2},
		{"1 week", 1},
		{"3-5 weeks", 3},
		{"1-2 months", 4},
		{"2-3 months", 8},
		{"1 month", 4},
		{"3-5 days", 3},
		{"varies", 999},
		{"call for estimate", 999},
		{"", 999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseWeeks(tt.input))
		})
	}
}
