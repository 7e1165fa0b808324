package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/granblue-tools/hensei-transfer/internal/pkg/ranges"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		ranges []string
		value  int
		want   bool
	}{
		{"single point hit", []string{"30"}, 30, true},
		{"single point miss", []string{"30"}, 31, false},
		{"interval lower bound", []string{"10-20"}, 10, true},
		{"interval upper bound", []string{"10-20"}, 20, true},
		{"interval inside", []string{"10-20"}, 15, true},
		{"interval below", []string{"10-20"}, 9, false},
		{"interval above", []string{"10-20"}, 21, false},
		{"list second member", []string{"10-20", "30"}, 30, true},
		{"list gap", []string{"10-20", "30"}, 25, false},
		{"empty list", nil, 5, false},
		{"malformed never matches", []string{"abc", "1-x"}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ranges.Matches(tt.ranges, tt.value))
		})
	}
}
