package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSlotConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", &pq.Error{Code: "23505"}, true},
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"wrapped unique violation", fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}), true},
		{"wrapped serialization failure", fmt.Errorf("exec: %w", &pq.Error{Code: "40001"}), true},
		{"foreign key violation", &pq.Error{Code: "23503"}, false},
		{"deadlock detected", &pq.Error{Code: "40P01"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotConflict(tt.err))
		})
	}
}
