package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInSync(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
	testCases := []struct {
		name       string
		lastUpdate time.Time
		expected   bool
	}{
		{name: "2 minutes old", lastUpdate: now.Add(-2 * time.Minute), expected: true},
		{name: "10 minutes old", lastUpdate: now.Add(-10 * time.Minute), expected: false},
		{name: "exactly on threshold", lastUpdate: now.Add(-5 * time.Minute), expected: true},
		{name: "slightly in the future", lastUpdate: now.Add(3 * time.Minute), expected: true},
		{name: "far in the future", lastUpdate: now.Add(time.Hour), expected: false},
		{name: "unknown", lastUpdate: time.Time{}, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InSync(now, tc.lastUpdate, 5*time.Minute))
		})
	}
}
