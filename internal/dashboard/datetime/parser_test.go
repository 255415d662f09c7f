package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser(time.UTC)
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "dot separated day first",
			input:    "16.10.2026 14:03:05",
			expected: time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC),
		},
		{
			name:     "slash separated month first",
			input:    "10/16/2026 14:03:05",
			expected: time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC),
		},
		{
			name:     "slash separated with pm marker",
			input:    "10/16/2026 2:03:05 PM",
			expected: time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC),
		},
		{
			name:     "lowercase am marker at noon hour",
			input:    "10/16/2026 12:10:00 am",
			expected: time.Date(2026, 10, 16, 0, 10, 0, 0, time.UTC),
		},
		{
			name:     "single digit minutes use the tokenizer",
			input:    "5.3.2026 9:5:3",
			expected: time.Date(2026, 3, 5, 9, 5, 3, 0, time.UTC),
		},
		{
			name:     "24 hour clock with pm marker is normalized",
			input:    "10/16/2026 14:03:05 pm",
			expected: time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC),
		},
		{
			name:     "attached pm marker",
			input:    "10/16/2026 2:03:05pm",
			expected: time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "16.10.2026",
			expected: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "extra whitespace",
			input:    "  16.10.2026   14:03:05 ",
			expected: time.Date(2026, 10, 16, 14, 3, 5, 0, time.UTC),
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "garbage",
			input: "yesterday afternoon",
		},
		{
			name:  "month out of range",
			input: "16/10/2026 10:00:00",
		},
		{
			name:  "day out of month",
			input: "31.02.2026 10:00:00",
		},
		{
			name:  "unknown period",
			input: "10/16/2026 2:03:05 xm",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := p.Parse(tc.input)
			if tc.expected.IsZero() {
				assert.True(t, actual.IsZero(), "expected sentinel, got %s", actual)
			} else {
				assert.True(t, tc.expected.Equal(actual), "expected %s, got %s", tc.expected, actual)
			}
		})
	}
}

func TestNewParser_DefaultsToLocal(t *testing.T) {
	p := NewParser(nil)
	actual := p.Parse("16.10.2026 14:03:05")
	assert.Equal(t, time.Local, actual.Location())
}
