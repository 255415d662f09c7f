package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected Filter
	}{
		{name: "empty", text: "   ", expected: nil},
		{name: "single token", text: "Servers", expected: Filter{{"servers"}}},
		{name: "and group", text: "cpu  app01", expected: Filter{{"cpu", "app01"}}},
		{name: "comma groups", text: "cpu app01, memory", expected: Filter{{"cpu", "app01"}, {"memory"}}},
		{name: "plus groups", text: "cpu+memory", expected: Filter{{"cpu"}, {"memory"}}},
		{name: "empty groups dropped", text: ",,cpu, ,", expected: Filter{{"cpu"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseFilter(tc.text))
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	testCases := []struct {
		name     string
		filter   string
		text     string
		expected bool
	}{
		{name: "empty filter", filter: "", text: "anything", expected: true},
		{name: "all tokens of group", filter: "cpu app01", text: "CPU Usage SRV-APP01", expected: true},
		{name: "missing token", filter: "cpu app02", text: "CPU Usage SRV-APP01", expected: false},
		{name: "second group", filter: "disk, app01", text: "CPU Usage SRV-APP01", expected: true},
		{name: "no group", filter: "disk+memory", text: "CPU Usage SRV-APP01", expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseFilter(tc.filter).Matches(tc.text))
		})
	}
}

func TestFilter_String(t *testing.T) {
	assert.Equal(t, "cpu app01,memory", ParseFilter("CPU app01 + memory").String())
}
