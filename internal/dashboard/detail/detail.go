// Package detail extracts the structured values embedded in the free text explanation of a check.
package detail

import (
	"VCS_Status_Dashboard/internal/dashboard/model"
	"math"
	"strconv"
	"strings"
)

const (
	TypeCPUUsage    = "CPU Usage"
	TypeMemoryUsage = "Memory Usage"
	TypeEventLog    = "Event Log"
)

// Detail is the value column shown for a check: a short text, and a gauge in percent for usage checks.
type Detail struct {
	Text  string `json:"text"`
	Gauge *int   `json:"gauge,omitempty"`
}

// Between returns the text between the first from marker (matched ignoring case) and the next to marker.
func Between(text string, from string, to string) (string, bool) {
	start := indexFold(text, from)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(from):]
	end := indexFold(rest, to)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

func indexFold(s string, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

// ServiceName reads "Service [name]".
func ServiceName(explanation string) (string, bool) {
	name, ok := Between(explanation, "Service [", "]")
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return strings.TrimSpace(name), true
}

// MinimumRequired reads the number in "minimum required=[N unit]".
func MinimumRequired(explanation string) (float64, bool) {
	raw, ok := Between(explanation, "minimum required=[", "]")
	if !ok {
		return 0, false
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

// Describe builds the value column for check depending on its type.
func Describe(check model.Check) Detail {
	switch check.Type {
	case TypeCPUUsage:
		return Detail{Text: check.Data + "%", Gauge: cpuGauge(check.Data)}
	case TypeMemoryUsage:
		return Detail{Text: summary(check.Explanation), Gauge: memoryGauge(check)}
	case TypeEventLog:
		if check.Data == "" || check.Data == "0" {
			return Detail{Text: summary(check.Explanation)}
		}
		return Detail{Text: check.Data + " matches"}
	default:
		return Detail{Text: summary(check.Explanation)}
	}
}

func summary(explanation string) string {
	if name, ok := ServiceName(explanation); ok {
		return name
	}
	return explanation
}

func cpuGauge(data string) *int {
	value, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(data), "%"), 64)
	if err != nil || math.IsNaN(value) {
		return nil
	}
	return gauge(value)
}

// memoryGauge reports how much of the free memory the required minimum takes, 100 when below it.
func memoryGauge(check model.Check) *int {
	minimum, ok := MinimumRequired(check.Explanation)
	if !ok || minimum <= 0 {
		return nil
	}
	free, err := strconv.ParseFloat(strings.TrimSpace(check.Data), 64)
	if err != nil || math.IsNaN(free) {
		return nil
	}
	if free < minimum {
		return gauge(100)
	}
	return gauge(minimum / free * 100)
}

func gauge(value float64) *int {
	v := int(math.Round(math.Max(0, math.Min(100, value))))
	return &v
}
