// Package datetime normalizes the date/time text found in monitoring feeds.
//
// Feeds emit either "DD.MM.YYYY HH:MM:SS" (dot separated, day first) or
// "MM/DD/YYYY HH:MM:SS" (slash separated, month first), optionally followed by an am/pm marker.
// The layout table is tried first; the manual tokenizer handles what the layouts reject.
package datetime

import (
	"strconv"
	"strings"
	"time"
)

var layouts = []string{
	"2.1.2006 15:04:05",
	"2.1.2006 3:04:05 PM",
	"2.1.2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2.1.2006",
	"1/2/2006",
	"2006-01-02",
}

type Parser struct {
	location *time.Location
}

func NewParser(location *time.Location) *Parser {
	if location == nil {
		location = time.Local
	}
	return &Parser{
		location: location,
	}
}

// Parse never fails: text that cannot be read yields the zero time.Time.
func (p *Parser) Parse(text string) time.Time {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return time.Time{}
	}
	if ts, ok := p.parseLayout(text); ok {
		return ts
	}
	if ts, ok := p.parseTokens(text); ok {
		return ts
	}
	return time.Time{}
}

func (p *Parser) parseLayout(text string) (time.Time, bool) {
	upper := strings.ToUpper(text)
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, upper, p.location); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

type timestamp struct {
	year, month, day     int
	hour, minute, second int
}

func (p *Parser) parseTokens(text string) (time.Time, bool) {
	parts := strings.Fields(strings.ToLower(text))
	var ts timestamp
	if !ts.readDate(parts[0]) {
		return time.Time{}, false
	}
	if len(parts) > 1 {
		period := ""
		if len(parts) > 2 {
			period = parts[2]
		}
		clock := parts[1]
		if strings.HasSuffix(clock, "am") || strings.HasSuffix(clock, "pm") {
			period = clock[len(clock)-2:]
			clock = clock[:len(clock)-2]
		}
		if !ts.readClock(clock, period) {
			return time.Time{}, false
		}
	}
	if !ts.valid() {
		return time.Time{}, false
	}
	result := time.Date(ts.year, time.Month(ts.month), ts.day, ts.hour, ts.minute, ts.second, 0, p.location)
	// time.Date normalizes 31.02 into March
	if result.Day() != ts.day {
		return time.Time{}, false
	}
	return result, true
}

func (ts *timestamp) readDate(text string) bool {
	var fields []string
	var dayFirst bool
	switch {
	case strings.Contains(text, "."):
		fields = strings.Split(text, ".")
		dayFirst = true
	case strings.Contains(text, "/"):
		fields = strings.Split(text, "/")
	default:
		return false
	}
	if len(fields) != 3 {
		return false
	}
	values, ok := atoiAll(fields)
	if !ok {
		return false
	}
	if dayFirst {
		ts.day, ts.month = values[0], values[1]
	} else {
		ts.month, ts.day = values[0], values[1]
	}
	ts.year = values[2]
	return true
}

func (ts *timestamp) readClock(text string, period string) bool {
	fields := strings.Split(text, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return false
	}
	values, ok := atoiAll(fields)
	if !ok {
		return false
	}
	ts.hour, ts.minute = values[0], values[1]
	if len(values) == 3 {
		ts.second = values[2]
	}
	switch period {
	case "":
	case "am":
		ts.hour = ts.hour % 12
	case "pm":
		ts.hour = ts.hour%12 + 12
	default:
		return false
	}
	return true
}

func (ts *timestamp) valid() bool {
	return ts.year > 0 &&
		ts.month >= 1 && ts.month <= 12 &&
		ts.day >= 1 && ts.day <= 31 &&
		ts.hour >= 0 && ts.hour <= 23 &&
		ts.minute >= 0 && ts.minute <= 59 &&
		ts.second >= 0 && ts.second <= 59
}

func atoiAll(fields []string) ([]int, bool) {
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
