package model

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a percentage in [0, 100] rendered with two decimals.
type Percent float64

const (
	MinPercent Percent = 0
	MaxPercent Percent = 100
)

// ParsePercent parses feed text such as "95.5%". Invalid or NaN input yields 0.00.
func ParsePercent(text string) Percent {
	text = strings.TrimSuffix(strings.TrimSpace(text), "%")
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return MinPercent
	}
	return NewPercent(value)
}

// NewPercent clamps value into [0, 100] and rounds it to two decimals.
func NewPercent(value float64) Percent {
	if math.IsNaN(value) || value < 0 {
		return MinPercent
	}
	if value > 100 {
		return MaxPercent
	}
	return Percent(math.Round(value*100) / 100)
}

func (p Percent) Float() float64 {
	return float64(p)
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	text, err := strconv.Unquote(string(b))
	if err != nil {
		text = string(b)
	}
	*p = ParsePercent(text)
	return nil
}
