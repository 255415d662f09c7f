package model

import "time"

type Datasource struct {
	Name                   string
	Enabled                bool
	ChecksURL              string
	AvailabilityURL        string
	LastChecksUpdate       time.Time
	LastAvailabilityUpdate time.Time
	AvailabilitySpanDays   int
	LastError              string
	LastErrorAt            time.Time
}
