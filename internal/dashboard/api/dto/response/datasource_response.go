package response

import (
	"VCS_Status_Dashboard/internal/dashboard/service"
	"time"
)

type DatasourceResponse struct {
	Name                   string     `json:"name"`
	Enabled                bool       `json:"enabled"`
	InSync                 bool       `json:"in_sync"`
	ChecksURL              string     `json:"checks_url"`
	AvailabilityURL        string     `json:"availability_url"`
	LastChecksUpdate       *time.Time `json:"last_checks_update"`
	LastAvailabilityUpdate *time.Time `json:"last_availability_update"`
	AvailabilitySpanDays   int        `json:"availability_span_days"`
	LastError              string     `json:"last_error,omitempty"`
	LastErrorAt            *time.Time `json:"last_error_at,omitempty"`
}

func NewDatasourceResponse(status service.DatasourceStatus) DatasourceResponse {
	return DatasourceResponse{
		Name:                   status.Name,
		Enabled:                status.Enabled,
		InSync:                 status.InSync,
		ChecksURL:              status.ChecksURL,
		AvailabilityURL:        status.AvailabilityURL,
		LastChecksUpdate:       timeOrNil(status.LastChecksUpdate),
		LastAvailabilityUpdate: timeOrNil(status.LastAvailabilityUpdate),
		AvailabilitySpanDays:   status.AvailabilitySpanDays,
		LastError:              status.LastError,
		LastErrorAt:            timeOrNil(status.LastErrorAt),
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
