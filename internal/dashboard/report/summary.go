// Package report renders the availability report mailed daily and exported as a workbook.
package report

import (
	"VCS_Status_Dashboard/internal/dashboard/evaluate"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"time"
)

type FolderRow struct {
	Name          string
	Status        evaluate.Status
	SuccessRollup model.Percent
	Checks        int
}

type DatasourceRow struct {
	Name                   string
	Enabled                bool
	InSync                 bool
	LastChecksUpdate       time.Time
	LastAvailabilityUpdate time.Time
	AvailabilitySpanDays   int
	LastError              string
}

type Summary struct {
	GeneratedAt    time.Time
	Counts         evaluate.Counts
	AverageRollup  model.Percent
	Folders        []FolderRow
	Datasources    []DatasourceRow
	FailedChecks   []model.Check
	TotalChecks    int
	EnabledSources int
}

// NewSummary keeps only folders with at least one enabled check. AverageRollup is the plain mean of
// their rollups, 100.00 when there is none.
func NewSummary(view evaluate.View, datasources []DatasourceRow, generatedAt time.Time) Summary {
	s := Summary{
		GeneratedAt:   generatedAt,
		Counts:        view.Counts,
		AverageRollup: model.DefaultRollup,
		Datasources:   datasources,
	}
	var rollups float64
	for _, folder := range view.Folders {
		if folder.EnabledChecks == 0 {
			continue
		}
		s.Folders = append(s.Folders, FolderRow{
			Name:          folder.Name,
			Status:        folder.Status,
			SuccessRollup: folder.SuccessRollup,
			Checks:        folder.EnabledChecks,
		})
		rollups += folder.SuccessRollup.Float()
		s.TotalChecks += folder.EnabledChecks
		for _, check := range folder.Checks {
			if check.Enabled && check.Result == model.ResultFailed {
				s.FailedChecks = append(s.FailedChecks, check.Check)
			}
		}
	}
	if len(s.Folders) > 0 {
		s.AverageRollup = model.NewPercent(rollups / float64(len(s.Folders)))
	}
	for _, source := range datasources {
		if source.Enabled {
			s.EnabledSources++
		}
	}
	return s
}
