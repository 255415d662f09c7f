package report

import (
	"VCS_Status_Dashboard/internal/dashboard/aggregate"
	"VCS_Status_Dashboard/internal/dashboard/evaluate"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceStates map[string]bool

func (s sourceStates) IsEnabled(name string) bool {
	return s[name]
}

func newView() evaluate.View {
	states := sourceStates{"primary": true}
	store := aggregate.NewStore(states, aggregate.Options{})
	store.IngestCycle("primary", []model.Check{
		{ID: "1", Folder: "Servers", Host: "SRV-APP01", Type: "CPU Usage", Result: model.ResultSuccessful, Data: "12"},
		{ID: "2", Folder: "Servers", Host: "SRV-APP02", Type: "Service", Explanation: "Service [Spooler] is stopped", Result: model.ResultFailed},
		{ID: "3", Folder: "Database", Host: "DB01", Type: "Ping", Result: model.ResultSuccessful},
	}, []model.AvailabilityRecord{
		{ID: "1", SuccessPct: 100},
		{ID: "2", SuccessPct: 50, FailurePct: 50},
		{ID: "3", SuccessPct: 90},
	})
	store.IngestCycle("lab", []model.Check{
		{ID: "9", Folder: "Lab", Result: model.ResultFailed},
	}, nil)
	return evaluate.Evaluate(store.Snapshot(), states, nil)
}

func newDatasources() []DatasourceRow {
	return []DatasourceRow{
		{Name: "primary", Enabled: true, InSync: true, LastChecksUpdate: time.Date(2026, 10, 16, 13, 58, 0, 0, time.UTC), AvailabilitySpanDays: 7},
		{Name: "lab", Enabled: false},
	}
}

func TestNewSummary(t *testing.T) {
	generatedAt := time.Date(2026, 10, 16, 7, 0, 0, 0, time.UTC)
	s := NewSummary(newView(), newDatasources(), generatedAt)

	assert.Equal(t, evaluate.Counts{Warning: 1, Ok: 1}, s.Counts)
	require.Len(t, s.Folders, 2)
	assert.Equal(t, "Servers", s.Folders[0].Name)
	assert.Equal(t, "75.00", s.Folders[0].SuccessRollup.String())
	assert.Equal(t, "82.50", s.AverageRollup.String())
	assert.Equal(t, 3, s.TotalChecks)
	assert.Equal(t, 1, s.EnabledSources)
	require.Len(t, s.FailedChecks, 1)
	assert.Equal(t, "2", s.FailedChecks[0].ID)
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(evaluate.View{}, nil, time.Now())
	assert.Equal(t, model.DefaultRollup, s.AverageRollup)
	assert.Empty(t, s.Folders)
}

func TestMailBodies(t *testing.T) {
	s := NewSummary(newView(), newDatasources(), time.Date(2026, 10, 16, 7, 0, 0, 0, time.UTC))

	assert.Equal(t, "Dashboard Availability Report 16.10.2026", Subject(s))

	text := TextBody(s)
	assert.Contains(t, text, "Datasources Enabled: 1/2")
	assert.Contains(t, text, "Warning: 1")
	assert.Contains(t, text, "Average Availability Across All Folders: 82.50%")
	assert.Contains(t, text, "[Servers] SRV-APP02 Service: Service [Spooler] is stopped")
	assert.Contains(t, text, "lab: enabled=false in_sync=false last_update=never")

	body := HTMLBody(s)
	assert.Contains(t, body, "<table")
	assert.Contains(t, body, "82.50%")
	assert.Contains(t, body, "warning (75.00%, 2 checks)")
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(newView(), newDatasources())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{FoldersSheet, ChecksSheet, DatasourcesSheet}, f.GetSheetList())

	folders, err := f.GetRows(FoldersSheet)
	require.NoError(t, err)
	require.Len(t, folders, 4)
	assert.Equal(t, []string{"folder", "status", "success_rollup", "enabled_checks", "visible"}, folders[0])
	assert.Equal(t, "Servers", folders[1][0])
	assert.Equal(t, "warning", folders[1][1])

	checks, err := f.GetRows(ChecksSheet)
	require.NoError(t, err)
	assert.Len(t, checks, 4)
	assert.Equal(t, "Spooler", checks[2][7])

	sources, err := f.GetRows(DatasourcesSheet)
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "primary", sources[1][0])
	assert.Equal(t, "never", sources[2][3])
}
