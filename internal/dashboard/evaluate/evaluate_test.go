package evaluate

import (
	"VCS_Status_Dashboard/internal/dashboard/aggregate"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceStates map[string]bool

func (s sourceStates) IsEnabled(name string) bool {
	return s[name]
}

func newSnapshot(states sourceStates) aggregate.Snapshot {
	store := aggregate.NewStore(states, aggregate.Options{})
	store.IngestCycle("primary", []model.Check{
		{ID: "1", Folder: "Servers", Host: "SRV-APP01", Type: "CPU Usage", Explanation: "CPU usage is 12%", Result: model.ResultSuccessful, Data: "12"},
		{ID: "2", Folder: "Servers", Host: "SRV-APP02", Type: "Service", Explanation: "Service [Spooler] is stopped", Result: model.ResultFailed},
		{ID: "3", Folder: "Database", Host: "DB01", Type: "Memory Usage", Result: model.ResultOnHold},
	}, nil)
	store.IngestCycle("lab", []model.Check{
		{ID: "10", Folder: "Lab", Host: "LAB01", Type: "Ping", Result: model.ResultFailed},
		{ID: "11", Folder: "Servers", Host: "LAB02", Type: "Ping", Result: model.ResultFailed},
	}, nil)
	return store.Snapshot()
}

func folderView(t *testing.T, view View, name string) FolderView {
	t.Helper()
	for _, folder := range view.Folders {
		if folder.Name == name {
			return folder
		}
	}
	require.Failf(t, "folder not found", "folder %q", name)
	return FolderView{}
}

func visibleIDs(folder FolderView) []string {
	var ids []string
	for _, check := range folder.Checks {
		if check.Visible {
			ids = append(ids, check.ID)
		}
	}
	return ids
}

func TestEvaluate_FolderNameMatch(t *testing.T) {
	states := sourceStates{"primary": true}
	view := Evaluate(newSnapshot(states), states, ParseFilter("servers"))

	servers := folderView(t, view, "Servers")
	assert.Equal(t, StatusWarning, servers.Status)
	assert.True(t, servers.Visible)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(servers))
	assert.False(t, folderView(t, view, "Database").Visible)
}

func TestEvaluate_CheckTextMatch(t *testing.T) {
	states := sourceStates{"primary": true}
	view := Evaluate(newSnapshot(states), states, ParseFilter("spooler app02, db01 memory"))

	assert.Equal(t, []string{"2"}, visibleIDs(folderView(t, view, "Servers")))
	database := folderView(t, view, "Database")
	assert.True(t, database.Visible)
	assert.Equal(t, []string{"3"}, visibleIDs(database))
}

func TestEvaluate_EmptyFilter(t *testing.T) {
	states := sourceStates{"primary": true, "lab": true}
	view := Evaluate(newSnapshot(states), states, nil)

	for _, folder := range view.Folders {
		assert.True(t, folder.Visible, folder.Name)
	}
	assert.Equal(t, []string{"1", "2", "11"}, visibleIDs(folderView(t, view, "Servers")))
	assert.Equal(t, Counts{Error: 1, Warning: 1, OnHold: 1}, view.Counts)
	assert.Equal(t, []string{"Lab", "Servers", "Database"}, []string{view.Folders[0].Name, view.Folders[1].Name, view.Folders[2].Name})
}

func TestEvaluate_DisabledDatasource(t *testing.T) {
	states := sourceStates{"primary": true, "lab": true}
	snapshot := newSnapshot(states)
	states["lab"] = false

	view := Evaluate(snapshot, states, ParseFilter("lab"))

	lab := folderView(t, view, "Lab")
	assert.False(t, lab.Visible)
	assert.Equal(t, 0, lab.EnabledChecks)
	assert.Len(t, lab.Checks, 1)

	servers := folderView(t, view, "Servers")
	assert.False(t, servers.Visible)
	assert.Equal(t, StatusWarning, servers.Status)
	assert.Len(t, servers.Checks, 3)
	assert.Equal(t, Counts{Warning: 1, OnHold: 1}, view.Counts)
}

func TestEvaluate_Idempotent(t *testing.T) {
	states := sourceStates{"primary": true, "lab": true}
	snapshot := newSnapshot(states)
	filter := ParseFilter("ping, cpu")

	first := Evaluate(snapshot, states, filter)
	second := Evaluate(snapshot, states, filter)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Visible(), second.Visible())
}

func TestEvaluate_StatusTotality(t *testing.T) {
	states := sourceStates{"primary": true, "lab": true}
	view := Evaluate(newSnapshot(states), states, nil)
	for _, folder := range view.Folders {
		assert.Contains(t, Statuses, folder.Status)
	}
}
