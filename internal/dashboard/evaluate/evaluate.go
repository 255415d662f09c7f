// Package evaluate turns a model snapshot into the folder status and visibility decisions shown to users.
package evaluate

import (
	"VCS_Status_Dashboard/internal/dashboard/aggregate"
	"VCS_Status_Dashboard/internal/dashboard/detail"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"sort"
	"strings"
)

type CheckView struct {
	model.Check
	Enabled bool
	Visible bool
	Detail  detail.Detail
}

type FolderView struct {
	Name          string
	Status        Status
	SuccessRollup model.Percent
	Visible       bool
	EnabledChecks int
	Checks        []CheckView
}

type Counts struct {
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Ok      int `json:"ok"`
	OnHold  int `json:"onhold"`
}

func (c *Counts) add(status Status) {
	switch status {
	case StatusError:
		c.Error++
	case StatusWarning:
		c.Warning++
	case StatusOk:
		c.Ok++
	case StatusOnHold:
		c.OnHold++
	}
}

type View struct {
	Version uint64
	Filter  Filter
	Folders []FolderView
	Counts  Counts
}

// CheckText is the text a filter is matched against for a check.
func CheckText(check model.Check) string {
	return strings.ToLower(check.Explanation + " " + check.Type + " " + check.Host)
}

// Evaluate classifies every folder over the checks of enabled datasources and applies filter.
// A folder without enabled checks is hidden and not counted. A folder whose name matches shows all of
// its enabled checks; otherwise it shows only the enabled checks that match.
// Folders are ordered by status, then by the order they were first seen.
func Evaluate(snapshot aggregate.Snapshot, states aggregate.SourceStates, filter Filter) View {
	view := View{
		Version: snapshot.Version,
		Filter:  filter,
		Folders: make([]FolderView, 0, len(snapshot.Folders)),
	}
	for _, folder := range snapshot.Folders {
		fv := evaluateFolder(folder, states, filter)
		if fv.EnabledChecks > 0 {
			view.Counts.add(fv.Status)
		}
		view.Folders = append(view.Folders, fv)
	}
	sort.SliceStable(view.Folders, func(i, j int) bool {
		return view.Folders[i].Status.rank() < view.Folders[j].Status.rank()
	})
	return view
}

func evaluateFolder(folder model.Folder, states aggregate.SourceStates, filter Filter) FolderView {
	fv := FolderView{
		Name:          folder.Name,
		SuccessRollup: folder.SuccessRollup,
		Checks:        make([]CheckView, 0, len(folder.Checks)),
	}
	var enabled []model.Check
	for _, check := range folder.Checks {
		cv := CheckView{
			Check:   check,
			Enabled: states == nil || states.IsEnabled(check.Datasource),
			Detail:  detail.Describe(check),
		}
		if cv.Enabled {
			enabled = append(enabled, check)
		}
		fv.Checks = append(fv.Checks, cv)
	}
	fv.EnabledChecks = len(enabled)
	fv.Status = Classify(enabled)
	if fv.EnabledChecks == 0 {
		return fv
	}

	nameMatch := filter.Matches(folder.Name)
	for i := range fv.Checks {
		cv := &fv.Checks[i]
		cv.Visible = cv.Enabled && (nameMatch || filter.Matches(CheckText(cv.Check)))
		fv.Visible = fv.Visible || cv.Visible
	}
	return fv
}

// Visible returns the folders shown to the user.
func (v View) Visible() []FolderView {
	var res []FolderView
	for _, folder := range v.Folders {
		if folder.Visible {
			res = append(res, folder)
		}
	}
	return res
}
