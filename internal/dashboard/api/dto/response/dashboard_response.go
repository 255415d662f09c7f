package response

import (
	"VCS_Status_Dashboard/internal/dashboard/detail"
	"VCS_Status_Dashboard/internal/dashboard/evaluate"
	"VCS_Status_Dashboard/internal/dashboard/model"
)

type DashboardResponse struct {
	Version uint64           `json:"version"`
	Search  string           `json:"search"`
	Counts  evaluate.Counts  `json:"counts"`
	Folders []FolderResponse `json:"folders"`
}

type FolderResponse struct {
	Name          string          `json:"name"`
	Status        evaluate.Status `json:"status"`
	SuccessRollup model.Percent   `json:"success_rollup"`
	Checks        []CheckResponse `json:"checks"`
}

type CheckResponse struct {
	ID           string               `json:"id"`
	Datasource   string               `json:"datasource"`
	Host         string               `json:"host"`
	DisplayName  string               `json:"display_name"`
	Explanation  string               `json:"explanation"`
	Type         string               `json:"type"`
	Data         string               `json:"data"`
	Result       model.Result         `json:"result"`
	Rating       int                  `json:"rating"`
	Detail       detail.Detail        `json:"detail"`
	Availability AvailabilityResponse `json:"availability"`
}

// AvailabilityResponse is the breakdown shown in the check tooltip.
type AvailabilityResponse struct {
	Success         model.Percent `json:"success"`
	Failure         model.Percent `json:"failure"`
	SuccessPct      model.Percent `json:"success_pct"`
	FailurePct      model.Percent `json:"failure_pct"`
	UncertainPct    model.Percent `json:"uncertain_pct"`
	MaintenancePct  model.Percent `json:"maintenance_pct"`
	NotProcessedPct model.Percent `json:"not_processed_pct"`
}

// NewDashboardResponse keeps only the visible folders and, inside them, the visible checks.
func NewDashboardResponse(view evaluate.View) DashboardResponse {
	res := DashboardResponse{
		Version: view.Version,
		Search:  view.Filter.String(),
		Counts:  view.Counts,
		Folders: make([]FolderResponse, 0),
	}
	for _, folder := range view.Visible() {
		fr := FolderResponse{
			Name:          folder.Name,
			Status:        folder.Status,
			SuccessRollup: folder.SuccessRollup,
			Checks:        make([]CheckResponse, 0, len(folder.Checks)),
		}
		for _, check := range folder.Checks {
			if !check.Visible {
				continue
			}
			fr.Checks = append(fr.Checks, CheckResponse{
				ID:          check.ID,
				Datasource:  check.Datasource,
				Host:        check.Host,
				DisplayName: check.DisplayName,
				Explanation: check.Explanation,
				Type:        check.Type,
				Data:        check.Data,
				Result:      check.Result,
				Rating:      check.Rating,
				Detail:      check.Detail,
				Availability: AvailabilityResponse{
					Success:         check.Success,
					Failure:         check.Failure,
					SuccessPct:      check.SuccessPct,
					FailurePct:      check.FailurePct,
					UncertainPct:    check.UncertainPct,
					MaintenancePct:  check.MaintenancePct,
					NotProcessedPct: check.NotProcessedPct,
				},
			})
		}
		res.Folders = append(res.Folders, fr)
	}
	return res
}
