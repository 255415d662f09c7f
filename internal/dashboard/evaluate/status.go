package evaluate

import "VCS_Status_Dashboard/internal/dashboard/model"

type Status string

const (
	StatusError   Status = "error"
	StatusWarning Status = "warning"
	StatusOk      Status = "ok"
	StatusOnHold  Status = "onhold"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusError, StatusWarning, StatusOk, StatusOnHold}

func (s Status) rank() int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return len(Statuses)
}

// Classify returns exactly one status for a set of checks. OnHold is tested before Ok because
// held checks also count as ok. A set with no checks is OnHold.
// Error requires every check to have failed; uncertain checks count as ok.
func Classify(checks []model.Check) Status {
	held, ok, failed := 0, 0, 0
	for _, check := range checks {
		if check.Result.IsHeld() {
			held++
		}
		if check.Result.IsOk() {
			ok++
		}
		if check.Result == model.ResultFailed {
			failed++
		}
	}
	switch n := len(checks); {
	case held == n:
		return StatusOnHold
	case ok == n:
		return StatusOk
	case failed == n:
		return StatusError
	default:
		return StatusWarning
	}
}
