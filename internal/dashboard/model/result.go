package model

import "strings"

type Result string

const (
	ResultSuccessful  Result = "Successful"
	ResultUncertain   Result = "Uncertain"
	ResultOnHold      Result = "On Hold"
	ResultMaintenance Result = "Maintenance"
	ResultFailed      Result = "Failed"
	ResultUnknown     Result = "Unknown"
)

// ParseResult maps the result text of a feed to a Result. Matching ignores case and spaces,
// so "On Hold", "OnHold" and "on hold" are the same value. Unrecognised text maps to ResultUnknown.
func ParseResult(text string) Result {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), " ", ""))
	switch key {
	case "successful", "success":
		return ResultSuccessful
	case "uncertain":
		return ResultUncertain
	case "onhold":
		return ResultOnHold
	case "maintenance":
		return ResultMaintenance
	case "failed", "failure":
		return ResultFailed
	default:
		return ResultUnknown
	}
}

// IsHeld reports whether the check is paused and must not count towards availability.
func (r Result) IsHeld() bool {
	return r == ResultOnHold || r == ResultMaintenance
}

// IsOk reports whether the result does not indicate a problem.
func (r Result) IsOk() bool {
	return r == ResultSuccessful || r == ResultUncertain || r.IsHeld()
}
