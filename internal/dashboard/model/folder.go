package model

const DefaultRollup = MaxPercent

type Folder struct {
	Name          string  `json:"name"`
	Checks        []Check `json:"checks"`
	SuccessRollup Percent `json:"success_rollup"`
}
