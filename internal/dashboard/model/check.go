package model

// Check is one monitored condition read from a checks feed.
// Datasource holds the name of the owning datasource, resolved through the registry.
type Check struct {
	ID          string `json:"id"`
	Datasource  string `json:"datasource"`
	Host        string `json:"host"`
	DisplayName string `json:"display_name"`
	Explanation string `json:"explanation"`
	Folder      string `json:"folder"`
	Type        string `json:"type"`
	Data        string `json:"data"`
	Result      Result `json:"result"`

	SuccessPct      Percent `json:"success_pct"`
	FailurePct      Percent `json:"failure_pct"`
	UncertainPct    Percent `json:"uncertain_pct"`
	MaintenancePct  Percent `json:"maintenance_pct"`
	NotProcessedPct Percent `json:"not_processed_pct"`
	Success         Percent `json:"success"`
	Failure         Percent `json:"failure"`

	Rating int `json:"rating"`
}

// AvailabilityRecord is the percentage breakdown of one check over the availability window.
type AvailabilityRecord struct {
	ID              string
	SuccessPct      Percent
	FailurePct      Percent
	UncertainPct    Percent
	MaintenancePct  Percent
	NotProcessedPct Percent
}

// ApplyAvailability copies the breakdown onto the check and derives the composite scores.
// Uncertain, maintenance and not processed time count as success.
func (c *Check) ApplyAvailability(record AvailabilityRecord) {
	c.SuccessPct = record.SuccessPct
	c.FailurePct = record.FailurePct
	c.UncertainPct = record.UncertainPct
	c.MaintenancePct = record.MaintenancePct
	c.NotProcessedPct = record.NotProcessedPct
	c.Success = NewPercent(record.SuccessPct.Float() + record.UncertainPct.Float() + record.MaintenancePct.Float() + record.NotProcessedPct.Float())
	c.Failure = record.FailurePct
}
