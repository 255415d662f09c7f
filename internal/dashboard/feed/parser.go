// Package feed reads the XML documents published by the monitoring server.
package feed

import (
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var DefaultRefreshFields = []string{"xslrefreshtime", "refreshtime"}

type ParseOptions struct {
	// IgnoreFolderPrefix drops checks whose folder starts with it, ignoring case. Empty keeps every folder.
	IgnoreFolderPrefix string
	// RefreshFields are the element names holding the refresh time, tried in order.
	RefreshFields []string
}

type ChecksDocument struct {
	RefreshTime string
	Checks      []model.Check
}

type AvailabilityDocument struct {
	FromDate string
	ToDate   string
	Records  []model.AvailabilityRecord
}

type element struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type checksMonitor struct {
	XMLName xml.Name     `xml:"monitor"`
	Checks  []checkEntry `xml:"check"`
	Fields  []element    `xml:",any"`
}

type checkEntry struct {
	ID          string `xml:"id"`
	Host        string `xml:"host"`
	DisplayName string `xml:"displayname"`
	Explanation string `xml:"explanation"`
	Folder      string `xml:"folder"`
	Result      string `xml:"result"`
	Data        string `xml:"data"`
	Type        string `xml:"type"`
}

type availabilityMonitor struct {
	XMLName  xml.Name            `xml:"monitor"`
	FromDate string              `xml:"from-date"`
	ToDate   string              `xml:"to-date"`
	Checks   []availabilityEntry `xml:"check"`
}

type availabilityEntry struct {
	ID              string `xml:"id"`
	SuccessPct      string `xml:"success-pct"`
	FailurePct      string `xml:"failure-pct"`
	UncertainPct    string `xml:"uncertain-pct"`
	MaintenancePct  string `xml:"maintenance-pct"`
	NotProcessedPct string `xml:"notprocessed-pct"`
}

// ParseChecks reads a checks document. Checks are tagged with datasource and carry default
// availability fields; checks in ignored folders are left out.
func ParseChecks(r io.Reader, datasource string, opts ParseOptions) (ChecksDocument, error) {
	var doc checksMonitor
	if err := decode(r, &doc); err != nil {
		return ChecksDocument{}, fmt.Errorf("feed.ParseChecks: %w", err)
	}
	refreshFields := opts.RefreshFields
	if len(refreshFields) == 0 {
		refreshFields = DefaultRefreshFields
	}
	res := ChecksDocument{
		RefreshTime: lookupField(doc.Fields, refreshFields),
		Checks:      make([]model.Check, 0, len(doc.Checks)),
	}
	for _, entry := range doc.Checks {
		folder := strings.TrimSpace(entry.Folder)
		if IsIgnoredFolder(folder, opts.IgnoreFolderPrefix) {
			continue
		}
		res.Checks = append(res.Checks, model.Check{
			ID:          strings.TrimSpace(entry.ID),
			Datasource:  datasource,
			Host:        strings.TrimSpace(entry.Host),
			DisplayName: strings.TrimSpace(entry.DisplayName),
			Explanation: strings.TrimSpace(entry.Explanation),
			Folder:      folder,
			Type:        strings.TrimSpace(entry.Type),
			Data:        strings.TrimSpace(entry.Data),
			Result:      model.ParseResult(entry.Result),
			Rating:      model.DefaultRating,
		})
	}
	return res, nil
}

// ParseAvailability reads an availability document.
func ParseAvailability(r io.Reader) (AvailabilityDocument, error) {
	var doc availabilityMonitor
	if err := decode(r, &doc); err != nil {
		return AvailabilityDocument{}, fmt.Errorf("feed.ParseAvailability: %w", err)
	}
	res := AvailabilityDocument{
		FromDate: strings.TrimSpace(doc.FromDate),
		ToDate:   strings.TrimSpace(doc.ToDate),
		Records:  make([]model.AvailabilityRecord, 0, len(doc.Checks)),
	}
	for _, entry := range doc.Checks {
		res.Records = append(res.Records, model.AvailabilityRecord{
			ID:              strings.TrimSpace(entry.ID),
			SuccessPct:      model.ParsePercent(entry.SuccessPct),
			FailurePct:      model.ParsePercent(entry.FailurePct),
			UncertainPct:    model.ParsePercent(entry.UncertainPct),
			MaintenancePct:  model.ParsePercent(entry.MaintenancePct),
			NotProcessedPct: model.ParsePercent(entry.NotProcessedPct),
		})
	}
	return res, nil
}

func IsIgnoredFolder(folder string, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(folder), strings.ToLower(prefix))
}

func decode(r io.Reader, v any) error {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedFeed, err)
	}
	return nil
}

func lookupField(fields []element, names []string) string {
	for _, name := range names {
		for _, field := range fields {
			if strings.EqualFold(field.XMLName.Local, name) {
				return strings.TrimSpace(field.Value)
			}
		}
	}
	return ""
}
