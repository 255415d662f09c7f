package report

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const timeLayout = "02.01.2006 15:04:05"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(timeLayout)
}

func Subject(s Summary) string {
	return fmt.Sprintf("Dashboard Availability Report %s", s.GeneratedAt.Format("02.01.2006"))
}

func TextBody(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- SUMMARY ---\n"+
		"Generated At: %s\n"+
		"Datasources Enabled: %d/%d\n"+
		"Folders: %d\n"+
		"Checks: %d\n"+
		"Error: %d\n"+
		"Warning: %d\n"+
		"Ok: %d\n"+
		"On Hold: %d\n\n"+
		"Average Availability Across All Folders: %s%%\n",
		formatTime(s.GeneratedAt),
		s.EnabledSources, len(s.Datasources),
		len(s.Folders),
		s.TotalChecks,
		s.Counts.Error,
		s.Counts.Warning,
		s.Counts.Ok,
		s.Counts.OnHold,
		s.AverageRollup,
	)
	if len(s.FailedChecks) > 0 {
		b.WriteString("\n--- FAILED CHECKS ---\n")
		for _, check := range s.FailedChecks {
			fmt.Fprintf(&b, "[%s] %s %s: %s\n", check.Folder, check.Host, check.Type, check.Explanation)
		}
	}
	b.WriteString("\n--- DATASOURCES ---\n")
	for _, source := range s.Datasources {
		fmt.Fprintf(&b, "%s: enabled=%t in_sync=%t last_update=%s availability_days=%d\n",
			source.Name, source.Enabled, source.InSync, formatTime(source.LastChecksUpdate), source.AvailabilitySpanDays)
	}
	return b.String()
}

const (
	labelCell = `<td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">%s</td>`
	valueCell = `<td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>`
)

func htmlRow(label string, value string) string {
	return "<tr>" + fmt.Sprintf(labelCell, html.EscapeString(label)) + fmt.Sprintf(valueCell, html.EscapeString(value)) + "</tr>\n"
}

func HTMLBody(s Summary) string {
	var b strings.Builder
	b.WriteString("<body>\n<table style=\"width:100%; border-collapse: collapse;\">\n")
	b.WriteString(htmlRow("Generated At:", formatTime(s.GeneratedAt)))
	b.WriteString(htmlRow("Datasources Enabled:", fmt.Sprintf("%d/%d", s.EnabledSources, len(s.Datasources))))
	b.WriteString(htmlRow("Folders:", fmt.Sprint(len(s.Folders))))
	b.WriteString(htmlRow("Checks:", fmt.Sprint(s.TotalChecks)))
	b.WriteString(htmlRow("Error:", fmt.Sprint(s.Counts.Error)))
	b.WriteString(htmlRow("Warning:", fmt.Sprint(s.Counts.Warning)))
	b.WriteString(htmlRow("Ok:", fmt.Sprint(s.Counts.Ok)))
	b.WriteString(htmlRow("On Hold:", fmt.Sprint(s.Counts.OnHold)))
	b.WriteString(htmlRow("Average Availability:", s.AverageRollup.String()+"%"))
	b.WriteString("</table>\n")

	if len(s.Folders) > 0 {
		b.WriteString("<h3>Folders</h3>\n<table style=\"width:100%; border-collapse: collapse;\">\n")
		for _, folder := range s.Folders {
			b.WriteString(htmlRow(folder.Name, fmt.Sprintf("%s (%s%%, %d checks)", folder.Status, folder.SuccessRollup, folder.Checks)))
		}
		b.WriteString("</table>\n")
	}
	b.WriteString("</body>")
	return b.String()
}
