package report

import (
	"VCS_Status_Dashboard/internal/dashboard/evaluate"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	FoldersSheet     = "Folders"
	ChecksSheet      = "Checks"
	DatasourcesSheet = "Datasources"
)

// BuildWorkbook writes one sheet per folders, checks and datasources. The caller closes the file.
func BuildWorkbook(view evaluate.View, datasources []DatasourceRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", FoldersSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("report.BuildWorkbook: %w", err)
	}
	if _, err := f.NewSheet(ChecksSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("report.BuildWorkbook: %w", err)
	}
	if _, err := f.NewSheet(DatasourcesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("report.BuildWorkbook: %w", err)
	}

	folderRows := [][]interface{}{{"folder", "status", "success_rollup", "enabled_checks", "visible"}}
	checkRows := [][]interface{}{{"folder", "datasource", "id", "host", "display_name", "type", "result", "detail", "success", "failure", "rating"}}
	for _, folder := range view.Folders {
		folderRows = append(folderRows, []interface{}{
			folder.Name, string(folder.Status), folder.SuccessRollup.Float(), folder.EnabledChecks, folder.Visible,
		})
		for _, check := range folder.Checks {
			if !check.Enabled {
				continue
			}
			checkRows = append(checkRows, []interface{}{
				folder.Name, check.Datasource, check.ID, check.Host, check.DisplayName, check.Type,
				string(check.Result), check.Detail.Text, check.Success.Float(), check.Failure.Float(), check.Rating,
			})
		}
	}
	sourceRows := [][]interface{}{{"datasource", "enabled", "in_sync", "last_checks_update", "last_availability_update", "availability_days", "last_error"}}
	for _, source := range datasources {
		sourceRows = append(sourceRows, []interface{}{
			source.Name, source.Enabled, source.InSync, formatTime(source.LastChecksUpdate),
			formatTime(source.LastAvailabilityUpdate), source.AvailabilitySpanDays, source.LastError,
		})
	}

	for sheet, rows := range map[string][][]interface{}{
		FoldersSheet:     folderRows,
		ChecksSheet:      checkRows,
		DatasourcesSheet: sourceRows,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			f.Close()
			return nil, fmt.Errorf("report.BuildWorkbook: %w", err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
