package service

import (
	"VCS_Status_Dashboard/internal/dashboard/aggregate"
	"VCS_Status_Dashboard/internal/dashboard/alert"
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/evaluate"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"VCS_Status_Dashboard/internal/dashboard/registry"
	"VCS_Status_Dashboard/internal/dashboard/report"
	"VCS_Status_Dashboard/pkg/mail"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

type DashboardQuery struct {
	// Search replaces the initial search when set, even when empty.
	Search *string
	// Since makes the query wait until the model version is greater than it.
	Since uint64
}

type DatasourceStatus struct {
	model.Datasource
	InSync bool
}

type DashboardService interface {
	GetDashboard(ctx context.Context, query DashboardQuery) (evaluate.View, error)
	ListDatasources(ctx context.Context) []DatasourceStatus
	SetDatasourceEnabled(ctx context.Context, name string, enabled bool) (DatasourceStatus, error)
	ToggleDatasource(ctx context.Context, name string) (DatasourceStatus, error)
	ListAlerts(ctx context.Context) []alert.Alert
	DismissAlert(ctx context.Context, id string) error
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
	SendAvailabilityReport(ctx context.Context, recipients []string) error
}

type Options struct {
	InitialSearch   string
	InSyncThreshold time.Duration
}

type dashboardService struct {
	registry        *registry.Registry
	store           *aggregate.Store
	alerts          alert.Board
	mailSender      mail.Sender
	initialSearch   string
	inSyncThreshold time.Duration
	now             func() time.Time
}

// GetDashboard returns the current view. With a Since version it first waits for a newer model;
// when ctx expires before that, the unchanged view is returned.
func (s *dashboardService) GetDashboard(ctx context.Context, query DashboardQuery) (evaluate.View, error) {
	if query.Since > 0 {
		if _, err := s.store.WaitForChange(ctx, query.Since); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return evaluate.View{}, fmt.Errorf("DashboardService.GetDashboard: %w", err)
		}
	}
	search := s.initialSearch
	if query.Search != nil {
		search = *query.Search
	}
	return evaluate.Evaluate(s.store.Snapshot(), s.registry, evaluate.ParseFilter(search)), nil
}

func (s *dashboardService) ListDatasources(_ context.Context) []DatasourceStatus {
	sources := s.registry.List()
	res := make([]DatasourceStatus, 0, len(sources))
	for _, source := range sources {
		res = append(res, s.status(source))
	}
	return res
}

func (s *dashboardService) SetDatasourceEnabled(ctx context.Context, name string, enabled bool) (DatasourceStatus, error) {
	source, err := s.registry.SetEnabled(name, enabled)
	if err != nil {
		return DatasourceStatus{}, fmt.Errorf("DashboardService.SetDatasourceEnabled: %w", err)
	}
	s.afterToggle(ctx, source)
	return s.status(source), nil
}

func (s *dashboardService) ToggleDatasource(ctx context.Context, name string) (DatasourceStatus, error) {
	source, err := s.registry.Toggle(name)
	if err != nil {
		return DatasourceStatus{}, fmt.Errorf("DashboardService.ToggleDatasource: %w", err)
	}
	s.afterToggle(ctx, source)
	return s.status(source), nil
}

// afterToggle refreshes the rollups. A disabled datasource is not polled, so its alerts are cleared.
func (s *dashboardService) afterToggle(ctx context.Context, source model.Datasource) {
	s.store.RecomputeRollups()
	if !source.Enabled {
		s.alerts.Clear(ctx, alert.SourceFailedID(source.Name))
		s.alerts.Clear(ctx, alert.SourceOutdatedID(source.Name))
	}
}

func (s *dashboardService) ListAlerts(_ context.Context) []alert.Alert {
	return s.alerts.List()
}

func (s *dashboardService) DismissAlert(_ context.Context, id string) error {
	if err := s.alerts.Dismiss(id); err != nil {
		return fmt.Errorf("DashboardService.DismissAlert: %w", err)
	}
	return nil
}

func (s *dashboardService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	view, err := s.GetDashboard(ctx, DashboardQuery{Search: new(string)})
	if err != nil {
		return nil, fmt.Errorf("DashboardService.ExportWorkbook: %w", err)
	}
	f, err := report.BuildWorkbook(view, s.datasourceRows())
	if err != nil {
		return nil, fmt.Errorf("DashboardService.ExportWorkbook: %w", err)
	}
	return f, nil
}

func (s *dashboardService) SendAvailabilityReport(ctx context.Context, recipients []string) error {
	if s.mailSender == nil {
		return fmt.Errorf("DashboardService.SendAvailabilityReport: %w", apperrors.ErrMailNotConfigured)
	}
	view, err := s.GetDashboard(ctx, DashboardQuery{Search: new(string)})
	if err != nil {
		return fmt.Errorf("DashboardService.SendAvailabilityReport: %w", err)
	}
	rows := s.datasourceRows()
	summary := report.NewSummary(view, rows, s.now())

	f, err := report.BuildWorkbook(view, rows)
	if err != nil {
		return fmt.Errorf("DashboardService.SendAvailabilityReport: %w", err)
	}
	defer f.Close()
	workbook, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("DashboardService.SendAvailabilityReport: %w", err)
	}

	err = s.mailSender.Send(mail.Message{
		To:       recipients,
		Subject:  report.Subject(summary),
		TextBody: report.TextBody(summary),
		HTMLBody: report.HTMLBody(summary),
		Attachments: []mail.Attachment{
			{Name: fmt.Sprintf("availability-%s.xlsx", summary.GeneratedAt.Format("2006-01-02")), Content: workbook},
		},
	})
	if err != nil {
		return fmt.Errorf("DashboardService.SendAvailabilityReport: %w", err)
	}
	return nil
}

func (s *dashboardService) status(source model.Datasource) DatasourceStatus {
	return DatasourceStatus{
		Datasource: source,
		InSync:     aggregate.InSync(s.now(), source.LastChecksUpdate, s.inSyncThreshold),
	}
}

func (s *dashboardService) datasourceRows() []report.DatasourceRow {
	sources := s.registry.List()
	rows := make([]report.DatasourceRow, 0, len(sources))
	for _, source := range sources {
		status := s.status(source)
		rows = append(rows, report.DatasourceRow{
			Name:                   source.Name,
			Enabled:                source.Enabled,
			InSync:                 status.InSync,
			LastChecksUpdate:       source.LastChecksUpdate,
			LastAvailabilityUpdate: source.LastAvailabilityUpdate,
			AvailabilitySpanDays:   source.AvailabilitySpanDays,
			LastError:              source.LastError,
		})
	}
	return rows
}

// NewDashboardService accepts a nil mailSender; reports then fail with ErrMailNotConfigured.
func NewDashboardService(registry *registry.Registry, store *aggregate.Store, alerts alert.Board, mailSender mail.Sender, opts Options) DashboardService {
	return &dashboardService{
		registry:        registry,
		store:           store,
		alerts:          alerts,
		mailSender:      mailSender,
		initialSearch:   opts.InitialSearch,
		inSyncThreshold: opts.InSyncThreshold,
		now:             time.Now,
	}
}
