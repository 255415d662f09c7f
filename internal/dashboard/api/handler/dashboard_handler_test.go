package handler

import (
	"VCS_Status_Dashboard/internal/dashboard/alert"
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/evaluate"
	mockservice "VCS_Status_Dashboard/internal/dashboard/mocks/service"
	"VCS_Status_Dashboard/internal/dashboard/model"
	"VCS_Status_Dashboard/internal/dashboard/service"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupTestContext(t *testing.T, method, url string, body io.Reader) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	return w, c
}

func testView() evaluate.View {
	return evaluate.View{
		Version: 4,
		Filter:  evaluate.ParseFilter("cpu"),
		Counts:  evaluate.Counts{Warning: 1, OnHold: 1},
		Folders: []evaluate.FolderView{
			{
				Name:          "Servers",
				Status:        evaluate.StatusWarning,
				SuccessRollup: model.NewPercent(85),
				Visible:       true,
				EnabledChecks: 2,
				Checks: []evaluate.CheckView{
					{Check: model.Check{ID: "1", Datasource: "Alpha", Host: "SRV-APP01", Type: "CPU Usage", Result: model.ResultSuccessful}, Enabled: true, Visible: true},
					{Check: model.Check{ID: "2", Datasource: "Alpha", Host: "SRV-APP01", Type: "Service", Result: model.ResultFailed}, Enabled: true},
				},
			},
			{
				Name:          "Database",
				Status:        evaluate.StatusOnHold,
				SuccessRollup: model.DefaultRollup,
				EnabledChecks: 1,
				Checks: []evaluate.CheckView{
					{Check: model.Check{ID: "3", Datasource: "Alpha", Type: "Memory Usage", Result: model.ResultOnHold}, Enabled: true},
				},
			},
		},
	}
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	search := "cpu"

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockDashboardService)
		expectedStatus int
		expectedBody   []string
		unexpectedBody []string
	}{
		{
			name: "Success without query",
			url:  "/dashboard",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().GetDashboard(gomock.Any(), service.DashboardQuery{}).Return(testView(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"version":4`, `"search":"cpu"`, `"success_rollup":"85.00"`, `"id":"1"`, `"warning":1`},
			unexpectedBody: []string{`"id":"2"`, `"name":"Database"`},
		},
		{
			name: "Success with search",
			url:  "/dashboard?search=cpu",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().GetDashboard(gomock.Any(), service.DashboardQuery{Search: &search}).Return(testView(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"name":"Servers"`},
		},
		{
			name: "Success long poll",
			url:  "/dashboard?since=3",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().GetDashboard(gomock.Any(), service.DashboardQuery{Since: 3}).
					DoAndReturn(func(ctx context.Context, _ service.DashboardQuery) (evaluate.View, error) {
						_, hasDeadline := ctx.Deadline()
						assert.True(t, hasDeadline)
						return testView(), nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"version":4`},
		},
		{
			name:           "Error invalid since",
			url:            "/dashboard?since=abc",
			setupMocks:     func(mockService *mockservice.MockDashboardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"message":"Since must be a non negative integer"`},
		},
		{
			name: "Error internal",
			url:  "/dashboard",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(evaluate.View{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"message":"Internal server error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockDashboardService(ctrl)
			tc.setupMocks(mockService)
			handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)
			handler.GetDashboard()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, body := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), body)
			}
			for _, body := range tc.unexpectedBody {
				assert.NotContains(t, w.Body.String(), body)
			}
		})
	}
}

func TestDashboardHandler_ExportDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockDashboardService(ctrl)
		mockService.EXPECT().ExportWorkbook(gomock.Any()).Return(excelize.NewFile(), nil)
		handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

		w, c := setupTestContext(t, http.MethodGet, "/dashboard/export", nil)
		handler.ExportDashboard()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"dashboard-")
		assert.NotZero(t, w.Body.Len())
	})

	t.Run("Error internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockDashboardService(ctrl)
		mockService.EXPECT().ExportWorkbook(gomock.Any()).Return(nil, errors.New("boom"))
		handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

		w, c := setupTestContext(t, http.MethodGet, "/dashboard/export", nil)
		handler.ExportDashboard()(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Internal server error"`)
	})
}

func TestDashboardHandler_GetDatasources(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockDashboardService(ctrl)
	mockService.EXPECT().ListDatasources(gomock.Any()).Return([]service.DatasourceStatus{
		{Datasource: model.Datasource{Name: "Alpha", Enabled: true, ChecksURL: "checks.xml", AvailabilitySpanDays: 7}, InSync: true},
		{Datasource: model.Datasource{Name: "Beta", LastError: "connection refused"}},
	})
	handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

	w, c := setupTestContext(t, http.MethodGet, "/datasources", nil)
	handler.GetDatasources()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"name":"Alpha","enabled":true,"in_sync":true,"checks_url":"checks.xml"`)
	assert.Contains(t, body, `"last_checks_update":null`)
	assert.Contains(t, body, `"availability_span_days":7`)
	assert.Contains(t, body, `"last_error":"connection refused"`)
}

func TestDashboardHandler_UpdateDatasource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(mockService *mockservice.MockDashboardService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success disable",
			body: `{"enabled":false}`,
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().SetDatasourceEnabled(gomock.Any(), "Alpha", false).
					Return(service.DatasourceStatus{Datasource: model.Datasource{Name: "Alpha"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"enabled":false`,
		},
		{
			name:           "Error invalid JSON body",
			body:           `{"enabled":`,
			setupMocks:     func(mockService *mockservice.MockDashboardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name:           "Error missing enabled",
			body:           `{}`,
			setupMocks:     func(mockService *mockservice.MockDashboardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Enabled field is required"`,
		},
		{
			name: "Error datasource not found",
			body: `{"enabled":true}`,
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().SetDatasourceEnabled(gomock.Any(), "Alpha", true).
					Return(service.DatasourceStatus{}, apperrors.ErrDatasourceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Datasource not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockDashboardService(ctrl)
			tc.setupMocks(mockService)
			handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

			w, c := setupTestContext(t, http.MethodPatch, "/datasources/Alpha", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "name", Value: "Alpha"}}
			handler.UpdateDatasource()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestDashboardHandler_ToggleDatasource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockDashboardService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().ToggleDatasource(gomock.Any(), "Alpha").
					Return(service.DatasourceStatus{Datasource: model.Datasource{Name: "Alpha", Enabled: true}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"enabled":true`,
		},
		{
			name: "Error datasource not found",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().ToggleDatasource(gomock.Any(), "Alpha").
					Return(service.DatasourceStatus{}, apperrors.ErrDatasourceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Datasource not found"`,
		},
		{
			name: "Error internal",
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().ToggleDatasource(gomock.Any(), "Alpha").
					Return(service.DatasourceStatus{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockDashboardService(ctrl)
			tc.setupMocks(mockService)
			handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

			w, c := setupTestContext(t, http.MethodPost, "/datasources/Alpha/toggle", nil)
			c.Params = gin.Params{{Key: "name", Value: "Alpha"}}
			handler.ToggleDatasource()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestDashboardHandler_GetAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockDashboardService(ctrl)
	raisedAt := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
	mockService.EXPECT().ListAlerts(gomock.Any()).Return([]alert.Alert{
		{ID: alert.SourceFailedID("Alpha"), Message: "down", RaisedAt: raisedAt, UpdatedAt: raisedAt},
	})
	handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

	w, c := setupTestContext(t, http.MethodGet, "/alerts", nil)
	handler.GetAlerts()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"source-Alpha-failed","message":"down","raised_at":"2026-10-16T14:00:00Z"`)
}

func TestDashboardHandler_DismissAlert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{name: "Success", serviceErr: nil, expectedStatus: http.StatusOK, expectedBody: `"message":"Alert dismissed"`},
		{name: "Error alert not found", serviceErr: apperrors.ErrAlertNotFound, expectedStatus: http.StatusNotFound, expectedBody: `"message":"Alert not found"`},
		{name: "Error internal", serviceErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedBody: `"message":"Internal server error"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockDashboardService(ctrl)
			mockService.EXPECT().DismissAlert(gomock.Any(), "source-Alpha-failed").Return(tc.serviceErr)
			handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

			w, c := setupTestContext(t, http.MethodDelete, "/alerts/source-Alpha-failed", nil)
			c.Params = gin.Params{{Key: "id", Value: "source-Alpha-failed"}}
			handler.DismissAlert()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestDashboardHandler_SendReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(mockService *mockservice.MockDashboardService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"email":"ops@example.com"}`,
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().SendAvailabilityReport(gomock.Any(), []string{"ops@example.com"}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Report sent successfully"`,
		},
		{
			name:           "Error invalid email",
			body:           `{"email":"not-an-email"}`,
			setupMocks:     func(mockService *mockservice.MockDashboardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Email field is not a valid email"`,
		},
		{
			name:           "Error missing email",
			body:           `{}`,
			setupMocks:     func(mockService *mockservice.MockDashboardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Email field is required"`,
		},
		{
			name: "Error mail not configured",
			body: `{"email":"ops@example.com"}`,
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().SendAvailabilityReport(gomock.Any(), gomock.Any()).Return(apperrors.ErrMailNotConfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"message":"Mail is not configured"`,
		},
		{
			name: "Error internal",
			body: `{"email":"ops@example.com"}`,
			setupMocks: func(mockService *mockservice.MockDashboardService) {
				mockService.EXPECT().SendAvailabilityReport(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockDashboardService(ctrl)
			tc.setupMocks(mockService)
			handler := NewDashboardHandler(zap.NewNop(), mockService, time.Second)

			w, c := setupTestContext(t, http.MethodPost, "/reports", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			handler.SendReport()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
