package handler

import (
	"VCS_Status_Dashboard/internal/dashboard/api/dto/request"
	"VCS_Status_Dashboard/internal/dashboard/api/dto/response"
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DashboardHandler interface {
	GetDashboard() gin.HandlerFunc
	ExportDashboard() gin.HandlerFunc
	GetDatasources() gin.HandlerFunc
	UpdateDatasource() gin.HandlerFunc
	ToggleDatasource() gin.HandlerFunc
	GetAlerts() gin.HandlerFunc
	DismissAlert() gin.HandlerFunc
	SendReport() gin.HandlerFunc
}

type dashboardHandler struct {
	logger           Logger
	dashboardService service.DashboardService
	longPollTimeout  time.Duration
}

func (*dashboardHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *dashboardHandler) bindingError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: h.formatValidationError(validatorError[0]),
		})
	} else {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid request body",
		})
	}
}

// GetDashboard answers immediately unless since is given. With since it waits until the model is newer
// than that version or the long poll timeout passes, whichever comes first.
func (h *dashboardHandler) GetDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		var query service.DashboardQuery
		if search, ok := c.GetQuery("search"); ok {
			query.Search = &search
		}
		if since := c.Query("since"); since != "" {
			v, err := strconv.ParseUint(since, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Since must be a non negative integer",
				})
				return
			}
			query.Since = v
		}

		ctx := c.Request.Context()
		if query.Since > 0 && h.longPollTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.longPollTimeout)
			defer cancel()
		}
		view, err := h.dashboardService.GetDashboard(ctx, query)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			err = fmt.Errorf("DashboardHandler.GetDashboard: %w", err)
			h.logger.LoggingError(c, err, "failed to get dashboard", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewDashboardResponse(view))
	}
}

func (h *dashboardHandler) ExportDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := h.dashboardService.ExportWorkbook(c)
		if err != nil {
			err = fmt.Errorf("DashboardHandler.ExportDashboard: %w", err)
			h.logger.LoggingError(c, err, "failed to export dashboard", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("dashboard-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("DashboardHandler.ExportDashboard: %w", err)
			h.logger.LoggingError(c, err, "failed to write workbook", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *dashboardHandler) GetDatasources() gin.HandlerFunc {
	return func(c *gin.Context) {
		sources := h.dashboardService.ListDatasources(c)
		res := make([]response.DatasourceResponse, 0, len(sources))
		for _, source := range sources {
			res = append(res, response.NewDatasourceResponse(source))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *dashboardHandler) UpdateDatasource() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.DatasourceUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindingError(c, err)
			return
		}
		name := c.Param("name")
		source, err := h.dashboardService.SetDatasourceEnabled(c, name, *req.Enabled)
		if err != nil {
			h.datasourceError(c, fmt.Errorf("DashboardHandler.UpdateDatasource: %w", err))
			return
		}
		c.JSON(http.StatusOK, response.NewDatasourceResponse(source))
	}
}

func (h *dashboardHandler) ToggleDatasource() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		source, err := h.dashboardService.ToggleDatasource(c, name)
		if err != nil {
			h.datasourceError(c, fmt.Errorf("DashboardHandler.ToggleDatasource: %w", err))
			return
		}
		c.JSON(http.StatusOK, response.NewDatasourceResponse(source))
	}
}

func (h *dashboardHandler) datasourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDatasourceNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Datasource not found",
		})
	default:
		h.logger.LoggingError(c, err, "failed to update datasource", zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (h *dashboardHandler) GetAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts := h.dashboardService.ListAlerts(c)
		res := make([]response.AlertResponse, 0, len(alerts))
		for _, a := range alerts {
			res = append(res, response.AlertResponse{
				ID:        a.ID,
				Message:   a.Message,
				RaisedAt:  a.RaisedAt,
				UpdatedAt: a.UpdatedAt,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *dashboardHandler) DismissAlert() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.dashboardService.DismissAlert(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrAlertNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Alert not found",
				})
			default:
				err = fmt.Errorf("DashboardHandler.DismissAlert: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to dismiss alert %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Alert dismissed",
		})
	}
}

func (h *dashboardHandler) SendReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindingError(c, err)
			return
		}
		err := h.dashboardService.SendAvailabilityReport(c, []string{req.Email})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMailNotConfigured):
				c.JSON(http.StatusServiceUnavailable, response.Response{
					Message: "Mail is not configured",
				})
			default:
				err = fmt.Errorf("DashboardHandler.SendReport: %w", err)
				h.logger.LoggingError(c, err, "failed to send availability report", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewDashboardHandler(logger *zap.Logger, dashboardService service.DashboardService, longPollTimeout time.Duration) DashboardHandler {
	return &dashboardHandler{
		logger:           NewLogger(logger),
		dashboardService: dashboardService,
		longPollTimeout:  longPollTimeout,
	}
}
