package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"uptime-monitor/internal/monitor/api/dto/request"
	"uptime-monitor/internal/monitor/api/dto/response"
	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
	"uptime-monitor/internal/monitor/service"
	"uptime-monitor/internal/monitor/stats"
)

type MonitorHandler interface {
	RunChecks() gin.HandlerFunc
	GetLastRun() gin.HandlerFunc
	GetTargets() gin.HandlerFunc
	GetFleetSummary() gin.HandlerFunc
	GetTargetUptime() gin.HandlerFunc
	GetTargetResponseTimes() gin.HandlerFunc
	GetTargetRollup() gin.HandlerFunc
	GetTargetIncidents() gin.HandlerFunc
	ExportTargetChecks() gin.HandlerFunc
	ReportFleetStatus() gin.HandlerFunc
}

type monitorHandler struct {
	logger         *zap.Logger
	monitorService service.MonitorService
	validator      *validator.Validate
}

func NewMonitorHandler(logger *zap.Logger, monitorService service.MonitorService) MonitorHandler {
	return &monitorHandler{
		logger:         logger,
		monitorService: monitorService,
		validator:      validator.New(),
	}
}

func (*monitorHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *monitorHandler) loggingError(c *gin.Context, err error, msg string, level zapcore.Level) {
	h.logger.Log(level, msg,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method))
}

func (h *monitorHandler) RunChecks() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.RunRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
				return
			}
		}
		summary, err := h.monitorService.RunOnce(c, req.TargetID)
		if err != nil {
			if errors.Is(err, apperrors.ErrTargetNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Target not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.RunChecks: %w", err)
			h.loggingError(c, err, "failed to run checks", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func (h *monitorHandler) GetLastRun() gin.HandlerFunc {
	return func(c *gin.Context) {
		lastRun, err := h.monitorService.LastRun(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetLastRun: %w", err)
			h.loggingError(c, err, "failed to get last run", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		res := response.LastRunResponse{}
		if !lastRun.IsZero() {
			res.LastRunAt = &lastRun
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *monitorHandler) GetTargets() gin.HandlerFunc {
	return func(c *gin.Context) {
		targets, err := h.monitorService.GetTargets(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetTargets: %w", err)
			h.loggingError(c, err, "failed to list targets", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		res := make([]response.TargetResponse, 0, len(targets))
		for _, t := range targets {
			res = append(res, response.TargetResponse{
				ID:            t.ID,
				Name:          t.Name,
				URL:           t.URL,
				CurrentStatus: t.CurrentStatus,
				StatusSince:   t.StatusSince,
				LastCheckedAt: t.LastCheckedAt,
				Paused:        t.Paused,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *monitorHandler) GetFleetSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		targets, err := h.monitorService.GetTargets(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetFleetSummary: %w", err)
			h.loggingError(c, err, "failed to list targets", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		summary := response.FleetSummaryResponse{Total: len(targets)}
		for _, t := range targets {
			if t.Paused {
				summary.Paused++
			}
			switch t.CurrentStatus {
			case model.StatusUp:
				summary.Up++
			case model.StatusDown:
				summary.Down++
			case model.StatusDegraded:
				summary.Degraded++
			case model.StatusCertificateInvalid:
				summary.CertificateInvalid++
			default:
				summary.Unknown++
			}
		}
		c.JSON(http.StatusOK, summary)
	}
}

func (h *monitorHandler) GetTargetUptime() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		windowHours := 24
		if raw := c.Query("window_hours"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid window_hours",
				})
				return
			}
			windowHours = parsed
		}
		uptime, err := h.monitorService.GetUptime(c, id, windowHours)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetTargetUptime: %w", err)
			h.loggingError(c, err, fmt.Sprintf("failed to get uptime of target %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: uptime,
		})
	}
}

func (h *monitorHandler) sinceParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("since")
	if raw == "" {
		return time.Now().UTC().Add(-24 * time.Hour), true
	}
	since, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid since date",
		})
		return time.Time{}, false
	}
	return since, true
}

func (h *monitorHandler) GetTargetResponseTimes() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		since, ok := h.sinceParam(c)
		if !ok {
			return
		}
		responseTimes, err := h.monitorService.GetResponseTimeStats(c, id, since)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetTargetResponseTimes: %w", err)
			h.loggingError(c, err, fmt.Sprintf("failed to get response times of target %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, responseTimes)
	}
}

func (h *monitorHandler) GetTargetRollup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		since, ok := h.sinceParam(c)
		if !ok {
			return
		}
		granularity := stats.Granularity(c.Query("granularity"))
		switch granularity {
		case "", stats.GranularityHour, stats.GranularityDay, stats.GranularityMonth:
		default:
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid granularity, use hour, day or month",
			})
			return
		}
		rollup, err := h.monitorService.GetChartRollup(c, id, since, granularity)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetTargetRollup: %w", err)
			h.loggingError(c, err, fmt.Sprintf("failed to get rollup of target %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, rollup)
	}
}

func (h *monitorHandler) GetTargetIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		limit := 50
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid limit",
				})
				return
			}
			limit = parsed
		}
		incidents, err := h.monitorService.GetIncidents(c, id, limit)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetTargetIncidents: %w", err)
			h.loggingError(c, err, fmt.Sprintf("failed to get incidents of target %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		res := make([]response.IncidentResponse, 0, len(incidents))
		for _, incident := range incidents {
			res = append(res, response.IncidentResponse{
				ID:              incident.ID,
				TargetID:        incident.TargetID,
				RootCause:       incident.RootCause,
				StartedAt:       incident.StartedAt,
				EndedAt:         incident.EndedAt,
				DurationSeconds: incident.DurationSeconds,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *monitorHandler) ExportTargetChecks() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		since, ok := h.sinceParam(c)
		if !ok {
			return
		}
		results, err := h.monitorService.QueryChecks(c, id, since)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportTargetChecks: %w", err)
			h.loggingError(c, err, fmt.Sprintf("failed to query checks of target %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}

		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		headers := []string{"Timestamp", "Status", "HTTP Status", "Latency (ms)", "Error"}
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
		}
		for row, result := range results {
			httpStatus := ""
			if result.HTTPStatus != nil {
				httpStatus = strconv.Itoa(*result.HTTPStatus)
			}
			values := []interface{}{
				result.Timestamp.Format(time.RFC3339),
				result.Status,
				httpStatus,
				result.LatencyMs,
				result.ErrorMessage,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportTargetChecks: %w", err)
			h.loggingError(c, err, "failed to build export file", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		fileName := fmt.Sprintf("checks-%s.xlsx", id)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

func (h *monitorHandler) ReportFleetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		if err := h.validator.Struct(req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validationErrors[0]),
				})
				return
			}
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		startTime, _ := time.Parse("2006-01-02", req.StartDate)
		endTime, _ := time.Parse("2006-01-02", req.EndDate)
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if err := h.monitorService.ReportFleetStatus(c, startTime, endTime.AddDate(0, 0, 1), req.Mail); err != nil {
			err = fmt.Errorf("MonitorHandler.ReportFleetStatus: %w", err)
			h.loggingError(c, err, "failed to send fleet report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent",
		})
	}
}
