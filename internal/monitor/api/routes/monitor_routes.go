package routes

import (
	"github.com/gin-gonic/gin"

	"uptime-monitor/internal/monitor/api/handler"
	"uptime-monitor/pkg/middleware"
)

const (
	ScopeMonitorRead   = "monitor:read"
	ScopeMonitorRun    = "monitor:run"
	ScopeMonitorReport = "monitor:report"
)

func AddMonitorRoutes(r *gin.Engine, h handler.MonitorHandler, m middleware.AuthMiddleware) {
	engineRoutes := r.Group("/engine")
	engineRoutes.POST("/run", m.CheckUserPermission(ScopeMonitorRun), h.RunChecks())
	engineRoutes.GET("/last-run", m.CheckUserPermission(ScopeMonitorRead), h.GetLastRun())

	targetRoutes := r.Group("/targets")
	targetRoutes.GET("", m.CheckUserPermission(ScopeMonitorRead), h.GetTargets())
	targetRoutes.GET("/summary", m.CheckUserPermission(ScopeMonitorRead), h.GetFleetSummary())
	targetRoutes.GET("/:id/uptime", m.CheckUserPermission(ScopeMonitorRead), h.GetTargetUptime())
	targetRoutes.GET("/:id/response-times", m.CheckUserPermission(ScopeMonitorRead), h.GetTargetResponseTimes())
	targetRoutes.GET("/:id/rollup", m.CheckUserPermission(ScopeMonitorRead), h.GetTargetRollup())
	targetRoutes.GET("/:id/incidents", m.CheckUserPermission(ScopeMonitorRead), h.GetTargetIncidents())
	targetRoutes.GET("/:id/checks/export", m.CheckUserPermission(ScopeMonitorRead), h.ExportTargetChecks())

	r.POST("/reports", m.CheckUserPermission(ScopeMonitorReport), h.ReportFleetStatus())
}
