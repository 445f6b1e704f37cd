package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockhandler "uptime-monitor/internal/monitor/mocks/api/handler"
	mockmiddleware "uptime-monitor/internal/monitor/mocks/middleware"
)

func TestAddMonitorRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockMonitorHandler(ctrl)
	mockMiddleware := mockmiddleware.NewMockAuthMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
	nextMiddleware := func(c *gin.Context) {
		c.Next()
	}

	mockMiddleware.EXPECT().CheckUserPermission(gomock.Any()).Return(nextMiddleware).AnyTimes()

	mockHandler.EXPECT().RunChecks().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetLastRun().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetTargets().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetFleetSummary().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetTargetUptime().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetTargetResponseTimes().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetTargetRollup().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetTargetIncidents().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ExportTargetChecks().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ReportFleetStatus().Return(emptySuccessHandler).AnyTimes()

	AddMonitorRoutes(r, mockHandler, mockMiddleware)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Run Checks Route",
			method:         http.MethodPost,
			path:           "/engine/run",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Last Run Route",
			method:         http.MethodGet,
			path:           "/engine/last-run",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Targets Route",
			method:         http.MethodGet,
			path:           "/targets",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fleet Summary Route",
			method:         http.MethodGet,
			path:           "/targets/summary",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Target Uptime Route",
			method:         http.MethodGet,
			path:           "/targets/some-id/uptime",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Target Response Times Route",
			method:         http.MethodGet,
			path:           "/targets/some-id/response-times",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Target Rollup Route",
			method:         http.MethodGet,
			path:           "/targets/some-id/rollup",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Target Incidents Route",
			method:         http.MethodGet,
			path:           "/targets/some-id/incidents",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Export Checks Route",
			method:         http.MethodGet,
			path:           "/targets/some-id/checks/export",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Report Route",
			method:         http.MethodPost,
			path:           "/reports",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
