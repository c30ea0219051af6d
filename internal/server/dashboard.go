package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jonleinena/happyrobot-interview/internal/model"
	"github.com/jonleinena/happyrobot-interview/pkg/utils"
)

// dashboardView is the data handed to the dashboard template.
type dashboardView struct {
	Stats       model.CallStats
	BookingRate string
	AvgRounds   string
	Logs        []model.CallLog
}

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"money": func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%.2f", *v)
	},
	"ts": utils.FormatISO8601,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Carrier Engagement Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
.metrics { display: flex; gap: 2rem; margin: 1.5rem 0; }
.metric { border: 1px solid #ddd; border-radius: 6px; padding: 1rem 1.5rem; }
.metric .value { font-size: 1.6rem; font-weight: bold; }
.metric .label { color: #666; font-size: 0.85rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.7rem; text-align: left; font-size: 0.9rem; }
th { background: #f5f5f5; }
</style>
</head>
<body>
<h1>Carrier Engagement Dashboard</h1>
<div class="metrics">
  <div class="metric"><div class="value">{{.Stats.TotalCalls}}</div><div class="label">Total calls</div></div>
  <div class="metric"><div class="value">{{.Stats.BookedCalls}}</div><div class="label">Booked</div></div>
  <div class="metric"><div class="value">{{.BookingRate}}%</div><div class="label">Booking rate</div></div>
  <div class="metric"><div class="value">{{.AvgRounds}}</div><div class="label">Avg negotiation rounds</div></div>
</div>
<table>
<tr><th>Run ID</th><th>MC</th><th>Load</th><th>Outcome</th><th>Sentiment</th><th>Agreed rate</th><th>Called at</th></tr>
{{range .Logs}}<tr>
<td>{{.HappyRobotRunID}}</td>
<td>{{.MCNumber}}</td>
<td>{{.SearchedLoadID}}</td>
<td>{{.CallOutcomeClassification}}</td>
<td>{{.CarrierSentimentClassification}}</td>
<td>{{money .AgreedRate}}</td>
<td>{{ts .CalledAt}}</td>
</tr>{{end}}
</table>
</body>
</html>
`))

// handleDashboard renders the HTML summary of recent call activity.
// Auth comes from the api_key query parameter so the page works in a browser.
func (s *Server) handleDashboard(c *gin.Context) {
	limit := s.cfg.Dashboard.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	stats, logs, err := s.service.DashboardData(c.Request.Context(), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	view := dashboardView{
		Stats:       stats,
		BookingRate: fmt.Sprintf("%.1f", stats.BookingRate()),
		AvgRounds:   fmt.Sprintf("%.1f", stats.AvgNegotiationRounds),
		Logs:        logs,
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(c.Writer, view); err != nil {
		s.logger.Error("Dashboard render failed", zap.Error(err))
	}
}
