package server

import (
	"net/http"
	"time"

	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// filterFromQuery assembles the date filter from query parameters.
// Unparseable dates are dropped rather than rejected; the resolver
// degrades incomplete filters to its default window.
func filterFromQuery(c *gin.Context) daterange.Filter {
	f := daterange.Filter{
		Preset: daterange.Preset(c.Query("preset")),
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = &to
	}
	return f
}

func (s *Server) GetReport(c *gin.Context) {
	reportType, err := reportdomain.ParseType(c.Param("type"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	timer := prometheus.NewTimer(s.metrics.BuildSeconds.WithLabelValues(string(reportType)))
	rep, err := s.reportSvc.Build(c.Request.Context(), reportType, filterFromQuery(c))
	timer.ObserveDuration()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.ReportBuilds.WithLabelValues(string(reportType)).Inc()
	c.JSON(http.StatusOK, rep)
}
