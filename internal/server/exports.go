package server

import (
	"fmt"
	"net/http"

	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/estatehub/backoffice/internal/report/export"
	"github.com/gin-gonic/gin"
)

func (s *Server) ExportReport(c *gin.Context) {
	reportType, err := reportdomain.ParseType(c.Param("type"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatCSV)))
	if err != nil {
		AbortWithError(c, fmt.Errorf("%w: %s", ErrInvalidRequest, err))
		return
	}

	filter := filterFromQuery(c)
	rep, err := s.reportSvc.BuildForExport(c.Request.Context(), reportType, filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	now := s.clock.Now()
	var artifact []byte
	switch format {
	case export.FormatPDF:
		artifact, err = export.PDF(rep, s.cfg.ProductLabel, now)
	default:
		artifact, err = export.CSV(rep, now)
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.Exports.WithLabelValues(string(reportType), string(format)).Inc()

	filename := export.Filename(reportType, format, filter, now)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), artifact)
}
