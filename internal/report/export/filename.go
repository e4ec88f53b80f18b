package export

import (
	"fmt"
	"time"

	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
)

// Format identifies an export artifact format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format tag from the request.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown export format %q", raw)
	}
}

// ContentType returns the MIME type of the artifact.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Filename builds the artifact name:
// {reportType}-{presetOrDateRange}-{generationDate}.{ext}.
func Filename(t reportdomain.Type, format Format, f daterange.Filter, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.%s", t, rangeLabel(f), now.Format("2006-01-02"), format)
}

// rangeLabel names the filter: the preset for named presets, the
// explicit bounds for custom ranges. A custom filter missing a bound
// resolves to the default window, so it is labeled plain custom.
func rangeLabel(f daterange.Filter) string {
	if f.Preset != daterange.PresetCustom && f.Preset != "" {
		return string(f.Preset)
	}
	if f.From != nil && f.To != nil {
		return f.From.Format("2006-01-02") + "_" + f.To.Format("2006-01-02")
	}
	return string(daterange.PresetCustom)
}
