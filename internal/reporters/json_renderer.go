package reporters

import (
	"io"

	"weblog-analytics/internal/models"

	"github.com/goccy/go-json"
)

type jsonRenderer struct{}

// NewJSONRenderer renders the full report as indented JSON, using the same
// field names the HTTP surface serves.
func NewJSONRenderer() ReportRenderer {
	return &jsonRenderer{}
}

func (r *jsonRenderer) Render(w io.Writer, report *models.SessionReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
