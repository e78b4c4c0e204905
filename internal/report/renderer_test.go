package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitydesk/callinsight/internal/analyst"
	"github.com/equitydesk/callinsight/internal/pipeline"
	"github.com/equitydesk/callinsight/internal/report"
)

func sampleReport() pipeline.Report {
	return pipeline.Report{
		RunID: "run-1",
		Analysis: analyst.Result{
			ManagementTone:      "positive",
			ConfidenceLevel:     "high",
			KeyPositives:        []string{"strong revenue", "new contracts"},
			KeyConcerns:         []string{"margin pressure"},
			ForwardGuidance:     "optimistic",
			CapacityUtilization: analyst.Sentinel,
			GrowthInitiatives:   []string{"capacity expansion"},
		},
		Method: "pdf-text",
		Pages:  4,
	}
}

func TestReportHTMLShowsAllSevenFields(t *testing.T) {
	r := report.NewRenderer()
	body, err := r.ReportHTML(sampleReport())
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "positive")
	assert.Contains(t, html, "high")
	assert.Contains(t, html, "<li>strong revenue</li>")
	assert.Contains(t, html, "<li>new contracts</li>")
	assert.Contains(t, html, "<li>margin pressure</li>")
	assert.Contains(t, html, "optimistic")
	assert.Contains(t, html, analyst.Sentinel)
	assert.Contains(t, html, "<li>capacity expansion</li>")

	// fixed section order
	for _, h := range []string{"Key Positives", "Key Concerns", "Forward Guidance", "Capacity Utilization", "Growth Initiatives"} {
		assert.Contains(t, html, h)
	}
	assert.Less(t, strings.Index(html, "Key Positives"), strings.Index(html, "Key Concerns"))
	assert.Less(t, strings.Index(html, "Forward Guidance"), strings.Index(html, "Capacity Utilization"))

	// extraction metadata footer
	assert.Contains(t, html, "pdf-text")
}

func TestRenderPageErrorShowsOnlyMessage(t *testing.T) {
	r := report.NewRenderer()

	var b strings.Builder
	err := r.RenderPage(&b, report.PageData{Error: "Model did not return structured JSON"})
	require.NoError(t, err)

	page := b.String()
	assert.Contains(t, page, "Model did not return structured JSON")
	assert.NotContains(t, page, "Key Positives")
}

func TestRenderPageWithReportBody(t *testing.T) {
	r := report.NewRenderer()
	body, err := r.ReportHTML(sampleReport())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, r.RenderPage(&b, report.PageData{Body: body}))

	page := b.String()
	assert.Contains(t, page, "<li>strong revenue</li>")
	assert.Contains(t, page, "Upload an earnings call transcript")
}
