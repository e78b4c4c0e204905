// Package report renders an analysis record as an HTML page or an XLSX
// workbook. The report body is composed as markdown and converted with
// goldmark; the surrounding page shell is a plain template.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/equitydesk/callinsight/internal/pipeline"
)

// PageData drives the single page template: the upload form is always shown;
// Body or Error is filled in after a run.
type PageData struct {
	Body  template.HTML
	Error string
}

type Renderer struct {
	md   goldmark.Markdown
	page *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		md:   goldmark.New(),
		page: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// ReportHTML renders the report body for a completed run.
func (r *Renderer) ReportHTML(rep pipeline.Report) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(reportMarkdown(rep)), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPage writes the full page. A non-empty data.Error renders only the
// error message in place of the report.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	return r.page.Execute(w, data)
}

// reportMarkdown lays the record out in fixed order: paired highlight
// metrics, the three bulleted lists, and the two text blocks.
func reportMarkdown(rep pipeline.Report) string {
	a := rep.Analysis

	var b strings.Builder
	b.WriteString("## Analysis Complete\n\n")
	fmt.Fprintf(&b, "**Management Tone:** %s\n\n", a.ManagementTone)
	fmt.Fprintf(&b, "**Confidence Level:** %s\n\n", a.ConfidenceLevel)

	writeList := func(heading string, items []string) {
		b.WriteString("### " + heading + "\n\n")
		for _, item := range items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}

	writeList("Key Positives", a.KeyPositives)
	writeList("Key Concerns", a.KeyConcerns)

	b.WriteString("### Forward Guidance\n\n")
	b.WriteString(a.ForwardGuidance + "\n\n")

	b.WriteString("### Capacity Utilization\n\n")
	b.WriteString(a.CapacityUtilization + "\n\n")

	writeList("Growth Initiatives", a.GrowthInitiatives)

	if rep.Method != "" {
		fmt.Fprintf(&b, "---\n\nExtraction: %s, %d page(s).\n", rep.Method, rep.Pages)
	}
	return b.String()
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Research Portal – Earnings Call Tool</title>
</head>
<body>
<h1>Research Portal – Earnings Call Tool</h1>
<p>Upload an earnings call transcript (PDF) and receive structured analyst-grade insights.</p>
<form action="/analyze" method="post" enctype="multipart/form-data">
  <input type="file" name="transcript" accept="application/pdf" required>
  <button type="submit">Run Earnings Call Analysis</button>
</form>
{{if .Error}}
<p class="error">{{.Error}}</p>
{{end}}
{{if .Body}}
<div class="report">
{{.Body}}
</div>
{{end}}
</body>
</html>
`
