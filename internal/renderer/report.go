// Package renderer turns integrity reports into markdown for the reporting
// surfaces downstream of this core.
package renderer

import (
	"strings"
	"text/template"

	"github.com/dukkan-app/ledger_core/internal/core/domain"
)

const reportTemplate = `# Data Integrity Report

Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}.
{{if .Healthy}}
No issues found. All collections pass every check.
{{- else}}
Total issues: {{.Total}} ({{.CriticalCount}} critical).
{{- range .Sections}}

## {{.Title}} ({{len .Issues}})
{{range .Issues}}
- **{{.Entity}}** ` + "`{{.RecordID}}`" + `{{with .Field}} [{{.}}]{{end}}: {{.Message}}{{with .Suggestion}}. Suggested fix: {{.}}{{end}}
{{- end}}
{{- end}}
{{- end}}
`

var reportTmpl = template.Must(template.New("integrity_report").Parse(reportTemplate))

var sectionTitles = map[domain.Severity]string{
	domain.SeverityCritical: "Critical",
	domain.SeverityHigh:     "High",
	domain.SeverityMedium:   "Medium",
	domain.SeverityLow:      "Low",
}

type section struct {
	Title  string
	Issues []domain.IntegrityIssue
}

type reportView struct {
	domain.IntegrityReport
	CriticalCount int
	Sections      []section
}

// RenderIntegrityReport renders the report to markdown: one section per
// severity (most severe first), one bullet per issue.
func RenderIntegrityReport(r domain.IntegrityReport) string {
	view := reportView{
		IntegrityReport: r,
		CriticalCount:   r.Count(domain.SeverityCritical),
	}
	grouped := r.BySeverity()
	for _, sev := range domain.Severities {
		if issues := grouped[sev]; len(issues) > 0 {
			view.Sections = append(view.Sections, section{Title: sectionTitles[sev], Issues: issues})
		}
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, view); err != nil {
		// the template is static and the data is plain values; this cannot
		// fail at runtime, but a diagnostic beats an empty report
		return "# Data Integrity Report\n\nrender error: " + err.Error() + "\n"
	}
	return b.String()
}
