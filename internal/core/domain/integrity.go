package domain

import "time"

// Severity classifies how dangerous an integrity finding is.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Severities lists all severities from most to least severe, in report order.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// IntegrityIssue is a single finding of the integrity monitor. It is a pure
// diagnostic value and is never persisted.
type IntegrityIssue struct {
	Severity   Severity `json:"severity"`
	Entity     string   `json:"entity"`
	RecordID   string   `json:"recordID"`
	Field      string   `json:"field,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// IntegrityReport is the result of one integrity check run.
type IntegrityReport struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Issues      []IntegrityIssue `json:"issues"`
}

// BySeverity groups the report's issues keyed by severity.
func (r IntegrityReport) BySeverity() map[Severity][]IntegrityIssue {
	grouped := make(map[Severity][]IntegrityIssue)
	for _, issue := range r.Issues {
		grouped[issue.Severity] = append(grouped[issue.Severity], issue)
	}
	return grouped
}

// Count returns the number of issues with the given severity.
func (r IntegrityReport) Count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Total returns the total number of issues in the report.
func (r IntegrityReport) Total() int { return len(r.Issues) }

// Healthy reports whether the check found nothing at all.
func (r IntegrityReport) Healthy() bool { return len(r.Issues) == 0 }
