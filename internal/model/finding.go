package model

// Domain names an analysis domain. Each domain has its own rule catalog and
// scanner.
type Domain string

// Available analysis domains.
const (
	DomainSecurity  Domain = "security"
	DomainSecrets   Domain = "secrets"
	DomainQuality   Domain = "quality"
	DomainDevOps    Domain = "devops"
	DomainDatabase  Domain = "database"
	DomainFullStack Domain = "fullstack"
)

// AllDomains lists every domain in a stable order.
var AllDomains = []Domain{
	DomainSecurity,
	DomainSecrets,
	DomainQuality,
	DomainDevOps,
	DomainDatabase,
	DomainFullStack,
}

// Finding is one reported issue produced by a single rule. A rule that
// matches several times still yields one Finding; Count holds the number of
// matches and Line/Column point at the first one (both 1-based).
type Finding struct {
	Domain      Domain   `json:"domain" yaml:"domain"`
	Type        string   `json:"type" yaml:"type"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Description string   `json:"description" yaml:"description"`
	SourceLabel string   `json:"sourceLabel,omitempty" yaml:"source_label,omitempty"`
	ExternalID  string   `json:"externalId,omitempty" yaml:"external_id,omitempty"`
	Line        int      `json:"line,omitempty" yaml:"line,omitempty"`
	Column      int      `json:"column,omitempty" yaml:"column,omitempty"`
	Count       int      `json:"count" yaml:"count"`

	// Evidence is a display-safe excerpt of the match. Secret findings only
	// ever carry a masked value here.
	Evidence string `json:"evidence,omitempty" yaml:"evidence,omitempty"`

	// Confidence is the upper-case tier reported for secret findings.
	Confidence string `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// Severities returns the severity of every finding, in order.
func Severities(findings []Finding) []Severity {
	out := make([]Severity, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Severity)
	}

	return out
}
