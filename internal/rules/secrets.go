package rules

import m "codeguard.dev/pkg/codeguard/internal/model"

// Secret rules use their severity as the confidence tier. When a pattern has
// a capture group, the first group is the secret value to mask.
var secretDefinitions = []Definition{
	{
		ID:       "SCR001",
		Pattern:  `AKIA[0-9A-Z]{16}`,
		Message:  "AWS access key ID",
		Severity: m.SeverityCritical,
		Category: "aws",
	},
	{
		ID:       "SCR002",
		Pattern:  `(?i)aws_?secret_?access_?key["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})`,
		Message:  "AWS secret access key",
		Severity: m.SeverityCritical,
		Category: "aws",
	},
	{
		ID:       "SCR003",
		Pattern:  `\bgh[pousr]_[A-Za-z0-9]{36}\b`,
		Message:  "GitHub token",
		Severity: m.SeverityCritical,
		Category: "github",
	},
	{
		ID:       "SCR004",
		Pattern:  `\bxox[baprs]-[0-9A-Za-z-]{10,}`,
		Message:  "Slack token",
		Severity: m.SeverityHigh,
		Category: "slack",
	},
	{
		ID:       "SCR005",
		Pattern:  `-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`,
		Message:  "Private key block",
		Severity: m.SeverityCritical,
		Category: "private-key",
	},
	{
		ID:       "SCR006",
		Pattern:  `\bAIza[0-9A-Za-z_-]{35}\b`,
		Message:  "Google API key",
		Severity: m.SeverityHigh,
		Category: "google",
	},
	{
		ID:       "SCR007",
		Pattern:  `\b(?:sk|rk)_live_[0-9A-Za-z]{24,}\b`,
		Message:  "Stripe live secret key",
		Severity: m.SeverityCritical,
		Category: "stripe",
	},
	{
		ID:       "SCR008",
		Pattern:  `\beyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`,
		Message:  "JSON Web Token",
		Severity: m.SeverityMedium,
		Category: "jwt",
	},
	{
		ID:       "SCR009",
		Pattern:  `(?i)\b(?:password|passwd|pwd)["']?\s*[:=]\s*["']([^"'\s]{4,})["']`,
		Message:  "Hard-coded password",
		Severity: m.SeverityMedium,
		Category: "password",
	},
	{
		ID:       "SCR010",
		Pattern:  `(?i)\b(?:api[_-]?key|secret[_-]?key|access[_-]?token|auth[_-]?token|client[_-]?secret)["']?\s*[:=]\s*["']([A-Za-z0-9_\-]{16,})["']`,
		Message:  "Hard-coded API key or token",
		Severity: m.SeverityHigh,
		Category: "generic",
	},
	{
		ID:       "SCR011",
		Pattern:  `(?i)\b(?:mongodb(?:\+srv)?|postgres(?:ql)?|mysql|redis|amqp)://[^:\s/@]+:([^@\s]+)@`,
		Message:  "Connection string with embedded credentials",
		Severity: m.SeverityHigh,
		Category: "connection-string",
	},
	{
		ID:       "SCR012",
		Pattern:  `\bSG\.[A-Za-z0-9_-]{22}\.[A-Za-z0-9_-]{43}\b`,
		Message:  "SendGrid API key",
		Severity: m.SeverityHigh,
		Category: "sendgrid",
	},
	{
		ID:       "SCR013",
		Pattern:  `\bnpm_[A-Za-z0-9]{36}\b`,
		Message:  "npm access token",
		Severity: m.SeverityHigh,
		Category: "npm",
	},
	{
		ID:       "SCR014",
		Pattern:  `https://hooks\.slack\.com/services/T[A-Za-z0-9_]+/B[A-Za-z0-9_]+/[A-Za-z0-9_]+`,
		Message:  "Slack incoming webhook URL",
		Severity: m.SeverityMedium,
		Category: "slack",
	},
}
