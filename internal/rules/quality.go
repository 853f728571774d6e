package rules

import m "codeguard.dev/pkg/codeguard/internal/model"

var qualityDefinitions = []Definition{
	{
		ID:       "QLT001",
		Pattern:  `\bconsole\.(?:log|debug|trace)\s*\(`,
		Message:  "Debug logging statement left in code",
		Severity: m.SeverityLow,
		Category: "debug",
	},
	{
		ID:       "QLT002",
		Pattern:  `\bdebugger\b`,
		Message:  "debugger statement left in code",
		Severity: m.SeverityMedium,
		Category: "debug",
	},
	{
		ID:       "QLT003",
		Pattern:  `\b(?:TODO|FIXME|HACK|XXX)\b`,
		Message:  "Unresolved TODO/FIXME marker",
		Severity: m.SeverityLow,
		Category: "maintainability",
	},
	{
		ID:       "QLT004",
		Pattern:  `catch\s*(?:\(\s*\w*\s*\))?\s*\{\s*\}`,
		Message:  "Empty catch block swallows errors",
		Severity: m.SeverityMedium,
		Category: "error-handling",
	},
	{
		ID:       "QLT005",
		Pattern:  `(?m)^\s*except\s*:`,
		Message:  "Bare except clause catches every exception",
		Severity: m.SeverityMedium,
		Category: "error-handling",
	},
	{
		ID:       "QLT006",
		Pattern:  `(?m)\berr\s*!=\s*nil\s*\{\s*\}`,
		Message:  "Error checked but ignored",
		Severity: m.SeverityMedium,
		Category: "error-handling",
	},
	{
		ID:       "QLT007",
		Pattern:  `[^=!<>]==[^=]`,
		Message:  "Loose equality (==); prefer strict equality (===)",
		Severity: m.SeverityLow,
		Category: "style",
	},
	{
		ID:       "QLT008",
		Pattern:  `(?m)^\s*var\s+\w+\s*=`,
		Message:  "var declaration; prefer let or const",
		Severity: m.SeverityLow,
		Category: "style",
	},
	{
		ID:       "QLT009",
		Pattern:  `(?m)^.{121,}$`,
		Message:  "Line longer than 120 characters",
		Severity: m.SeverityLow,
		Category: "style",
	},
	{
		ID:       "QLT010",
		Pattern:  `:\s*any\b`,
		Message:  "Type annotated as any disables type checking",
		Severity: m.SeverityLow,
		Category: "typing",
	},
	{
		ID:       "QLT011",
		Pattern:  `\bfunction\s*\w*\s*\([^),]*(?:,[^),]*){4,}\)`,
		Message:  "Function takes more than four parameters",
		Severity: m.SeverityMedium,
		Category: "complexity",
	},
	{
		ID:       "QLT012",
		Pattern:  `(?m)^\s*//\s*(?:const|let|var|function|if|return)\b`,
		Message:  "Commented-out code",
		Severity: m.SeverityLow,
		Category: "maintainability",
	},
	{
		ID:       "QLT013",
		Pattern:  `\bfmt\.Print(?:ln|f)?\s*\(`,
		Message:  "Print statement used instead of structured logging",
		Severity: m.SeverityLow,
		Category: "debug",
	},
}
