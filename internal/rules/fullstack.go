package rules

import m "codeguard.dev/pkg/codeguard/internal/model"

const (
	ctxReact   = "react"
	ctxVue     = "vue"
	ctxAngular = "angular"
	ctxExpress = "express"
	ctxDjango  = "django"
	ctxFlask   = "flask"
)

// Full-stack categories split findings by tier: frontend, backend and api.
var fullstackDefinitions = []Definition{
	{
		ID:         "FS001",
		Pattern:    `dangerouslySetInnerHTML`,
		Message:    "dangerouslySetInnerHTML renders unescaped markup",
		Severity:   m.SeverityHigh,
		Category:   "frontend",
		ExternalID: "CWE-79",
		Contexts:   []string{ctxReact},
	},
	{
		ID:       "FS002",
		Pattern:  `\buseEffect\s*\(\s*async\b`,
		Message:  "useEffect callback must not be async",
		Severity: m.SeverityMedium,
		Category: "frontend",
		Contexts: []string{ctxReact},
	},
	{
		ID:         "FS003",
		Pattern:    `(?i)localStorage\.setItem\s*\(\s*["'][^"']*(?:token|jwt|auth)`,
		Message:    "Authentication token stored in localStorage",
		Severity:   m.SeverityHigh,
		Category:   "frontend",
		ExternalID: "CWE-922",
		Contexts:   []string{ctxReact, ctxVue, ctxAngular},
	},
	{
		ID:         "FS004",
		Pattern:    `\bv-html\s*=`,
		Message:    "v-html renders raw HTML",
		Severity:   m.SeverityHigh,
		Category:   "frontend",
		ExternalID: "CWE-79",
		Contexts:   []string{ctxVue},
	},
	{
		ID:         "FS005",
		Pattern:    `\bbypassSecurityTrust\w*\s*\(`,
		Message:    "DomSanitizer bypass disables Angular's sanitization",
		Severity:   m.SeverityHigh,
		Category:   "frontend",
		ExternalID: "CWE-79",
		Contexts:   []string{ctxAngular},
	},
	{
		ID:       "FS006",
		Pattern:  `\[innerHTML\]\s*=`,
		Message:  "[innerHTML] binding renders HTML from component state",
		Severity: m.SeverityMedium,
		Category: "frontend",
		Contexts: []string{ctxAngular},
	},
	{
		ID:         "FS007",
		Pattern:    `\bapp\.use\(\s*cors\(\s*\)\s*\)`,
		Message:    "CORS enabled for every origin",
		Severity:   m.SeverityMedium,
		Category:   "api",
		ExternalID: "CWE-942",
		Contexts:   []string{ctxExpress},
	},
	{
		ID:         "FS008",
		Pattern:    `\bres\.send\(\s*req\.(?:query|body|params)`,
		Message:    "Request input reflected in the response",
		Severity:   m.SeverityHigh,
		Category:   "backend",
		ExternalID: "CWE-79",
		Contexts:   []string{ctxExpress},
	},
	{
		ID:         "FS009",
		Pattern:    `\bsession\(\s*\{[^}]*secret\s*:\s*["'][^"']+["']`,
		Message:    "Session secret hard-coded",
		Severity:   m.SeverityHigh,
		Category:   "backend",
		ExternalID: "CWE-798",
		Contexts:   []string{ctxExpress},
	},
	{
		ID:         "FS010",
		Pattern:    `(?m)^\s*DEBUG\s*=\s*True\b`,
		Message:    "DEBUG enabled in settings",
		Severity:   m.SeverityHigh,
		Category:   "backend",
		ExternalID: "CWE-489",
		Contexts:   []string{ctxDjango, ctxFlask},
	},
	{
		ID:       "FS011",
		Pattern:  `ALLOWED_HOSTS\s*=\s*\[\s*["']\*["']`,
		Message:  "ALLOWED_HOSTS accepts any host",
		Severity: m.SeverityMedium,
		Category: "backend",
		Contexts: []string{ctxDjango},
	},
	{
		ID:         "FS012",
		Pattern:    `@csrf_exempt\b`,
		Message:    "CSRF protection disabled for a view",
		Severity:   m.SeverityHigh,
		Category:   "api",
		ExternalID: "CWE-352",
		Contexts:   []string{ctxDjango},
	},
	{
		ID:         "FS013",
		Pattern:    `\.raw\s*\(\s*f?["'][^"']*(?:%s|\{)`,
		Message:    "Raw SQL built with string interpolation",
		Severity:   m.SeverityHigh,
		Category:   "backend",
		ExternalID: "CWE-89",
		Contexts:   []string{ctxDjango},
	},
	{
		ID:         "FS014",
		Pattern:    `\bapp\.run\([^)]*debug\s*=\s*True`,
		Message:    "Flask debug server enabled",
		Severity:   m.SeverityHigh,
		Category:   "backend",
		ExternalID: "CWE-489",
		Contexts:   []string{ctxFlask},
	},
	{
		ID:         "FS015",
		Pattern:    `\brender_template_string\s*\(`,
		Message:    "render_template_string may allow server-side template injection",
		Severity:   m.SeverityHigh,
		Category:   "backend",
		ExternalID: "CWE-1336",
		Contexts:   []string{ctxFlask},
	},
	{
		ID:         "FS016",
		Pattern:    `\b(?:fetch|axios\.\w+)\s*\(\s*["'\x60]http://`,
		Message:    "API call over plain HTTP",
		Severity:   m.SeverityMedium,
		Category:   "api",
		ExternalID: "CWE-319",
	},
	{
		ID:         "FS017",
		Pattern:    `(?i)["']?Authorization["']?\s*:\s*["'\x60]Bearer\s+[A-Za-z0-9._-]{10,}`,
		Message:    "Hard-coded bearer token in an API client",
		Severity:   m.SeverityHigh,
		Category:   "api",
		ExternalID: "CWE-798",
	},
}
