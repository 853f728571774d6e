package rules

import m "codeguard.dev/pkg/codeguard/internal/model"

var securityDefinitions = []Definition{
	{
		ID:         "SEC001",
		Pattern:    `\beval\s*\(`,
		Message:    "Potential code injection risk: eval() executes arbitrary code",
		Severity:   m.SeverityHigh,
		Category:   "code-injection",
		ExternalID: "CWE-95",
	},
	{
		ID:         "SEC002",
		Pattern:    `\bnew\s+Function\s*\(`,
		Message:    "Potential code injection risk: the Function constructor compiles strings into code",
		Severity:   m.SeverityHigh,
		Category:   "code-injection",
		ExternalID: "CWE-95",
	},
	{
		ID:         "SEC003",
		Pattern:    `\bset(?:Timeout|Interval)\s*\(\s*["'\x60]`,
		Message:    "String argument to setTimeout/setInterval is evaluated as code",
		Severity:   m.SeverityMedium,
		Category:   "code-injection",
		ExternalID: "CWE-95",
	},
	{
		ID:         "SEC004",
		Pattern:    `\.innerHTML\s*=`,
		Message:    "Assignment to innerHTML may allow cross-site scripting",
		Severity:   m.SeverityMedium,
		Category:   "xss",
		ExternalID: "CWE-79",
	},
	{
		ID:         "SEC005",
		Pattern:    `\bdocument\.write(?:ln)?\s*\(`,
		Message:    "document.write() with dynamic content may allow cross-site scripting",
		Severity:   m.SeverityMedium,
		Category:   "xss",
		ExternalID: "CWE-79",
	},
	{
		ID:         "SEC006",
		Pattern:    `dangerouslySetInnerHTML`,
		Message:    "dangerouslySetInnerHTML bypasses output escaping",
		Severity:   m.SeverityMedium,
		Category:   "xss",
		ExternalID: "CWE-79",
	},
	{
		ID:         "SEC007",
		Pattern:    `(?i)["'\x60]\s*(?:SELECT|INSERT\s+INTO|UPDATE|DELETE\s+FROM)\b[^"'\x60]*["'\x60]\s*\+`,
		Message:    "SQL statement built by string concatenation (SQL injection risk)",
		Severity:   m.SeverityHigh,
		Category:   "sql-injection",
		ExternalID: "CWE-89",
	},
	{
		ID:         "SEC008",
		Pattern:    `(?i)\b(?:query|execute|exec|raw)\s*\(\s*(?:f["']|\x60[^\x60]*\$\{)`,
		Message:    "Interpolated SQL passed to a query function (SQL injection risk)",
		Severity:   m.SeverityHigh,
		Category:   "sql-injection",
		ExternalID: "CWE-89",
	},
	{
		ID:         "SEC009",
		Pattern:    `\bchild_process\.exec(?:Sync)?\s*\(|\bexecSync\s*\(`,
		Message:    "Shell command execution may allow command injection",
		Severity:   m.SeverityHigh,
		Category:   "command-injection",
		ExternalID: "CWE-78",
	},
	{
		ID:         "SEC010",
		Pattern:    `\bos\.system\s*\(|\bsubprocess\.\w+\([^)]*shell\s*=\s*True`,
		Message:    "Shell invocation may allow command injection",
		Severity:   m.SeverityHigh,
		Category:   "command-injection",
		ExternalID: "CWE-78",
	},
	{
		ID:         "SEC011",
		Pattern:    `\bpickle\.loads?\s*\(`,
		Message:    "Unpickling untrusted data allows arbitrary code execution",
		Severity:   m.SeverityHigh,
		Category:   "deserialization",
		ExternalID: "CWE-502",
	},
	{
		ID:         "SEC012",
		Pattern:    `\byaml\.load\s*\(`,
		Message:    "yaml.load without a safe loader can construct arbitrary objects",
		Severity:   m.SeverityMedium,
		Category:   "deserialization",
		ExternalID: "CWE-502",
	},
	{
		ID:         "SEC013",
		Pattern:    `\bunserialize\s*\(`,
		Message:    "unserialize() on untrusted data enables object injection",
		Severity:   m.SeverityHigh,
		Category:   "deserialization",
		ExternalID: "CWE-502",
	},
	{
		ID:         "SEC014",
		Pattern:    `(?i)\b(?:md5|sha1)\s*\(|createHash\s*\(\s*["'](?:md5|sha1)["']`,
		Message:    "Weak hash algorithm (MD5/SHA-1)",
		Severity:   m.SeverityMedium,
		Category:   "weak-crypto",
		ExternalID: "CWE-327",
	},
	{
		ID:         "SEC015",
		Pattern:    `\bMath\.random\s*\(`,
		Message:    "Math.random() is not cryptographically secure",
		Severity:   m.SeverityLow,
		Category:   "weak-crypto",
		ExternalID: "CWE-338",
	},
	{
		ID:         "SEC016",
		Pattern:    `InsecureSkipVerify\s*:\s*true|rejectUnauthorized\s*:\s*false|verify\s*=\s*False`,
		Message:    "TLS certificate verification disabled",
		Severity:   m.SeverityHigh,
		Category:   "tls",
		ExternalID: "CWE-295",
	},
	{
		ID:         "SEC017",
		Pattern:    `(?i)["']http://[a-z0-9.-]+`,
		Message:    "Plain HTTP URL; traffic is not encrypted",
		Severity:   m.SeverityLow,
		Category:   "insecure-transport",
		ExternalID: "CWE-319",
	},
	{
		ID:         "SEC018",
		Pattern:    `\b(?:readFile(?:Sync)?|createReadStream|sendFile|open)\s*\(\s*(?:req|request)\.`,
		Message:    "File path taken from request input (path traversal risk)",
		Severity:   m.SeverityHigh,
		Category:   "path-traversal",
		ExternalID: "CWE-22",
	},
	{
		ID:         "SEC019",
		Pattern:    `(?i)Access-Control-Allow-Origin["']?\s*[,:]\s*["']\*["']`,
		Message:    "CORS policy allows any origin",
		Severity:   m.SeverityMedium,
		Category:   "misconfiguration",
		ExternalID: "CWE-942",
	},
}
