package rules

import m "codeguard.dev/pkg/codeguard/internal/model"

const (
	ctxMySQL      = "mysql"
	ctxPostgreSQL = "postgresql"
	ctxMongoDB    = "mongodb"
	ctxSQLite     = "sqlite"
	ctxMSSQL      = "mssql"
)

var databaseDefinitions = []Definition{
	{
		ID:         "DB001",
		Pattern:    `(?i)\b(?:SELECT|UPDATE|DELETE|INSERT)\b[^;\n]*["'\x60]\s*\+\s*\w+`,
		Message:    "Query built by string concatenation",
		Severity:   m.SeverityHigh,
		Category:   "injection",
		ExternalID: "CWE-89",
	},
	{
		ID:       "DB002",
		Pattern:  `(?i)\bSELECT\s+\*\s+FROM\b`,
		Message:  "SELECT * fetches every column",
		Severity: m.SeverityLow,
		Category: "performance",
	},
	{
		ID:       "DB003",
		Pattern:  `(?mi)\b(?:UPDATE\s+\w+\s+SET\s+(?:\w+\s*=\s*(?:'[^']*'|[\w.?$:]+)\s*,?\s*)+|DELETE\s+FROM\s+\w+\s*)(?:;|$)`,
		Message:  "UPDATE or DELETE without a WHERE clause",
		Severity: m.SeverityHigh,
		Category: "data-integrity",
	},
	{
		ID:         "DB004",
		Pattern:    `(?i)\bGRANT\s+ALL\b`,
		Message:    "GRANT ALL gives excessive privileges",
		Severity:   m.SeverityHigh,
		Category:   "access-control",
		ExternalID: "CWE-250",
	},
	{
		ID:       "DB005",
		Pattern:  `(?i)\bLIKE\s+['"]%`,
		Message:  "Leading wildcard in LIKE prevents index use",
		Severity: m.SeverityLow,
		Category: "performance",
	},
	{
		ID:         "DB006",
		Pattern:    `(?i)\b(?:password|passwd)\s+(?:VARCHAR|TEXT|CHAR|NVARCHAR)\b`,
		Message:    "Password column stored as plain text",
		Severity:   m.SeverityHigh,
		Category:   "encryption",
		ExternalID: "CWE-256",
	},
	{
		ID:       "DB007",
		Pattern:  `(?i)\bLOAD\s+DATA\s+LOCAL\s+INFILE\b`,
		Message:  "LOAD DATA LOCAL INFILE can read files from the client",
		Severity: m.SeverityHigh,
		Category: "access-control",
		Contexts: []string{ctxMySQL},
	},
	{
		ID:       "DB008",
		Pattern:  `(?i)\bIDENTIFIED\s+BY\s+['"][^'"]*['"]`,
		Message:  "Account password written in plain SQL",
		Severity: m.SeverityHigh,
		Category: "access-control",
		Contexts: []string{ctxMySQL},
	},
	{
		ID:         "DB009",
		Pattern:    `\bmysqli?_query\s*\([^)]*\.\s*\$`,
		Message:    "mysql_query with concatenated input",
		Severity:   m.SeverityHigh,
		Category:   "injection",
		ExternalID: "CWE-89",
		Contexts:   []string{ctxMySQL},
	},
	{
		ID:         "DB010",
		Pattern:    `(?i)\buseSSL\s*=\s*false|\bsslmode\s*=\s*disable|\bssl\s*[:=]\s*false`,
		Message:    "Database connection without TLS",
		Severity:   m.SeverityHigh,
		Category:   "encryption",
		ExternalID: "CWE-319",
		Contexts:   []string{ctxMySQL, ctxPostgreSQL, ctxMSSQL},
	},
	{
		ID:       "DB011",
		Pattern:  `(?i)\bSECURITY\s+DEFINER\b`,
		Message:  "SECURITY DEFINER function runs with owner privileges",
		Severity: m.SeverityMedium,
		Category: "access-control",
		Contexts: []string{ctxPostgreSQL},
	},
	{
		ID:         "DB012",
		Pattern:    `(?i)\bEXECUTE\s+(?:format\s*\()?['"][^'"]*['"]\s*\|\|`,
		Message:    "Dynamic SQL concatenated inside EXECUTE",
		Severity:   m.SeverityHigh,
		Category:   "injection",
		ExternalID: "CWE-89",
		Contexts:   []string{ctxPostgreSQL},
	},
	{
		ID:       "DB013",
		Pattern:  `(?i)\bALTER\s+ROLE\s+\w+\s+(?:WITH\s+)?SUPERUSER\b`,
		Message:  "Role granted SUPERUSER",
		Severity: m.SeverityCritical,
		Category: "access-control",
		Contexts: []string{ctxPostgreSQL},
	},
	{
		ID:         "DB014",
		Pattern:    `\$where\b`,
		Message:    "$where executes JavaScript on the server",
		Severity:   m.SeverityHigh,
		Category:   "injection",
		ExternalID: "CWE-943",
		Contexts:   []string{ctxMongoDB},
	},
	{
		ID:         "DB015",
		Pattern:    `\.(?:find|findOne|updateOne|deleteMany)\(\s*(?:req|request)\.(?:body|query|params)`,
		Message:    "Query document taken directly from request input",
		Severity:   m.SeverityHigh,
		Category:   "injection",
		ExternalID: "CWE-943",
		Contexts:   []string{ctxMongoDB},
	},
	{
		ID:       "DB016",
		Pattern:  `(?i)\bauthorization\s*:\s*["']?disabled\b`,
		Message:  "MongoDB authorization disabled",
		Severity: m.SeverityCritical,
		Category: "access-control",
		Contexts: []string{ctxMongoDB},
	},
	{
		ID:       "DB017",
		Pattern:  `(?i)\bATTACH\s+DATABASE\b`,
		Message:  "ATTACH DATABASE opens arbitrary database files",
		Severity: m.SeverityMedium,
		Category: "access-control",
		Contexts: []string{ctxSQLite},
	},
	{
		ID:       "DB018",
		Pattern:  `(?i)\bPRAGMA\s+foreign_keys\s*=\s*(?:OFF|0)\b`,
		Message:  "Foreign key enforcement disabled",
		Severity: m.SeverityMedium,
		Category: "data-integrity",
		Contexts: []string{ctxSQLite},
	},
	{
		ID:         "DB019",
		Pattern:    `(?i)\bxp_cmdshell\b`,
		Message:    "xp_cmdshell enables operating system command execution",
		Severity:   m.SeverityCritical,
		Category:   "access-control",
		ExternalID: "CWE-78",
		Contexts:   []string{ctxMSSQL},
	},
	{
		ID:         "DB020",
		Pattern:    `(?i)\bsp_executesql\b[^;\n]*\+`,
		Message:    "sp_executesql with concatenated SQL",
		Severity:   m.SeverityHigh,
		Category:   "injection",
		ExternalID: "CWE-89",
		Contexts:   []string{ctxMSSQL},
	},
}
