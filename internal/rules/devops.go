package rules

import m "codeguard.dev/pkg/codeguard/internal/model"

const (
	ctxDocker        = "docker"
	ctxKubernetes    = "kubernetes"
	ctxTerraform     = "terraform"
	ctxGitHubActions = "github-actions"
)

var devopsDefinitions = []Definition{
	{
		ID:       "DEV001",
		Pattern:  `(?mi)^\s*FROM\s+[^\s:@]+(?::latest)?(?:\s+AS\s+\S+)?\s*$`,
		Message:  "Base image is not pinned to a version",
		Severity: m.SeverityMedium,
		Category: "image",
		Contexts: []string{ctxDocker},
	},
	{
		ID:       "DEV002",
		Pattern:  `(?mi)^\s*USER\s+root\b`,
		Message:  "Container runs as root",
		Severity: m.SeverityHigh,
		Category: "privileges",
		Contexts: []string{ctxDocker},
	},
	{
		ID:       "DEV003",
		Pattern:  `(?mi)^\s*ADD\s+https?://`,
		Message:  "ADD with a remote URL skips checksum verification",
		Severity: m.SeverityMedium,
		Category: "supply-chain",
		Contexts: []string{ctxDocker},
	},
	{
		ID:       "DEV004",
		Pattern:  `(?mi)^\s*RUN\s+.*(?:curl|wget)[^|\n]*\|\s*(?:ba|z)?sh\b`,
		Message:  "Downloaded script piped into a shell",
		Severity: m.SeverityHigh,
		Category: "supply-chain",
		Contexts: []string{ctxDocker},
	},
	{
		ID:       "DEV005",
		Pattern:  `(?mi)^\s*(?:ENV|ARG)\s+\w*(?:PASSWORD|SECRET|TOKEN|API_KEY)\w*[= ]`,
		Message:  "Secret baked into the image environment",
		Severity: m.SeverityHigh,
		Category: "secrets",
		Contexts: []string{ctxDocker},
	},
	{
		ID:       "DEV006",
		Pattern:  `privileged:\s*true`,
		Message:  "Privileged container",
		Severity: m.SeverityCritical,
		Category: "privileges",
		Contexts: []string{ctxKubernetes, ctxDocker},
	},
	{
		ID:       "DEV007",
		Pattern:  `host(?:Network|PID|IPC):\s*true`,
		Message:  "Pod shares host namespaces",
		Severity: m.SeverityHigh,
		Category: "isolation",
		Contexts: []string{ctxKubernetes},
	},
	{
		ID:       "DEV008",
		Pattern:  `allowPrivilegeEscalation:\s*true`,
		Message:  "Privilege escalation allowed",
		Severity: m.SeverityHigh,
		Category: "privileges",
		Contexts: []string{ctxKubernetes},
	},
	{
		ID:       "DEV009",
		Pattern:  `runAsUser:\s*0\b`,
		Message:  "Container runs as UID 0",
		Severity: m.SeverityHigh,
		Category: "privileges",
		Contexts: []string{ctxKubernetes},
	},
	{
		ID:       "DEV010",
		Pattern:  `image:\s*["']?\S+:latest\b`,
		Message:  "Image uses the mutable latest tag",
		Severity: m.SeverityMedium,
		Category: "image",
		Contexts: []string{ctxKubernetes, ctxDocker},
	},
	{
		ID:       "DEV011",
		Pattern:  `cidr_blocks\s*=\s*\[\s*"0\.0\.0\.0/0"`,
		Message:  "Security group rule open to the internet",
		Severity: m.SeverityHigh,
		Category: "network",
		Contexts: []string{ctxTerraform},
	},
	{
		ID:       "DEV012",
		Pattern:  `(?i)\bacl\s*=\s*"public-read(?:-write)?"`,
		Message:  "Bucket ACL grants public access",
		Severity: m.SeverityCritical,
		Category: "storage",
		Contexts: []string{ctxTerraform},
	},
	{
		ID:       "DEV013",
		Pattern:  `\b(?:encrypted|storage_encrypted)\s*=\s*false`,
		Message:  "Storage encryption disabled",
		Severity: m.SeverityHigh,
		Category: "encryption",
		Contexts: []string{ctxTerraform},
	},
	{
		ID:       "DEV014",
		Pattern:  `\bpublicly_accessible\s*=\s*true`,
		Message:  "Database instance is publicly accessible",
		Severity: m.SeverityCritical,
		Category: "network",
		Contexts: []string{ctxTerraform},
	},
	{
		ID:       "DEV015",
		Pattern:  `\bpull_request_target\b`,
		Message:  "pull_request_target runs untrusted code with repository secrets",
		Severity: m.SeverityHigh,
		Category: "ci",
		Contexts: []string{ctxGitHubActions},
	},
	{
		ID:       "DEV016",
		Pattern:  `\$\{\{\s*github\.event\.[^}]*(?:title|body|head_ref|message)[^}]*\}\}`,
		Message:  "Untrusted event data interpolated into a workflow script",
		Severity: m.SeverityHigh,
		Category: "ci",
		Contexts: []string{ctxGitHubActions},
	},
	{
		ID:       "DEV017",
		Pattern:  `uses:\s*[\w.-]+/[\w./-]+@(?:main|master)\b`,
		Message:  "Action pinned to a branch instead of a commit SHA",
		Severity: m.SeverityMedium,
		Category: "supply-chain",
		Contexts: []string{ctxGitHubActions},
	},
	{
		ID:       "DEV018",
		Pattern:  `(?mi)^\s*[\w.-]*(?:password|secret)[\w.-]*\s*[:=]\s*["']?[^\s"'$]{4,}`,
		Message:  "Plaintext credential in configuration",
		Severity: m.SeverityHigh,
		Category: "secrets",
	},
}
