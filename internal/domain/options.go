package domain

import (
	"time"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// Workspace scan defaults.
const (
	DefaultFolderConcurrency = 3
	DefaultBatchSize         = 10
	DefaultMaxFileSize       = 1 << 20
	DefaultYield             = 10 * time.Millisecond
)

// DefaultIncludePatterns are the source files scanned when none are
// configured.
var DefaultIncludePatterns = []string{
	"**/*.{js,jsx,ts,tsx,mjs,cjs}",
	"**/*.{py,rb,php,java,kt,go,rs,cs,c,cpp,h,swift,scala}",
	"**/*.{vue,svelte,html}",
	"**/*.{sql,prisma}",
	"**/*.{yml,yaml,json,toml,ini,env,tf,hcl}",
	"**/Dockerfile",
	"**/.env*",
}

// DefaultExcludePatterns are always excluded, in addition to configured
// patterns.
var DefaultExcludePatterns = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/vendor/**",
	"**/dist/**",
	"**/build/**",
	"**/out/**",
	"**/coverage/**",
	"**/.next/**",
	"**/__pycache__/**",
	"**/.venv/**",
	"**/*.min.js",
	"**/*.map",
	"**/*.lock",
	"**/package-lock.json",
}

// MergeExcludePatterns returns the defaults followed by extra, without
// duplicates.
func MergeExcludePatterns(extra []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(DefaultExcludePatterns)+len(extra))

	for _, list := range [][]string{DefaultExcludePatterns, extra} {
		for _, p := range list {
			if p == "" {
				continue
			}

			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}

// normalizeOptions fills zero values with defaults. Negative Yield disables
// the pause.
func normalizeOptions(opts m.WorkspaceScanOptions) m.WorkspaceScanOptions {
	if len(opts.IncludePatterns) == 0 {
		opts.IncludePatterns = append([]string(nil), DefaultIncludePatterns...)
	}

	opts.ExcludePatterns = MergeExcludePatterns(opts.ExcludePatterns)

	if opts.MaxFileSizeBytes <= 0 {
		opts.MaxFileSizeBytes = DefaultMaxFileSize
	}

	if opts.FolderConcurrency <= 0 {
		opts.FolderConcurrency = DefaultFolderConcurrency
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	if opts.Yield == 0 {
		opts.Yield = DefaultYield
	}

	return opts
}
