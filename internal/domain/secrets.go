package domain

import (
	"strings"
	"unicode/utf8"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

const maskVisible = 4

// NewSecretScanner returns the credential scanner. Its findings carry a
// confidence tier and a masked copy of the matched value, never the value
// itself.
func NewSecretScanner() Scanner {
	return newPatternScanner(rules.MustFor(m.DomainSecrets), DefaultCacheSize, buildSecretFinding, nil)
}

func buildSecretFinding(f *m.Finding, _ rules.Rule, text string, match []int) {
	start, end := match[0], match[1]

	// Rules with a capture group isolate the secret from its key name.
	if len(match) >= 4 && match[2] >= 0 {
		start, end = match[2], match[3]
	}

	f.Evidence = MaskSecret(text[start:end])
	f.Confidence = f.Severity.Tier()
}

// MaskSecret keeps the first and last four characters of value and replaces
// the rest with '*'. Values too short to keep anything hidden are masked
// entirely.
func MaskSecret(value string) string {
	n := utf8.RuneCountInString(value)
	if n <= 2*maskVisible {
		return strings.Repeat("*", n)
	}

	runes := []rune(value)

	return string(runes[:maskVisible]) + strings.Repeat("*", n-2*maskVisible) + string(runes[n-maskVisible:])
}
