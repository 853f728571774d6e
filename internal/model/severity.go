// Package model defines the data structures shared by the scanners, the
// workspace orchestrator and the presentation layer.
package model

import (
	"fmt"
	"strings"
)

// Severity is a totally ordered severity tier.
type Severity int

// Severity tiers, lowest first. The zero value is SeverityLow.
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return fmt.Sprintf("severity(%d)", int(s))
	}

	return severityNames[s]
}

// Tier returns the upper-case label used for secret confidence tiers.
func (s Severity) Tier() string {
	return strings.ToUpper(s.String())
}

// AtLeast reports whether s is the same tier as other or above it.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// MarshalYAML renders the severity as its name.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// ParseSeverity converts a case-insensitive tier name into a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	}

	return SeverityLow, fmt.Errorf("unknown severity %q", value)
}

// MaxSeverity returns the highest tier among severities, or SeverityLow when
// none are given.
func MaxSeverity(severities ...Severity) Severity {
	highest := SeverityLow
	for _, s := range severities {
		if s > highest {
			highest = s
		}
	}

	return highest
}
