// Package rules holds the static pattern catalogs used by the scanners. Each
// domain's catalog is declared as a table of Definitions and compiled once,
// the first time any catalog is requested.
package rules

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// Definition is the declarative form of a pattern rule.
type Definition struct {
	ID         string
	Pattern    string
	Message    string
	Severity   m.Severity
	Category   string
	ExternalID string
	// Contexts restricts the rule to the named contexts (database engine,
	// IaC flavour, framework). Empty means the rule always applies.
	Contexts []string
}

// Rule is a compiled Definition.
type Rule struct {
	Definition
	re *regexp.Regexp
}

// Regexp returns the compiled pattern.
func (r Rule) Regexp() *regexp.Regexp {
	return r.re
}

// AppliesTo reports whether the rule is relevant for context. Generic rules
// apply to every context.
func (r Rule) AppliesTo(context string) bool {
	if len(r.Contexts) == 0 {
		return true
	}

	for _, c := range r.Contexts {
		if c == context {
			return true
		}
	}

	return false
}

// Catalog is an immutable, ordered list of rules for one domain.
type Catalog struct {
	domain   m.Domain
	rules    []Rule
	contexts []string
}

// Compile builds a Catalog from definitions. Definitions whose pattern does
// not compile are logged and left out.
func Compile(domain m.Domain, defs []Definition) Catalog {
	catalog := Catalog{domain: domain, rules: make([]Rule, 0, len(defs))}
	seen := map[string]struct{}{}

	for _, def := range defs {
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			slog.Error("Skipping rule with invalid pattern", "domain", domain, "rule", def.ID, "error", err)
			continue
		}

		for _, c := range def.Contexts {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				catalog.contexts = append(catalog.contexts, c)
			}
		}

		catalog.rules = append(catalog.rules, Rule{Definition: def, re: re})
	}

	sort.Strings(catalog.contexts)

	return catalog
}

// Domain returns the catalog's analysis domain.
func (c Catalog) Domain() m.Domain {
	return c.domain
}

// Len returns the number of compiled rules.
func (c Catalog) Len() int {
	return len(c.rules)
}

// Rules returns a copy of every rule in declaration order.
func (c Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)

	return out
}

// Contexts returns the sorted set of contexts referenced by the catalog.
func (c Catalog) Contexts() []string {
	out := make([]string, len(c.contexts))
	copy(out, c.contexts)

	return out
}

// ContextSensitive reports whether any rule is restricted to a context.
func (c Catalog) ContextSensitive() bool {
	return len(c.contexts) > 0
}

// KnownContext reports whether context selects a rule subset.
func (c Catalog) KnownContext(context string) bool {
	for _, known := range c.contexts {
		if known == context {
			return true
		}
	}

	return false
}

// NormalizeContext lower-cases context and resolves common aliases.
func NormalizeContext(context string) string {
	context = strings.ToLower(strings.TrimSpace(context))
	if alias, ok := contextAliases[context]; ok {
		return alias
	}

	return context
}

var contextAliases = map[string]string{
	"postgres":       "postgresql",
	"pg":             "postgresql",
	"mongo":          "mongodb",
	"sqlserver":      "mssql",
	"k8s":            "kubernetes",
	"dockerfile":     "docker",
	"tf":             "terraform",
	"github":         "github-actions",
	"actions":        "github-actions",
	"nextjs":         "react",
	"next":           "react",
	"nuxt":           "vue",
	"node":           "express",
	"expressjs":      "express",
	"django-rest":    "django",
	"docker-compose": "docker",
}

// ForContext returns the rules to evaluate for context. An empty or unknown
// context selects every rule.
func (c Catalog) ForContext(context string) []Rule {
	context = NormalizeContext(context)
	if context == "" || !c.KnownContext(context) {
		return c.Rules()
	}

	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		if r.AppliesTo(context) {
			out = append(out, r)
		}
	}

	return out
}

var (
	loadOnce sync.Once
	catalogs map[m.Domain]Catalog
)

func load() {
	catalogs = map[m.Domain]Catalog{
		m.DomainSecurity:  Compile(m.DomainSecurity, securityDefinitions),
		m.DomainSecrets:   Compile(m.DomainSecrets, secretDefinitions),
		m.DomainQuality:   Compile(m.DomainQuality, qualityDefinitions),
		m.DomainDevOps:    Compile(m.DomainDevOps, devopsDefinitions),
		m.DomainDatabase:  Compile(m.DomainDatabase, databaseDefinitions),
		m.DomainFullStack: Compile(m.DomainFullStack, fullstackDefinitions),
	}
}

// For returns the built-in catalog of domain.
func For(domain m.Domain) (Catalog, error) {
	loadOnce.Do(load)

	catalog, ok := catalogs[domain]
	if !ok {
		return Catalog{}, fmt.Errorf("no catalog for domain %q", domain)
	}

	return catalog, nil
}

// MustFor is like For but panics on an unknown domain.
func MustFor(domain m.Domain) Catalog {
	catalog, err := For(domain)
	if err != nil {
		panic(err)
	}

	return catalog
}
