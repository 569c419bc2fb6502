// Package rules manages registration of lint rules and applies them to a
// parsed configuration.
package rules

import (
	"fmt"

	"github.com/donaldgifford/hyprconf/internal/config"
	"github.com/donaldgifford/hyprconf/internal/model"
)

// Rule inspects a configuration and returns one message per problem.
type Rule interface {
	// Name returns the config key for this rule (e.g., "duplicate-monitor").
	Name() string

	// Check must not modify cfg.
	Check(cfg *model.Config) []string
}

// Severity controls how a finding affects the exit status.
type Severity int

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = iota
	// SeverityWarn reports findings without failing.
	SeverityWarn
	// SeverityError reports findings and fails validation.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Finding is one problem reported by a rule.
type Finding struct {
	Rule     string
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Severity, f.Message, f.Rule)
}

var lintRules []Rule

// RegisterRule adds a lint rule to the registry. Rules run in the order
// they are registered. Registering two rules with the same name panics.
func RegisterRule(r Rule) {
	for _, existing := range lintRules {
		if existing.Name() == r.Name() {
			panic("rules: duplicate rule " + r.Name())
		}
	}
	lintRules = append(lintRules, r)
}

// Rules returns all registered lint rules in execution order.
func Rules() []Rule {
	return lintRules
}

// SeverityFor returns the configured severity of the named rule. Rules not
// mentioned in cfg default to warn.
func SeverityFor(cfg *config.LintConfig, name string) Severity {
	if cfg == nil {
		return SeverityWarn
	}
	switch cfg.Rules[name] {
	case "off":
		return SeverityOff
	case "error":
		return SeverityError
	}
	return SeverityWarn
}

// Lint runs every registered rule that is not switched off.
func Lint(hc *model.Config, cfg *config.LintConfig) []Finding {
	return Run(hc, cfg, lintRules)
}

// Run applies the given rules to hc.
func Run(hc *model.Config, cfg *config.LintConfig, rules []Rule) []Finding {
	var findings []Finding
	for _, r := range rules {
		sev := SeverityFor(cfg, r.Name())
		if sev == SeverityOff {
			continue
		}
		for _, msg := range r.Check(hc) {
			findings = append(findings, Finding{Rule: r.Name(), Severity: sev, Message: msg})
		}
	}
	return findings
}

// HasErrors reports whether any finding has error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
