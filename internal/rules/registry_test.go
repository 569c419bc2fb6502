package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/donaldgifford/hyprconf/internal/config"
	"github.com/donaldgifford/hyprconf/internal/model"
)

type fixedRule struct {
	name string
	msgs []string
}

func (r *fixedRule) Name() string                 { return r.name }
func (r *fixedRule) Check(*model.Config) []string { return r.msgs }

func TestRegisteredRules(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name())
	}
	want := []string{
		"duplicate-monitor",
		"duplicate-keybind",
		"empty-submap",
		"undefined-bezier",
		"undefined-variable",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("registered rules mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a duplicate rule name")
		}
	}()
	RegisterRule(&fixedRule{name: "duplicate-monitor"})
}

func TestSeverityFor(t *testing.T) {
	cfg := &config.LintConfig{Rules: map[string]string{"a": "off", "b": "error", "c": "warn"}}

	tests := []struct {
		name string
		want Severity
	}{
		{"a", SeverityOff},
		{"b", SeverityError},
		{"c", SeverityWarn},
		{"unlisted", SeverityWarn},
	}
	for _, tt := range tests {
		if got := SeverityFor(cfg, tt.name); got != tt.want {
			t.Errorf("SeverityFor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := SeverityFor(nil, "a"); got != SeverityWarn {
		t.Errorf("SeverityFor(nil) = %v, want warn", got)
	}
}

func TestRun(t *testing.T) {
	rules := []Rule{
		&fixedRule{name: "quiet", msgs: []string{"never shown"}},
		&fixedRule{name: "loud", msgs: []string{"one", "two"}},
		&fixedRule{name: "soft", msgs: []string{"three"}},
	}
	cfg := &config.LintConfig{Rules: map[string]string{"quiet": "off", "loud": "error"}}

	got := Run(model.New(), cfg, rules)
	want := []Finding{
		{Rule: "loud", Severity: SeverityError, Message: "one"},
		{Rule: "loud", Severity: SeverityError, Message: "two"},
		{Rule: "soft", Severity: SeverityWarn, Message: "three"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	if !HasErrors(got) {
		t.Error("HasErrors: got false, want true")
	}
	if HasErrors(got[2:]) {
		t.Error("HasErrors on warnings only: got true, want false")
	}
}

func TestLintCleanConfig(t *testing.T) {
	if findings := Lint(model.New(), nil); len(findings) != 0 {
		t.Errorf("default config should lint clean, got %v", findings)
	}
}

func TestFindingString(t *testing.T) {
	f := Finding{Rule: "empty-submap", Severity: SeverityWarn, Message: `submap "x" has no keybinds`}
	want := `warn: submap "x" has no keybinds (empty-submap)`
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
