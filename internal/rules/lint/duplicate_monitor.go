// Package lint contains individual lint rule implementations. Each rule
// inspects a parsed configuration and reports problems the compositor would
// silently accept.
package lint

import (
	"fmt"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// DuplicateMonitor reports monitor lines that share a name. The compositor
// applies the last one, so earlier lines are dead.
type DuplicateMonitor struct{}

// Name returns the config key for this rule.
func (r *DuplicateMonitor) Name() string {
	return "duplicate-monitor"
}

// Check returns one message per repeated monitor name.
func (r *DuplicateMonitor) Check(cfg *model.Config) []string {
	seen := make(map[string]int, len(cfg.Monitors))
	var msgs []string
	for _, m := range cfg.Monitors {
		seen[m.Name]++
		if seen[m.Name] == 2 {
			msgs = append(msgs, fmt.Sprintf("monitor %q is configured more than once", displayName(m.Name)))
		}
	}
	return msgs
}

// displayName renders the empty monitor name, which matches any output.
func displayName(name string) string {
	if name == "" {
		return "(any)"
	}
	return name
}
