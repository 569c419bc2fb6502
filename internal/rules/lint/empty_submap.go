package lint

import (
	"fmt"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// EmptySubmap reports submaps that declare no keybinds. Entering one traps
// the keyboard until something else resets the submap.
type EmptySubmap struct{}

// Name returns the config key for this rule.
func (r *EmptySubmap) Name() string {
	return "empty-submap"
}

// Check returns one message per empty submap, sorted by name.
func (r *EmptySubmap) Check(cfg *model.Config) []string {
	var msgs []string
	for _, name := range cfg.SubmapNames() {
		if len(cfg.Submaps[name]) == 0 {
			msgs = append(msgs, fmt.Sprintf("submap %q has no keybinds", name))
		}
	}
	return msgs
}
