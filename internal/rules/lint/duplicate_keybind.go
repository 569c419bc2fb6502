package lint

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// DuplicateKeybind reports key combinations bound more than once within the
// same keymap. Modifier order and case are ignored. Unbind lines and binds
// with different families do not collide.
type DuplicateKeybind struct{}

// Name returns the config key for this rule.
func (r *DuplicateKeybind) Name() string {
	return "duplicate-keybind"
}

// Check inspects the flat bind list and then each submap.
func (r *DuplicateKeybind) Check(cfg *model.Config) []string {
	msgs := duplicates("", cfg.Binds)
	for _, name := range cfg.SubmapNames() {
		msgs = append(msgs, duplicates(name, cfg.Submaps[name])...)
	}
	return msgs
}

func duplicates(submap string, binds []model.KeyBind) []string {
	seen := make(map[string]int, len(binds))
	var msgs []string
	for _, kb := range binds {
		if kb.Family == model.FamilyUnbind {
			continue
		}
		combo := comboOf(kb)
		seen[kb.Keyword()+" "+combo]++
		if seen[kb.Keyword()+" "+combo] != 2 {
			continue
		}
		if submap == "" {
			msgs = append(msgs, fmt.Sprintf("%s is bound more than once", combo))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is bound more than once in submap %q", combo, submap))
		}
	}
	return msgs
}

// comboOf renders the normalized combination, e.g. "SHIFT+SUPER+Q".
func comboOf(kb model.KeyBind) string {
	mods := strings.FieldsFunc(strings.ToUpper(kb.Modifiers), func(r rune) bool {
		return r == ' ' || r == '_' || r == '+'
	})
	slices.Sort(mods)
	mods = slices.Compact(mods)
	return strings.Join(append(mods, kb.Key), "+")
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
