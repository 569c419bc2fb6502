package lint

import (
	"fmt"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// UndefinedBezier reports animation lines whose curve is neither the
// built-in default nor a declared bezier.
type UndefinedBezier struct{}

// Name returns the config key for this rule.
func (r *UndefinedBezier) Name() string {
	return "undefined-bezier"
}

// Check returns one message per offending animation line.
func (r *UndefinedBezier) Check(cfg *model.Config) []string {
	var msgs []string
	for _, a := range cfg.Animations.Entries {
		if a.Curve == "" || a.Curve == model.DefaultAnimationCurve {
			continue
		}
		if _, ok := cfg.Beziers[a.Curve]; ok {
			continue
		}
		msgs = append(msgs, fmt.Sprintf("animation %q uses undefined bezier %q", a.Name, a.Curve))
	}
	return msgs
}
