package lint

import (
	"fmt"
	"slices"

	"github.com/donaldgifford/hyprconf/internal/model"
	"github.com/donaldgifford/hyprconf/internal/schema"
)

// UndefinedVariable reports $name references that no variable defines.
type UndefinedVariable struct{}

// Name returns the config key for this rule.
func (r *UndefinedVariable) Name() string {
	return "undefined-variable"
}

// Check scans variable and env values, autostart commands, keybinds,
// submaps, entities and every section value for references. Each missing
// name is reported once, in order of first use.
func (r *UndefinedVariable) Check(cfg *model.Config) []string {
	var missing []string
	note := func(s string) {
		for _, name := range model.References(s) {
			if _, ok := cfg.Variables[name]; ok || slices.Contains(missing, name) {
				continue
			}
			missing = append(missing, name)
		}
	}

	for _, name := range sortedKeys(cfg.Variables) {
		note(cfg.Variables[name])
	}
	for _, name := range sortedKeys(cfg.Env) {
		note(cfg.Env[name])
	}
	for _, cmd := range cfg.Autostart {
		note(cmd)
	}
	for _, kb := range cfg.Binds {
		noteBind(kb, note)
	}
	for _, name := range cfg.SubmapNames() {
		for _, kb := range cfg.Submaps[name] {
			noteBind(kb, note)
		}
	}
	for _, wr := range cfg.WindowRules {
		note(wr.Rule)
		note(wr.Value)
		for _, p := range wr.Params {
			note(p)
		}
	}
	for _, m := range cfg.Monitors {
		note(m.Name)
		note(m.Resolution)
		note(m.Position)
		schema.MonitorTags.Each(&m, func(_, value string) { note(value) })
	}
	for _, d := range cfg.Devices {
		note(d.Name)
		schema.DeviceTable.Each(&d, func(_, value string) { note(value) })
	}
	for _, wr := range cfg.WorkspaceRules {
		note(wr.Workspace)
		for _, k := range sortedKeys(wr.Rules) {
			note(wr.Rules[k])
		}
	}
	for _, lr := range cfg.LayerRules {
		note(lr.Rule)
		note(lr.Target)
		if lr.Value != nil {
			note(*lr.Value)
		}
	}

	value := func(_, v string) { note(v) }
	for _, sec := range schema.Sections() {
		sec.Each(cfg, value)
		for _, child := range sec.Children() {
			child.Each(cfg, value)
		}
	}
	for _, a := range cfg.Animations.Entries {
		note(a.Curve)
		note(a.Style)
	}

	msgs := make([]string, 0, len(missing))
	for _, name := range missing {
		msgs = append(msgs, fmt.Sprintf("$%s is used but never defined", name))
	}
	return msgs
}

func noteBind(kb model.KeyBind, note func(string)) {
	note(kb.Modifiers)
	note(kb.Key)
	for _, d := range kb.Dispatchers {
		note(d)
	}
	note(kb.Arg)
}
