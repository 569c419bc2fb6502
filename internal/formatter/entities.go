package formatter

import (
	"maps"
	"slices"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/model"
	"github.com/donaldgifford/hyprconf/internal/schema"
)

// FormatMonitor renders the value of a monitor line.
func FormatMonitor(m model.Monitor) string {
	var tags []string
	schema.MonitorTags.Each(&m, func(key, value string) {
		tags = append(tags, key+":"+value)
	})

	if m.Disable && m.Resolution == "" && m.Position == "" &&
		m.Scale == model.DefaultMonitorScale && len(tags) == 0 {
		return m.Name + ",disable"
	}

	fields := []string{m.Name, m.Resolution, m.Position, schema.FormatFloat(m.Scale)}
	fields = append(fields, tags...)
	if m.Disable {
		fields = append(fields, "disable")
	}
	return strings.Join(fields, ",")
}

// FormatDevice renders the value of a one-line device directive.
func FormatDevice(d model.Device) string {
	fields := []string{d.Name}
	schema.DeviceTable.Each(&d, func(key, value string) {
		fields = append(fields, key+":"+value)
	})
	return strings.Join(fields, ", ")
}

// deviceNeedsBlock reports whether d has a comma in its name or an
// attribute value, which the one-line form cannot carry.
func deviceNeedsBlock(d model.Device) bool {
	if strings.Contains(d.Name, ",") {
		return true
	}
	needs := false
	schema.DeviceTable.Each(&d, func(_, value string) {
		if strings.Contains(value, ",") {
			needs = true
		}
	})
	return needs
}

// FormatWindowRule renders "rule, value[, params...]".
func FormatWindowRule(r model.WindowRule) string {
	return strings.Join(append([]string{r.Rule, r.Value}, r.Params...), ", ")
}

// FormatWorkspaceRule renders "workspace, key:value, ..." with keys sorted.
func FormatWorkspaceRule(r model.WorkspaceRule) string {
	fields := []string{r.Workspace}
	for _, k := range slices.Sorted(maps.Keys(r.Rules)) {
		fields = append(fields, k+":"+r.Rules[k])
	}
	return strings.Join(fields, ", ")
}

// FormatLayerRule renders "rule, target[, value]".
func FormatLayerRule(r model.LayerRule) string {
	s := r.Rule + ", " + r.Target
	if r.Value != nil {
		s += ", " + *r.Value
	}
	return s
}

// FormatKeyBind renders "mods, key, dispatchers, arg[ # flags:X, desc:Y]".
func FormatKeyBind(kb model.KeyBind) string {
	fields := []string{kb.Modifiers, kb.Key, strings.Join(kb.Dispatchers, " ")}

	var meta []string
	if kb.Flags != nil {
		meta = append(meta, "flags:"+*kb.Flags)
	}
	if kb.Description != nil {
		meta = append(meta, "desc:"+*kb.Description)
	}

	switch {
	case len(meta) > 0:
		fields = append(fields, strings.TrimSpace(kb.Arg+" # "+strings.Join(meta, ", ")))
	case kb.Arg != "":
		fields = append(fields, kb.Arg)
	}
	return strings.Join(fields, ", ")
}

// FormatAnimation renders "name, onoff, speed, curve[, style]".
func FormatAnimation(a model.Animation) string {
	onoff := "0"
	if a.Enabled {
		onoff = "1"
	}
	fields := []string{a.Name, onoff, schema.FormatFloat(a.Speed), a.Curve}
	if a.Style != "" {
		fields = append(fields, a.Style)
	}
	return strings.Join(fields, ", ")
}
