// Package formatter serializes a model.Config back into configuration text.
package formatter

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/config"
	"github.com/donaldgifford/hyprconf/internal/model"
	"github.com/donaldgifford/hyprconf/internal/schema"
)

// WriteError reports that serialized output could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write serializes cfg. Sections come first in a fixed order with every
// field written, followed by entities, definitions, keybinds, submaps and
// permission blocks. Output depends only on cfg and opts; cfg is not
// modified. A nil opts uses config.DefaultConfig().Writer.
func Write(cfg *model.Config, opts *config.WriterConfig) string {
	w := newWriter(opts)
	w.sections(cfg)
	w.tail(cfg)
	return w.String()
}

// WriteEntities serializes only the part of cfg that follows the sections:
// monitors, devices, rules, definitions, keybinds, submaps and permissions.
func WriteEntities(cfg *model.Config, opts *config.WriterConfig) string {
	w := newWriter(opts)
	w.tail(cfg)
	return w.String()
}

// WriteFile serializes cfg to path. Failures are returned as *WriteError.
func WriteFile(cfg *model.Config, path string, opts *config.WriterConfig) error {
	if err := os.WriteFile(path, []byte(Write(cfg, opts)), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

type writer struct {
	b       strings.Builder
	indent  string
	final   bool
	started bool
}

func newWriter(opts *config.WriterConfig) *writer {
	if opts == nil {
		opts = &config.DefaultConfig().Writer
	}
	return &writer{indent: opts.Indent(), final: opts.InsertFinalNewline}
}

// String returns the output, with or without the final newline.
func (w *writer) String() string {
	out := w.b.String()
	if !w.final {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// group starts a blank-line separated group of lines.
func (w *writer) group() {
	if w.started {
		w.b.WriteByte('\n')
	}
	w.started = true
}

func (w *writer) line(depth int, s string) {
	w.b.WriteString(strings.Repeat(w.indent, depth))
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) assign(depth int, key, value string) {
	if value == "" {
		w.line(depth, key+" =")
		return
	}
	w.line(depth, key+" = "+value)
}

func (w *writer) sections(cfg *model.Config) {
	for _, sec := range schema.Sections() {
		w.group()
		w.line(0, sec.Name+" {")
		sec.Each(cfg, func(key, value string) { w.assign(1, key, value) })

		if sec.Name == "animations" {
			for _, a := range cfg.Animations.Entries {
				w.assign(1, "animation", FormatAnimation(a))
			}
		}

		for _, child := range sec.Children() {
			w.line(1, child.Name+" {")
			child.Each(cfg, func(key, value string) { w.assign(2, key, value) })
			w.line(1, "}")
		}
		w.line(0, "}")
	}
}

func (w *writer) tail(cfg *model.Config) {
	w.entities(cfg)
	w.definitions(cfg)

	if len(cfg.Binds) > 0 {
		w.group()
		for _, kb := range cfg.Binds {
			w.assign(0, kb.Keyword(), FormatKeyBind(kb))
		}
	}

	for _, name := range cfg.SubmapNames() {
		w.group()
		w.assign(0, "submap", name)
		for _, kb := range cfg.Submaps[name] {
			w.assign(0, kb.Keyword(), FormatKeyBind(kb))
		}
		w.assign(0, "submap", "reset")
	}

	for _, perm := range cfg.Permissions {
		w.group()
		w.permission(perm)
	}
}

func (w *writer) entities(cfg *model.Config) {
	if len(cfg.Monitors)+len(cfg.Devices)+len(cfg.WindowRules)+
		len(cfg.WorkspaceRules)+len(cfg.LayerRules) == 0 {
		return
	}
	w.group()

	for _, m := range cfg.Monitors {
		w.assign(0, "monitor", FormatMonitor(m))
	}
	for _, d := range cfg.Devices {
		if deviceNeedsBlock(d) {
			w.deviceBlock(d)
			continue
		}
		w.assign(0, "device", FormatDevice(d))
	}
	for _, r := range cfg.WindowRules {
		keyword := "windowrule"
		if r.V2 {
			keyword = "windowrulev2"
		}
		w.assign(0, keyword, FormatWindowRule(r))
	}
	for _, r := range cfg.WorkspaceRules {
		w.assign(0, "workspace", FormatWorkspaceRule(r))
	}
	for _, r := range cfg.LayerRules {
		w.assign(0, "layerrule", FormatLayerRule(r))
	}
}

func (w *writer) definitions(cfg *model.Config) {
	autostart := slices.DeleteFunc(slices.Clone(cfg.Autostart), func(s string) bool { return s == "" })
	if len(cfg.Variables)+len(cfg.Env)+len(autostart)+len(cfg.Beziers) == 0 {
		return
	}
	w.group()

	for _, name := range slices.Sorted(maps.Keys(cfg.Variables)) {
		w.assign(0, "$"+name, cfg.Variables[name])
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.Env)) {
		w.assign(0, "env", name+","+cfg.Env[name])
	}
	for _, cmd := range autostart {
		w.assign(0, "exec-once", cmd)
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.Beziers)) {
		w.assign(0, "bezier", name+", "+cfg.Beziers[name])
	}
}

func (w *writer) deviceBlock(d model.Device) {
	w.line(0, "device {")
	w.assign(1, "name", d.Name)
	schema.DeviceTable.Each(&d, func(key, value string) { w.assign(1, key, value) })
	w.line(0, "}")
}

func (w *writer) permission(p model.Permission) {
	w.line(0, "permission {")
	w.assign(1, "path_regex", quote(p.PathRegex))
	w.assign(1, "permission_type", quote(p.Type))
	w.assign(1, "mode", p.Mode.String())
	w.line(0, "}")
}

func quote(s string) string {
	return `"` + s + `"`
}
