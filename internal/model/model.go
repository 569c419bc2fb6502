// Package model defines the typed configuration produced by the parser and
// consumed by the formatter.
package model

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Config is the aggregate configuration. A Config is owned by one caller at
// a time; nothing in this module shares it across goroutines.
type Config struct {
	General      General      `yaml:"general" toml:"general"`
	Decoration   Decoration   `yaml:"decoration" toml:"decoration"`
	Animations   Animations   `yaml:"animations" toml:"animations"`
	Input        Input        `yaml:"input" toml:"input"`
	Gestures     Gestures     `yaml:"gestures" toml:"gestures"`
	Group        Group        `yaml:"group" toml:"group"`
	Misc         Misc         `yaml:"misc" toml:"misc"`
	BindSettings Binds        `yaml:"binds" toml:"binds"`
	XWayland     XWayland     `yaml:"xwayland" toml:"xwayland"`
	OpenGL       OpenGL       `yaml:"opengl" toml:"opengl"`
	Render       Render       `yaml:"render" toml:"render"`
	Cursor       Cursor       `yaml:"cursor" toml:"cursor"`
	Dwindle      Dwindle      `yaml:"dwindle" toml:"dwindle"`
	Master       Master       `yaml:"master" toml:"master"`
	Debug        Debug        `yaml:"debug" toml:"debug"`
	Ecosystem    Ecosystem    `yaml:"ecosystem" toml:"ecosystem"`
	Experimental Experimental `yaml:"experimental" toml:"experimental"`

	Monitors       []Monitor       `yaml:"monitors" toml:"monitors"`
	Devices        []Device        `yaml:"devices" toml:"devices"`
	WindowRules    []WindowRule    `yaml:"window_rules" toml:"window_rules"`
	WorkspaceRules []WorkspaceRule `yaml:"workspace_rules" toml:"workspace_rules"`
	LayerRules     []LayerRule     `yaml:"layer_rules" toml:"layer_rules"`
	Binds          []KeyBind       `yaml:"keybinds" toml:"keybinds"`
	Permissions    []Permission    `yaml:"permissions" toml:"permissions"`

	Variables map[string]string    `yaml:"variables" toml:"variables"`
	Env       map[string]string    `yaml:"env" toml:"env"`
	Beziers   map[string]string    `yaml:"beziers" toml:"beziers"`
	Submaps   map[string][]KeyBind `yaml:"submaps" toml:"submaps"`
	Autostart []string             `yaml:"autostart" toml:"autostart"`
}

// New returns a Config with every section at its default and every
// collection empty.
func New() *Config {
	return &Config{
		General:      DefaultGeneral(),
		Decoration:   DefaultDecoration(),
		Animations:   DefaultAnimations(),
		Input:        DefaultInput(),
		Gestures:     DefaultGestures(),
		Group:        DefaultGroup(),
		Misc:         DefaultMisc(),
		BindSettings: DefaultBinds(),
		XWayland:     DefaultXWayland(),
		OpenGL:       DefaultOpenGL(),
		Render:       DefaultRender(),
		Cursor:       DefaultCursor(),
		Dwindle:      DefaultDwindle(),
		Master:       DefaultMaster(),
		Debug:        DefaultDebug(),
		Ecosystem:    Ecosystem{},
		Experimental: Experimental{},

		Monitors:       []Monitor{},
		Devices:        []Device{},
		WindowRules:    []WindowRule{},
		WorkspaceRules: []WorkspaceRule{},
		LayerRules:     []LayerRule{},
		Binds:          []KeyBind{},
		Permissions:    []Permission{},

		Variables: map[string]string{},
		Env:       map[string]string{},
		Beziers:   map[string]string{},
		Submaps:   map[string][]KeyBind{},
		Autostart: []string{},
	}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := *c
	out.Animations.Entries = slices.Clone(c.Animations.Entries)
	out.Monitors = cloneEach(c.Monitors, Monitor.Clone)
	out.Devices = cloneEach(c.Devices, Device.Clone)
	out.WindowRules = cloneEach(c.WindowRules, WindowRule.Clone)
	out.WorkspaceRules = cloneEach(c.WorkspaceRules, WorkspaceRule.Clone)
	out.LayerRules = cloneEach(c.LayerRules, LayerRule.Clone)
	out.Binds = cloneEach(c.Binds, KeyBind.Clone)
	out.Permissions = slices.Clone(c.Permissions)
	out.Variables = maps.Clone(c.Variables)
	out.Env = maps.Clone(c.Env)
	out.Beziers = maps.Clone(c.Beziers)
	out.Autostart = slices.Clone(c.Autostart)

	if c.Submaps != nil {
		out.Submaps = make(map[string][]KeyBind, len(c.Submaps))
		for name, binds := range c.Submaps {
			out.Submaps[name] = cloneEach(binds, KeyBind.Clone)
		}
	}
	return &out
}

// SubmapNames returns the submap names in sorted order.
func (c *Config) SubmapNames() []string {
	return slices.Sorted(maps.Keys(c.Submaps))
}

// variableRef matches $name references. Names follow the same character
// set the parser accepts for variable definitions.
var variableRef = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*`)

// Expand replaces every $name in s whose name is defined in Variables with
// its value. Unknown references are left as written. Expansion is a single
// literal pass; values are not expanded recursively.
func (c *Config) Expand(s string) string {
	if !strings.Contains(s, "$") || len(c.Variables) == 0 {
		return s
	}
	return variableRef.ReplaceAllStringFunc(s, func(ref string) string {
		if v, ok := c.Variables[ref[1:]]; ok {
			return v
		}
		return ref
	})
}

// References returns the names of the $name references in s in order of
// appearance, without the leading '$'.
func References(s string) []string {
	refs := variableRef.FindAllString(s, -1)
	for i, ref := range refs {
		refs[i] = ref[1:]
	}
	return refs
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. It is a convenience for setting optional
// entity attributes.
func Ptr[T any](v T) *T {
	return &v
}
