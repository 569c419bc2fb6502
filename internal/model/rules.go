package model

import "maps"

// WindowRule is a "windowrule = rule,value,params..." line. V2 marks the
// windowrulev2 keyword.
type WindowRule struct {
	Rule   string   `yaml:"rule" toml:"rule"`
	Value  string   `yaml:"value" toml:"value"`
	Params []string `yaml:"params,omitempty" toml:"params,omitempty"`
	V2     bool     `yaml:"v2,omitempty" toml:"v2,omitempty"`
}

// WorkspaceRule is a "workspace = id,key:value,..." line.
type WorkspaceRule struct {
	Workspace string            `yaml:"workspace" toml:"workspace"`
	Rules     map[string]string `yaml:"rules" toml:"rules"`
}

// LayerRule is a "layerrule = rule,target[,value]" line.
type LayerRule struct {
	Rule   string  `yaml:"rule" toml:"rule"`
	Target string  `yaml:"target" toml:"target"`
	Value  *string `yaml:"value,omitempty" toml:"value,omitempty"`
}

// Clone returns a deep copy of the rule.
func (r WindowRule) Clone() WindowRule {
	if r.Params != nil {
		r.Params = append([]string(nil), r.Params...)
	}
	return r
}

// Clone returns a deep copy of the rule.
func (r WorkspaceRule) Clone() WorkspaceRule {
	if r.Rules != nil {
		r.Rules = maps.Clone(r.Rules)
	}
	return r
}

// Clone returns a deep copy of the rule.
func (r LayerRule) Clone() LayerRule {
	r.Value = clonePtr(r.Value)
	return r
}
