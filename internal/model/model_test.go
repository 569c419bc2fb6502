package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewHasEmptyCollections(t *testing.T) {
	c := New()
	if c.Monitors == nil || c.Binds == nil || c.Variables == nil || c.Submaps == nil || c.Autostart == nil {
		t.Error("New should return non-nil collections")
	}
	if c.General.BorderSize != 1 || c.General.Layout != "dwindle" {
		t.Errorf("general defaults: %+v", c.General)
	}
	if !c.Animations.Enabled {
		t.Error("animations should be enabled by default")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := New()
	c.Monitors = append(c.Monitors, Monitor{Name: "DP-1", Scale: 1, Transform: Ptr(1)})
	c.Devices = append(c.Devices, Device{Name: "mouse", Sensitivity: Ptr(0.5)})
	c.WindowRules = append(c.WindowRules, WindowRule{Rule: "float", Value: "kitty", Params: []string{"a"}})
	c.WorkspaceRules = append(c.WorkspaceRules, WorkspaceRule{Workspace: "1", Rules: map[string]string{"monitor": "DP-1"}})
	c.LayerRules = append(c.LayerRules, LayerRule{Rule: "blur", Target: "waybar", Value: Ptr("x")})
	c.Binds = append(c.Binds, KeyBind{Modifiers: "SUPER", Key: "Q", Dispatchers: []string{"exec"}, Flags: Ptr("r")})
	c.Submaps["resize"] = []KeyBind{{Key: "l", Dispatchers: []string{"resizeactive"}}}
	c.Variables["mod"] = "SUPER"
	c.Animations.Entries = append(c.Animations.Entries, Animation{Name: "windows", Speed: 7})

	out := c.Clone()
	if diff := cmp.Diff(c, out); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	*out.Monitors[0].Transform = 3
	*out.Devices[0].Sensitivity = 1
	out.WindowRules[0].Params[0] = "b"
	out.WorkspaceRules[0].Rules["monitor"] = "HDMI-A-1"
	*out.LayerRules[0].Value = "y"
	out.Binds[0].Dispatchers[0] = "killactive"
	*out.Binds[0].Flags = "e"
	out.Submaps["resize"][0].Key = "h"
	out.Variables["mod"] = "ALT"
	out.Animations.Entries[0].Speed = 1

	switch {
	case *c.Monitors[0].Transform != 1:
		t.Error("monitor transform shared")
	case *c.Devices[0].Sensitivity != 0.5:
		t.Error("device sensitivity shared")
	case c.WindowRules[0].Params[0] != "a":
		t.Error("window rule params shared")
	case c.WorkspaceRules[0].Rules["monitor"] != "DP-1":
		t.Error("workspace rules shared")
	case *c.LayerRules[0].Value != "x":
		t.Error("layer rule value shared")
	case c.Binds[0].Dispatchers[0] != "exec" || *c.Binds[0].Flags != "r":
		t.Error("keybind shared")
	case c.Submaps["resize"][0].Key != "l":
		t.Error("submap binds shared")
	case c.Variables["mod"] != "SUPER":
		t.Error("variables shared")
	case c.Animations.Entries[0].Speed != 7:
		t.Error("animation entries shared")
	}
}

func TestCloneNil(t *testing.T) {
	var c *Config
	if c.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestSubmapNames(t *testing.T) {
	c := New()
	c.Submaps["resize"] = nil
	c.Submaps["move"] = nil
	c.Submaps["launch"] = nil

	if diff := cmp.Diff([]string{"launch", "move", "resize"}, c.SubmapNames()); diff != "" {
		t.Errorf("SubmapNames mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand(t *testing.T) {
	c := New()
	c.Variables["mainMod"] = "SUPER"
	c.Variables["term"] = "kitty"
	c.Variables["loop"] = "$term"

	tests := []struct {
		in   string
		want string
	}{
		{"$mainMod SHIFT", "SUPER SHIFT"},
		{"$term -e $EDITOR", "kitty -e $EDITOR"},
		{"no refs", "no refs"},
		{"$loop", "$term"},
		{"$mainModX", "$mainModX"},
		{"$", "$"},
	}
	for _, tt := range tests {
		if got := c.Expand(tt.in); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReferences(t *testing.T) {
	got := References("$mainMod, $term -e $EDITOR $")
	if diff := cmp.Diff([]string{"mainMod", "term", "EDITOR"}, got); diff != "" {
		t.Errorf("References mismatch (-want +got):\n%s", diff)
	}
	if got := References("plain"); len(got) != 0 {
		t.Errorf("References(plain) = %v", got)
	}
}

func TestKeyBindKeyword(t *testing.T) {
	if got := (KeyBind{}).Keyword(); got != FamilyBind {
		t.Errorf("default keyword: got %q", got)
	}
	if got := (KeyBind{Family: FamilyBindM}).Keyword(); got != "bindm" {
		t.Errorf("bindm keyword: got %q", got)
	}
	for _, kw := range []string{"bind", "bindl", "bindr", "bindm", "binde", "bindle", "bindel", "unbind"} {
		if !IsBindFamily(kw) {
			t.Errorf("IsBindFamily(%q) = false", kw)
		}
	}
	if IsBindFamily("bindx") {
		t.Error("IsBindFamily(bindx) = true")
	}
}

func TestPermissionMode(t *testing.T) {
	tests := []struct {
		in   string
		want PermissionMode
		ok   bool
	}{
		{"allow", PermissionAllow, true},
		{"ASK", PermissionAsk, true},
		{"Deny", PermissionDeny, true},
		{"maybe", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePermissionMode(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParsePermissionMode(%q) = %v, %v", tt.in, got, ok)
		}
	}

	if PermissionDeny.String() != "deny" {
		t.Errorf("String: got %q", PermissionDeny.String())
	}

	text, err := PermissionAsk.MarshalText()
	if err != nil || string(text) != "ask" {
		t.Errorf("MarshalText: %q, %v", text, err)
	}
	var m PermissionMode
	if err := m.UnmarshalText([]byte("deny")); err != nil || m != PermissionDeny {
		t.Errorf("UnmarshalText: %v, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText should reject unknown modes")
	}
}
