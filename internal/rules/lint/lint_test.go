package lint

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/donaldgifford/hyprconf/internal/model"
)

func bind(family, mods, key string) model.KeyBind {
	return model.KeyBind{Family: family, Modifiers: mods, Key: key, Dispatchers: []string{"exec"}, Arg: "true"}
}

func TestDuplicateMonitor(t *testing.T) {
	cfg := model.New()
	cfg.Monitors = []model.Monitor{
		model.NewMonitor("DP-1"),
		model.NewMonitor("HDMI-A-1"),
		model.NewMonitor("DP-1"),
		model.NewMonitor("DP-1"),
		model.NewMonitor(""),
		model.NewMonitor(""),
	}

	got := (&DuplicateMonitor{}).Check(cfg)
	want := []string{
		`monitor "DP-1" is configured more than once`,
		`monitor "(any)" is configured more than once`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateKeybind(t *testing.T) {
	tests := []struct {
		name  string
		binds []model.KeyBind
		subs  map[string][]model.KeyBind
		want  []string
	}{
		{
			name:  "no duplicates",
			binds: []model.KeyBind{bind("", "SUPER", "Q"), bind("", "SUPER", "W")},
		},
		{
			name:  "modifier order ignored",
			binds: []model.KeyBind{bind("", "SUPER SHIFT", "Q"), bind("", "shift super", "Q")},
			want:  []string{"SHIFT+SUPER+Q is bound more than once"},
		},
		{
			name:  "different families do not collide",
			binds: []model.KeyBind{bind("", "SUPER", "Q"), bind(model.FamilyBindE, "SUPER", "Q")},
		},
		{
			name:  "explicit bind family equals default",
			binds: []model.KeyBind{bind("", "SUPER", "Q"), bind(model.FamilyBind, "SUPER", "Q")},
			want:  []string{"SUPER+Q is bound more than once"},
		},
		{
			name:  "unbind ignored",
			binds: []model.KeyBind{bind(model.FamilyUnbind, "SUPER", "Q"), bind(model.FamilyUnbind, "SUPER", "Q")},
		},
		{
			name:  "submaps are separate keymaps",
			binds: []model.KeyBind{bind("", "", "escape")},
			subs: map[string][]model.KeyBind{
				"resize": {bind("", "", "escape"), bind("", "", "escape")},
			},
			want: []string{`escape is bound more than once in submap "resize"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.New()
			cfg.Binds = tt.binds
			if tt.subs != nil {
				cfg.Submaps = tt.subs
			}
			got := (&DuplicateKeybind{}).Check(cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("findings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptySubmap(t *testing.T) {
	cfg := model.New()
	cfg.Submaps = map[string][]model.KeyBind{
		"resize":   {bind("", "", "escape")},
		"passthru": nil,
		"empty":    {},
	}

	got := (&EmptySubmap{}).Check(cfg)
	want := []string{`submap "empty" has no keybinds`, `submap "passthru" has no keybinds`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestUndefinedBezier(t *testing.T) {
	cfg := model.New()
	cfg.Beziers["myBezier"] = "0.05, 0.9, 0.1, 1.05"
	cfg.Animations.Entries = []model.Animation{
		{Name: "windows", Enabled: true, Speed: 7, Curve: "myBezier"},
		{Name: "border", Enabled: true, Speed: 10, Curve: model.DefaultAnimationCurve},
		{Name: "fade", Enabled: true, Speed: 7, Curve: "missing"},
	}

	got := (&UndefinedBezier{}).Check(cfg)
	want := []string{`animation "fade" uses undefined bezier "missing"`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestUndefinedVariable(t *testing.T) {
	cfg := model.New()
	cfg.Variables["mainMod"] = "SUPER"
	cfg.Variables["menu"] = "$launcher --show drun"
	cfg.Binds = []model.KeyBind{
		{Modifiers: "$mainMod", Key: "Q", Dispatchers: []string{"exec"}, Arg: "$terminal"},
		{Modifiers: "$mainMod", Key: "R", Dispatchers: []string{"exec"}, Arg: "$menu"},
	}
	cfg.Submaps["resize"] = []model.KeyBind{
		{Key: "l", Dispatchers: []string{"resizeactive"}, Arg: "$step 0"},
	}
	cfg.Autostart = []string{"$terminal --daemon"}

	got := (&UndefinedVariable{}).Check(cfg)
	want := []string{
		"$launcher is used but never defined",
		"$terminal is used but never defined",
		"$step is used but never defined",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestUndefinedVariableInSectionsAndEntities(t *testing.T) {
	cfg := model.New()
	cfg.Variables["accent"] = "rgba(33ccffee)"
	cfg.General.ActiveBorder = "$accent"
	cfg.General.InactiveBorder = "$muted"
	cfg.Decoration.Shadow.Color = "$shadow"
	cfg.Monitors = []model.Monitor{{Name: "$primary", Resolution: "preferred", Position: "auto", Scale: 1}}
	cfg.Devices = []model.Device{{Name: "kbd", KbLayout: model.Ptr("$layout")}}
	cfg.WorkspaceRules = []model.WorkspaceRule{{Workspace: "1", Rules: map[string]string{"monitor": "$primary"}}}
	cfg.LayerRules = []model.LayerRule{{Rule: "blur", Target: "$bar"}}

	got := (&UndefinedVariable{}).Check(cfg)
	want := []string{
		"$primary is used but never defined",
		"$layout is used but never defined",
		"$bar is used but never defined",
		"$muted is used but never defined",
		"$shadow is used but never defined",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestRulesDoNotMutateInput(t *testing.T) {
	cfg := model.New()
	cfg.Monitors = []model.Monitor{model.NewMonitor("DP-1"), model.NewMonitor("DP-1")}
	cfg.Binds = []model.KeyBind{bind("", "SUPER", "Q")}
	before := cfg.Clone()

	for _, r := range []interface {
		Check(*model.Config) []string
	}{&DuplicateMonitor{}, &DuplicateKeybind{}, &EmptySubmap{}, &UndefinedBezier{}, &UndefinedVariable{}} {
		r.Check(cfg)
	}

	if diff := cmp.Diff(before, cfg); diff != "" {
		t.Errorf("rules modified the config (-before +after):\n%s", diff)
	}
}
