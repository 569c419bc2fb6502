package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// collect returns a Reporter that records every report.
func collect(errs *[]error) Reporter {
	return func(err error) { *errs = append(*errs, err) }
}

func TestDecodeMonitor(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		want     model.Monitor
		warnings int
	}{
		{
			name:  "positional",
			value: "DP-1,1920x1080,0x0,1.0,transform:1",
			want: model.Monitor{
				Name: "DP-1", Resolution: "1920x1080", Position: "0x0", Scale: 1,
				Transform: model.Ptr(1),
			},
		},
		{
			name:  "spaces and refresh rate",
			value: "HDMI-A-1, 2560x1440@144, 1920x0, 1.25",
			want:  model.Monitor{Name: "HDMI-A-1", Resolution: "2560x1440@144", Position: "1920x0", Scale: 1.25},
		},
		{
			name:  "scale omitted",
			value: "DP-2,preferred,auto",
			want:  model.Monitor{Name: "DP-2", Resolution: "preferred", Position: "auto", Scale: 1},
		},
		{
			name:  "any output",
			value: ",preferred,auto,auto-up",
			want:  model.Monitor{Resolution: "preferred", Position: "auto", Scale: 1},
			// "auto-up" is not a number.
			warnings: 1,
		},
		{
			name:  "tagged scale and attributes",
			value: "eDP-1,1920x1200,0x0,scale:2,bitdepth:10,vrr:1,mirror:DP-1,reserved_area:30 0 0 0",
			want: model.Monitor{
				Name: "eDP-1", Resolution: "1920x1200", Position: "0x0", Scale: 2,
				Bitdepth: model.Ptr(10), VRR: model.Ptr(1), Mirror: model.Ptr("DP-1"),
				Reserved: &model.Reserved{Top: 30},
			},
		},
		{
			name:  "short disable",
			value: "HDMI-A-2,disable",
			want:  model.Monitor{Name: "HDMI-A-2", Scale: 1, Disable: true},
		},
		{
			name:  "disable after fields",
			value: "DP-3,1920x1080,0x0,1,disable",
			want:  model.Monitor{Name: "DP-3", Resolution: "1920x1080", Position: "0x0", Scale: 1, Disable: true},
		},
		{
			name:     "bad tag value and unknown tag",
			value:    "DP-1,1920x1080,0x0,1,transform:sideways,wobble:3",
			want:     model.Monitor{Name: "DP-1", Resolution: "1920x1080", Position: "0x0", Scale: 1},
			warnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warns []error
			got, err := DecodeMonitor(tt.value, collect(&warns))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("monitor mismatch (-want +got):\n%s", diff)
			}
			if len(warns) != tt.warnings {
				t.Errorf("warnings: got %d (%v), want %d", len(warns), warns, tt.warnings)
			}
		})
	}
}

func TestDecodeMonitorTooFewFields(t *testing.T) {
	for _, value := range []string{"", "DP-1", "DP-1,1920x1080"} {
		_, err := DecodeMonitor(value, nil)
		if !errors.Is(err, ErrTooFewFields) {
			t.Errorf("DecodeMonitor(%q): got %v, want ErrTooFewFields", value, err)
		}
	}
}

func TestDecodeDevice(t *testing.T) {
	var warns []error
	got, err := DecodeDevice("logitech-mx, sensitivity:-0.5, natural_scroll:yes, tap-to-click:true, kb_options:grp:alt_shift_toggle, bogus", collect(&warns))
	if err != nil {
		t.Fatal(err)
	}

	want := model.Device{
		Name:          "logitech-mx",
		Sensitivity:   model.Ptr(-0.5),
		NaturalScroll: model.Ptr(true),
		TapToClick:    model.Ptr(true),
		KbOptions:     model.Ptr("grp:alt_shift_toggle"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("device mismatch (-want +got):\n%s", diff)
	}
	if len(warns) != 1 {
		t.Errorf("expected one warning for the untagged field, got %v", warns)
	}

	if _, err := DecodeDevice(" , sensitivity:1", nil); !errors.Is(err, ErrTooFewFields) {
		t.Errorf("missing name: got %v", err)
	}
}

func TestDecodeDeviceBlock(t *testing.T) {
	got, err := DecodeDeviceBlock([]string{
		"name = at-translated-set-2-keyboard",
		"kb_layout = us,de",
		"repeat_rate = 50",
		"# comment lines never reach decoders but are harmless",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := model.Device{
		Name:       "at-translated-set-2-keyboard",
		KbLayout:   model.Ptr("us,de"),
		RepeatRate: model.Ptr(50),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("device mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeDeviceBlock([]string{"sensitivity = 1"}, nil); !errors.Is(err, ErrMissingField) {
		t.Errorf("missing name: got %v, want ErrMissingField", err)
	}
}

func TestDecodeWindowRule(t *testing.T) {
	got, err := DecodeWindowRule("opacity 0.9 0.8, class:^(kitty)$, title:.*")
	if err != nil {
		t.Fatal(err)
	}
	want := model.WindowRule{Rule: "opacity 0.9 0.8", Value: "class:^(kitty)$", Params: []string{"title:.*"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rule mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeWindowRule("float"); !errors.Is(err, ErrTooFewFields) {
		t.Errorf("short rule: got %v", err)
	}
}

func TestDecodeWorkspaceRule(t *testing.T) {
	var warns []error
	got, err := DecodeWorkspaceRule("1, monitor:DP-1, default:true, junk", collect(&warns))
	if err != nil {
		t.Fatal(err)
	}
	want := model.WorkspaceRule{Workspace: "1", Rules: map[string]string{"monitor": "DP-1", "default": "true"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rule mismatch (-want +got):\n%s", diff)
	}
	if len(warns) != 1 {
		t.Errorf("warnings: got %v, want one", warns)
	}
}

func TestDecodeLayerRule(t *testing.T) {
	got, err := DecodeLayerRule("ignorealpha, waybar, 0.5")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(model.LayerRule{Rule: "ignorealpha", Target: "waybar", Value: model.Ptr("0.5")}, got); diff != "" {
		t.Errorf("rule mismatch (-want +got):\n%s", diff)
	}

	got, err = DecodeLayerRule("blur, waybar")
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != nil {
		t.Errorf("Value: got %q, want nil", *got.Value)
	}
}

func TestDecodeKeyBind(t *testing.T) {
	tests := []struct {
		name   string
		family string
		value  string
		want   model.KeyBind
	}{
		{
			name:   "basic",
			family: "bind",
			value:  "SUPER,Q,exec,kitty",
			want:   model.KeyBind{Modifiers: "SUPER", Key: "Q", Dispatchers: []string{"exec"}, Arg: "kitty"},
		},
		{
			name:   "no argument",
			family: "bind",
			value:  "SUPER, M, exit",
			want:   model.KeyBind{Modifiers: "SUPER", Key: "M", Dispatchers: []string{"exit"}},
		},
		{
			name:   "argument keeps commas",
			family: "bindel",
			value:  ", XF86AudioRaiseVolume, exec, wpctl set-volume -l 1, @DEFAULT_AUDIO_SINK@ 5%+",
			want: model.KeyBind{
				Family: "bindel", Key: "XF86AudioRaiseVolume", Dispatchers: []string{"exec"},
				Arg: "wpctl set-volume -l 1, @DEFAULT_AUDIO_SINK@ 5%+",
			},
		},
		{
			name:   "several dispatchers",
			family: "bind",
			value:  "SUPER SHIFT, F, togglefloating pin, active",
			want:   model.KeyBind{Modifiers: "SUPER SHIFT", Key: "F", Dispatchers: []string{"togglefloating", "pin"}, Arg: "active"},
		},
		{
			name:   "tagged metadata",
			family: "bind",
			value:  "SUPER, T, exec, kitty # flags:repeat, desc:Open a terminal, quickly",
			want: model.KeyBind{
				Modifiers: "SUPER", Key: "T", Dispatchers: []string{"exec"}, Arg: "kitty",
				Flags: model.Ptr("repeat"), Description: model.Ptr("Open a terminal, quickly"),
			},
		},
		{
			name:   "bare description",
			family: "bindm",
			value:  "SUPER, mouse:272, movewindow, # drag windows",
			want: model.KeyBind{
				Family: "bindm", Modifiers: "SUPER", Key: "mouse:272", Dispatchers: []string{"movewindow"},
				Description: model.Ptr("drag windows"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeKeyBind(tt.family, tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("keybind mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeKeyBindShort(t *testing.T) {
	_, err := DecodeKeyBind("bind", "SUPER, Q")
	if !errors.Is(err, ErrShortKeyBind) {
		t.Errorf("got %v, want ErrShortKeyBind", err)
	}
}

func TestDecodePermission(t *testing.T) {
	got, err := DecodePermission([]string{
		`path_regex = "/usr/bin/grim"`,
		`permission_type = "screencopy"`,
		"mode = ASK",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := model.Permission{PathRegex: "/usr/bin/grim", Type: "screencopy", Mode: model.PermissionAsk}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"missing mode", []string{`path_regex = "kitty"`, `permission_type = "screencopy"`}, ErrMissingField},
		{"missing type", []string{`path_regex = "kitty"`, "mode = allow"}, ErrMissingField},
		{"missing regex", []string{`permission_type = "screencopy"`, "mode = allow"}, ErrMissingField},
		{"invalid mode", []string{`path_regex = "kitty"`, `permission_type = "screencopy"`, "mode = maybe"}, ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePermission(tt.lines); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodePermissionLine(t *testing.T) {
	got, err := DecodePermissionLine("/usr/bin/(grim|slurp), screencopy, deny")
	if err != nil {
		t.Fatal(err)
	}
	if got.PathRegex != "/usr/bin/(grim|slurp)" || got.Type != "screencopy" || got.Mode != model.PermissionDeny {
		t.Errorf("got %+v", got)
	}

	if _, err := DecodePermissionLine("kitty"); !errors.Is(err, ErrMissingField) {
		t.Errorf("short line: got %v, want ErrMissingField", err)
	}
}

func TestDecodeAnimation(t *testing.T) {
	var warns []error
	tests := []struct {
		value string
		want  model.Animation
	}{
		{"windows, 1, 7, myBezier", model.Animation{Name: "windows", Enabled: true, Speed: 7, Curve: "myBezier"}},
		{"windowsOut, 1, 7, default, popin 80%", model.Animation{Name: "windowsOut", Enabled: true, Speed: 7, Curve: "default", Style: "popin 80%"}},
		{"fade, 0", model.Animation{Name: "fade", Speed: 10, Curve: "default"}},
		{"border, 1, fast", model.Animation{Name: "border", Enabled: true, Speed: 10, Curve: "default"}},
	}
	for _, tt := range tests {
		got, err := DecodeAnimation(tt.value, collect(&warns))
		if err != nil {
			t.Fatalf("DecodeAnimation(%q): %v", tt.value, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("DecodeAnimation(%q) mismatch (-want +got):\n%s", tt.value, diff)
		}
	}
	if len(warns) != 1 {
		t.Errorf("expected one warning for the bad speed, got %v", warns)
	}

	if _, err := DecodeAnimation("windows", nil); !errors.Is(err, ErrTooFewFields) {
		t.Errorf("short animation: got %v", err)
	}
}

func TestDecodeBezier(t *testing.T) {
	name, curve, err := DecodeBezier("myBezier, 0.05, 0.9, 0.1, 1.05")
	if err != nil {
		t.Fatal(err)
	}
	if name != "myBezier" || curve != "0.05, 0.9, 0.1, 1.05" {
		t.Errorf("got %q %q", name, curve)
	}
	if _, _, err := DecodeBezier("lonely"); !errors.Is(err, ErrTooFewFields) {
		t.Errorf("short bezier: got %v", err)
	}
}

func TestDecodeEnv(t *testing.T) {
	tests := []struct {
		value    string
		name     string
		val      string
		wantFail bool
	}{
		{value: "XCURSOR_SIZE,24", name: "XCURSOR_SIZE", val: "24"},
		{value: "QT_QPA_PLATFORM=wayland;xcb", name: "QT_QPA_PLATFORM", val: "wayland;xcb"},
		{value: "GDK_SCALE , 2", name: "GDK_SCALE", val: "2"},
		{value: "LIBVA_DRIVER_NAME,a=b", name: "LIBVA_DRIVER_NAME", val: "a=b"},
		{value: "NOSEPARATOR", wantFail: true},
		{value: ",value", wantFail: true},
	}
	for _, tt := range tests {
		name, val, err := DecodeEnv(tt.value)
		if tt.wantFail {
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("DecodeEnv(%q): got %v, want ErrMalformed", tt.value, err)
			}
			continue
		}
		if err != nil || name != tt.name || val != tt.val {
			t.Errorf("DecodeEnv(%q) = %q, %q, %v", tt.value, name, val, err)
		}
	}
}
