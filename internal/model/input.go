package model

// Input holds the input { } section. Touchpad, Touchdevice and Tablet are
// its nested blocks.
type Input struct {
	KbModel                  string      `yaml:"kb_model" toml:"kb_model"`
	KbLayout                 string      `yaml:"kb_layout" toml:"kb_layout"`
	KbVariant                string      `yaml:"kb_variant" toml:"kb_variant"`
	KbOptions                string      `yaml:"kb_options" toml:"kb_options"`
	KbRules                  string      `yaml:"kb_rules" toml:"kb_rules"`
	KbFile                   string      `yaml:"kb_file" toml:"kb_file"`
	NumlockByDefault         bool        `yaml:"numlock_by_default" toml:"numlock_by_default"`
	ResolveBindsBySym        bool        `yaml:"resolve_binds_by_sym" toml:"resolve_binds_by_sym"`
	RepeatRate               int         `yaml:"repeat_rate" toml:"repeat_rate"`
	RepeatDelay              int         `yaml:"repeat_delay" toml:"repeat_delay"`
	Sensitivity              float64     `yaml:"sensitivity" toml:"sensitivity"`
	AccelProfile             string      `yaml:"accel_profile" toml:"accel_profile"`
	ForceNoAccel             bool        `yaml:"force_no_accel" toml:"force_no_accel"`
	LeftHanded               bool        `yaml:"left_handed" toml:"left_handed"`
	ScrollPoints             string      `yaml:"scroll_points" toml:"scroll_points"`
	ScrollMethod             string      `yaml:"scroll_method" toml:"scroll_method"`
	ScrollButton             int         `yaml:"scroll_button" toml:"scroll_button"`
	ScrollButtonLock         bool        `yaml:"scroll_button_lock" toml:"scroll_button_lock"`
	ScrollFactor             float64     `yaml:"scroll_factor" toml:"scroll_factor"`
	NaturalScroll            bool        `yaml:"natural_scroll" toml:"natural_scroll"`
	FollowMouse              int         `yaml:"follow_mouse" toml:"follow_mouse"`
	FollowMouseThreshold     float64     `yaml:"follow_mouse_threshold" toml:"follow_mouse_threshold"`
	FocusOnClose             int         `yaml:"focus_on_close" toml:"focus_on_close"`
	MouseRefocus             bool        `yaml:"mouse_refocus" toml:"mouse_refocus"`
	FloatSwitchOverrideFocus int         `yaml:"float_switch_override_focus" toml:"float_switch_override_focus"`
	SpecialFallthrough       bool        `yaml:"special_fallthrough" toml:"special_fallthrough"`
	OffWindowAxisEvents      int         `yaml:"off_window_axis_events" toml:"off_window_axis_events"`
	EmulateDiscreteScroll    int         `yaml:"emulate_discrete_scroll" toml:"emulate_discrete_scroll"`
	DragThreshold            int         `yaml:"drag_threshold" toml:"drag_threshold"`
	Touchpad                 Touchpad    `yaml:"touchpad" toml:"touchpad"`
	Touchdevice              Touchdevice `yaml:"touchdevice" toml:"touchdevice"`
	Tablet                   Tablet      `yaml:"tablet" toml:"tablet"`
}

// Touchpad is input:touchpad.
type Touchpad struct {
	DisableWhileTyping    bool    `yaml:"disable_while_typing" toml:"disable_while_typing"`
	NaturalScroll         bool    `yaml:"natural_scroll" toml:"natural_scroll"`
	ScrollFactor          float64 `yaml:"scroll_factor" toml:"scroll_factor"`
	MiddleButtonEmulation bool    `yaml:"middle_button_emulation" toml:"middle_button_emulation"`
	TapButtonMap          string  `yaml:"tap_button_map" toml:"tap_button_map"`
	ClickfingerBehavior   bool    `yaml:"clickfinger_behavior" toml:"clickfinger_behavior"`
	TapToClick            bool    `yaml:"tap_to_click" toml:"tap_to_click"`
	DragLock              bool    `yaml:"drag_lock" toml:"drag_lock"`
	TapAndDrag            bool    `yaml:"tap_and_drag" toml:"tap_and_drag"`
	FlipX                 bool    `yaml:"flip_x" toml:"flip_x"`
	FlipY                 bool    `yaml:"flip_y" toml:"flip_y"`
}

// Touchdevice is input:touchdevice.
type Touchdevice struct {
	Transform int    `yaml:"transform" toml:"transform"`
	Output    string `yaml:"output" toml:"output"`
	Enabled   bool   `yaml:"enabled" toml:"enabled"`
}

// Tablet is input:tablet.
type Tablet struct {
	Transform              int    `yaml:"transform" toml:"transform"`
	Output                 string `yaml:"output" toml:"output"`
	RegionPosition         Vec2   `yaml:"region_position" toml:"region_position"`
	AbsoluteRegionPosition bool   `yaml:"absolute_region_position" toml:"absolute_region_position"`
	RegionSize             Vec2   `yaml:"region_size" toml:"region_size"`
	RelativeInput          bool   `yaml:"relative_input" toml:"relative_input"`
	LeftHanded             bool   `yaml:"left_handed" toml:"left_handed"`
	ActiveAreaSize         Vec2   `yaml:"active_area_size" toml:"active_area_size"`
	ActiveAreaPosition     Vec2   `yaml:"active_area_position" toml:"active_area_position"`
}

// DefaultInput returns the compositor defaults for input.
func DefaultInput() Input {
	return Input{
		KbLayout:                 "us",
		RepeatRate:               25,
		RepeatDelay:              600,
		ScrollFactor:             1.0,
		FollowMouse:              1,
		MouseRefocus:             true,
		FloatSwitchOverrideFocus: 1,
		OffWindowAxisEvents:      1,
		EmulateDiscreteScroll:    1,
		Touchpad:                 DefaultTouchpad(),
		Touchdevice:              DefaultTouchdevice(),
		Tablet:                   DefaultTablet(),
	}
}

// DefaultTouchpad returns the defaults for input:touchpad.
func DefaultTouchpad() Touchpad {
	return Touchpad{
		DisableWhileTyping: true,
		ScrollFactor:       1.0,
		TapToClick:         true,
		TapAndDrag:         true,
	}
}

// DefaultTouchdevice returns the defaults for input:touchdevice.
func DefaultTouchdevice() Touchdevice {
	return Touchdevice{
		Transform: -1,
		Output:    "[[Auto]]",
		Enabled:   true,
	}
}

// DefaultTablet returns the defaults for input:tablet.
func DefaultTablet() Tablet {
	return Tablet{Transform: -1}
}
