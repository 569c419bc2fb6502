package model

// Device is a per-device input override. Every attribute is optional and
// mirrors the Input field of the same name.
type Device struct {
	Name                  string   `yaml:"name" toml:"name"`
	Sensitivity           *float64 `yaml:"sensitivity,omitempty" toml:"sensitivity,omitempty"`
	AccelProfile          *string  `yaml:"accel_profile,omitempty" toml:"accel_profile,omitempty"`
	KbLayout              *string  `yaml:"kb_layout,omitempty" toml:"kb_layout,omitempty"`
	KbModel               *string  `yaml:"kb_model,omitempty" toml:"kb_model,omitempty"`
	KbOptions             *string  `yaml:"kb_options,omitempty" toml:"kb_options,omitempty"`
	KbRules               *string  `yaml:"kb_rules,omitempty" toml:"kb_rules,omitempty"`
	KbVariant             *string  `yaml:"kb_variant,omitempty" toml:"kb_variant,omitempty"`
	RepeatDelay           *int     `yaml:"repeat_delay,omitempty" toml:"repeat_delay,omitempty"`
	RepeatRate            *int     `yaml:"repeat_rate,omitempty" toml:"repeat_rate,omitempty"`
	NaturalScroll         *bool    `yaml:"natural_scroll,omitempty" toml:"natural_scroll,omitempty"`
	TapAndDrag            *bool    `yaml:"tap_and_drag,omitempty" toml:"tap_and_drag,omitempty"`
	TapButtonMap          *string  `yaml:"tap_button_map,omitempty" toml:"tap_button_map,omitempty"`
	TapToClick            *bool    `yaml:"tap_to_click,omitempty" toml:"tap_to_click,omitempty"`
	MiddleButtonEmulation *bool    `yaml:"middle_button_emulation,omitempty" toml:"middle_button_emulation,omitempty"`
	ClickfingerBehavior   *bool    `yaml:"clickfinger_behavior,omitempty" toml:"clickfinger_behavior,omitempty"`
	DragLock              *bool    `yaml:"drag_lock,omitempty" toml:"drag_lock,omitempty"`
	LeftHanded            *bool    `yaml:"left_handed,omitempty" toml:"left_handed,omitempty"`
	ScrollButton          *int     `yaml:"scroll_button,omitempty" toml:"scroll_button,omitempty"`
	ScrollMethod          *string  `yaml:"scroll_method,omitempty" toml:"scroll_method,omitempty"`
	Transform             *int     `yaml:"transform,omitempty" toml:"transform,omitempty"`
	Output                *string  `yaml:"output,omitempty" toml:"output,omitempty"`
	Enabled               *bool    `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Keybinds              *bool    `yaml:"keybinds,omitempty" toml:"keybinds,omitempty"`
}

// Clone returns a deep copy of the device.
func (d Device) Clone() Device {
	d.Sensitivity = clonePtr(d.Sensitivity)
	d.AccelProfile = clonePtr(d.AccelProfile)
	d.KbLayout = clonePtr(d.KbLayout)
	d.KbModel = clonePtr(d.KbModel)
	d.KbOptions = clonePtr(d.KbOptions)
	d.KbRules = clonePtr(d.KbRules)
	d.KbVariant = clonePtr(d.KbVariant)
	d.RepeatDelay = clonePtr(d.RepeatDelay)
	d.RepeatRate = clonePtr(d.RepeatRate)
	d.NaturalScroll = clonePtr(d.NaturalScroll)
	d.TapAndDrag = clonePtr(d.TapAndDrag)
	d.TapButtonMap = clonePtr(d.TapButtonMap)
	d.TapToClick = clonePtr(d.TapToClick)
	d.MiddleButtonEmulation = clonePtr(d.MiddleButtonEmulation)
	d.ClickfingerBehavior = clonePtr(d.ClickfingerBehavior)
	d.DragLock = clonePtr(d.DragLock)
	d.LeftHanded = clonePtr(d.LeftHanded)
	d.ScrollButton = clonePtr(d.ScrollButton)
	d.ScrollMethod = clonePtr(d.ScrollMethod)
	d.Transform = clonePtr(d.Transform)
	d.Output = clonePtr(d.Output)
	d.Enabled = clonePtr(d.Enabled)
	d.Keybinds = clonePtr(d.Keybinds)
	return d
}
