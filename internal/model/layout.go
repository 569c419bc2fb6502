package model

// Dwindle holds the dwindle layout section.
type Dwindle struct {
	Pseudotile                 bool    `yaml:"pseudotile" toml:"pseudotile"`
	PreserveSplit              bool    `yaml:"preserve_split" toml:"preserve_split"`
	SmartSplit                 bool    `yaml:"smart_split" toml:"smart_split"`
	ForceSplit                 int     `yaml:"force_split" toml:"force_split"`
	PermanentDirectionOverride bool    `yaml:"permanent_direction_override" toml:"permanent_direction_override"`
	SpecialScaleFactor         float64 `yaml:"special_scale_factor" toml:"special_scale_factor"`
	SplitWidthMultiplier       float64 `yaml:"split_width_multiplier" toml:"split_width_multiplier"`
	UseActiveForSplits         bool    `yaml:"use_active_for_splits" toml:"use_active_for_splits"`
	DefaultSplitRatio          float64 `yaml:"default_split_ratio" toml:"default_split_ratio"`
	SplitBias                  int     `yaml:"split_bias" toml:"split_bias"`
	SmartResizing              bool    `yaml:"smart_resizing" toml:"smart_resizing"`
}

// Master holds the master layout section.
type Master struct {
	AllowSmallSplit           bool    `yaml:"allow_small_split" toml:"allow_small_split"`
	SpecialScaleFactor        float64 `yaml:"special_scale_factor" toml:"special_scale_factor"`
	Mfact                     float64 `yaml:"mfact" toml:"mfact"`
	NewStatus                 string  `yaml:"new_status" toml:"new_status"`
	NewOnTop                  bool    `yaml:"new_on_top" toml:"new_on_top"`
	NewOnActive               string  `yaml:"new_on_active" toml:"new_on_active"`
	Orientation               string  `yaml:"orientation" toml:"orientation"`
	InheritFullscreen         bool    `yaml:"inherit_fullscreen" toml:"inherit_fullscreen"`
	SlaveCountForCenterMaster int     `yaml:"slave_count_for_center_master" toml:"slave_count_for_center_master"`
	CenterMasterSlavesOnRight bool    `yaml:"center_master_slaves_on_right" toml:"center_master_slaves_on_right"`
	SmartResizing             bool    `yaml:"smart_resizing" toml:"smart_resizing"`
	DropAtCursor              bool    `yaml:"drop_at_cursor" toml:"drop_at_cursor"`
	AlwaysKeepPosition        bool    `yaml:"always_keep_position" toml:"always_keep_position"`
}

// DefaultDwindle returns the compositor defaults for dwindle.
func DefaultDwindle() Dwindle {
	return Dwindle{
		SpecialScaleFactor:   0.8,
		SplitWidthMultiplier: 1.0,
		UseActiveForSplits:   true,
		DefaultSplitRatio:    1.0,
		SmartResizing:        true,
	}
}

// DefaultMaster returns the compositor defaults for master.
func DefaultMaster() Master {
	return Master{
		SpecialScaleFactor:        0.8,
		Mfact:                     0.55,
		NewStatus:                 "slave",
		NewOnActive:               "none",
		Orientation:               "left",
		InheritFullscreen:         true,
		SlaveCountForCenterMaster: 2,
		CenterMasterSlavesOnRight: true,
		SmartResizing:             true,
		DropAtCursor:              true,
	}
}
