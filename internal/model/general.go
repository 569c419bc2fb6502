package model

// General holds the general { } section.
type General struct {
	BorderSize           int    `yaml:"border_size" toml:"border_size"`
	NoBorderOnFloating   bool   `yaml:"no_border_on_floating" toml:"no_border_on_floating"`
	GapsIn               string `yaml:"gaps_in" toml:"gaps_in"`
	GapsOut              string `yaml:"gaps_out" toml:"gaps_out"`
	GapsWorkspaces       int    `yaml:"gaps_workspaces" toml:"gaps_workspaces"`
	InactiveBorder       string `yaml:"col_inactive_border" toml:"col_inactive_border"`
	ActiveBorder         string `yaml:"col_active_border" toml:"col_active_border"`
	NoGroupBorder        string `yaml:"col_nogroup_border" toml:"col_nogroup_border"`
	NoGroupBorderActive  string `yaml:"col_nogroup_border_active" toml:"col_nogroup_border_active"`
	Layout               string `yaml:"layout" toml:"layout"`
	NoFocusFallback      bool   `yaml:"no_focus_fallback" toml:"no_focus_fallback"`
	ResizeOnBorder       bool   `yaml:"resize_on_border" toml:"resize_on_border"`
	ExtendBorderGrabArea int    `yaml:"extend_border_grab_area" toml:"extend_border_grab_area"`
	HoverIconOnBorder    bool   `yaml:"hover_icon_on_border" toml:"hover_icon_on_border"`
	AllowTearing         bool   `yaml:"allow_tearing" toml:"allow_tearing"`
	ResizeCorner         int    `yaml:"resize_corner" toml:"resize_corner"`
	Snap                 Snap   `yaml:"snap" toml:"snap"`
}

// Snap is the general:snap nested block.
type Snap struct {
	Enabled       bool `yaml:"enabled" toml:"enabled"`
	WindowGap     int  `yaml:"window_gap" toml:"window_gap"`
	MonitorGap    int  `yaml:"monitor_gap" toml:"monitor_gap"`
	BorderOverlap bool `yaml:"border_overlap" toml:"border_overlap"`
}

// DefaultGeneral returns the compositor defaults for general.
func DefaultGeneral() General {
	return General{
		BorderSize:           1,
		GapsIn:               "5",
		GapsOut:              "20",
		InactiveBorder:       "0xff444444",
		ActiveBorder:         "0xffffffff",
		NoGroupBorder:        "0xffffaaff",
		NoGroupBorderActive:  "0xffff00ff",
		Layout:               "dwindle",
		ExtendBorderGrabArea: 15,
		HoverIconOnBorder:    true,
		Snap:                 DefaultSnap(),
	}
}

// DefaultSnap returns the defaults for general:snap.
func DefaultSnap() Snap {
	return Snap{
		WindowGap:  10,
		MonitorGap: 10,
	}
}
