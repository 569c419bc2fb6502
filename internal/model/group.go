package model

// Group holds the group { } section and its groupbar block.
type Group struct {
	AutoGroup                       bool     `yaml:"auto_group" toml:"auto_group"`
	InsertAfterCurrent              bool     `yaml:"insert_after_current" toml:"insert_after_current"`
	FocusRemovedWindow              bool     `yaml:"focus_removed_window" toml:"focus_removed_window"`
	DragIntoGroup                   int      `yaml:"drag_into_group" toml:"drag_into_group"`
	MergeGroupsOnDrag               bool     `yaml:"merge_groups_on_drag" toml:"merge_groups_on_drag"`
	MergeGroupsOnGroupbar           bool     `yaml:"merge_groups_on_groupbar" toml:"merge_groups_on_groupbar"`
	MergeFloatedIntoTiledOnGroupbar bool     `yaml:"merge_floated_into_tiled_on_groupbar" toml:"merge_floated_into_tiled_on_groupbar"`
	GroupOnMoveToWorkspace          bool     `yaml:"group_on_movetoworkspace" toml:"group_on_movetoworkspace"`
	BorderActive                    string   `yaml:"col_border_active" toml:"col_border_active"`
	BorderInactive                  string   `yaml:"col_border_inactive" toml:"col_border_inactive"`
	BorderLockedActive              string   `yaml:"col_border_locked_active" toml:"col_border_locked_active"`
	BorderLockedInactive            string   `yaml:"col_border_locked_inactive" toml:"col_border_locked_inactive"`
	Groupbar                        Groupbar `yaml:"groupbar" toml:"groupbar"`
}

// Groupbar is group:groupbar.
type Groupbar struct {
	Enabled                bool   `yaml:"enabled" toml:"enabled"`
	FontFamily             string `yaml:"font_family" toml:"font_family"`
	FontSize               int    `yaml:"font_size" toml:"font_size"`
	Gradients              bool   `yaml:"gradients" toml:"gradients"`
	Height                 int    `yaml:"height" toml:"height"`
	IndicatorHeight        int    `yaml:"indicator_height" toml:"indicator_height"`
	Stacked                bool   `yaml:"stacked" toml:"stacked"`
	Priority               int    `yaml:"priority" toml:"priority"`
	RenderTitles           bool   `yaml:"render_titles" toml:"render_titles"`
	TextOffset             int    `yaml:"text_offset" toml:"text_offset"`
	Scrolling              bool   `yaml:"scrolling" toml:"scrolling"`
	Rounding               int    `yaml:"rounding" toml:"rounding"`
	GradientRounding       int    `yaml:"gradient_rounding" toml:"gradient_rounding"`
	RoundOnlyEdges         bool   `yaml:"round_only_edges" toml:"round_only_edges"`
	GradientRoundOnlyEdges bool   `yaml:"gradient_round_only_edges" toml:"gradient_round_only_edges"`
	TextColor              string `yaml:"text_color" toml:"text_color"`
	ColActive              string `yaml:"col_active" toml:"col_active"`
	ColInactive            string `yaml:"col_inactive" toml:"col_inactive"`
	ColLockedActive        string `yaml:"col_locked_active" toml:"col_locked_active"`
	ColLockedInactive      string `yaml:"col_locked_inactive" toml:"col_locked_inactive"`
	GapsIn                 int    `yaml:"gaps_in" toml:"gaps_in"`
	GapsOut                int    `yaml:"gaps_out" toml:"gaps_out"`
	KeepUpperGap           bool   `yaml:"keep_upper_gap" toml:"keep_upper_gap"`
}

// DefaultGroup returns the compositor defaults for group.
func DefaultGroup() Group {
	return Group{
		AutoGroup:             true,
		InsertAfterCurrent:    true,
		FocusRemovedWindow:    true,
		DragIntoGroup:         1,
		MergeGroupsOnDrag:     true,
		MergeGroupsOnGroupbar: true,
		BorderActive:          "0x66ffff00",
		BorderInactive:        "0x66777700",
		BorderLockedActive:    "0x66ff5500",
		BorderLockedInactive:  "0x66775500",
		Groupbar:              DefaultGroupbar(),
	}
}

// DefaultGroupbar returns the defaults for group:groupbar.
func DefaultGroupbar() Groupbar {
	return Groupbar{
		Enabled:                true,
		FontSize:               8,
		Height:                 14,
		IndicatorHeight:        3,
		Priority:               3,
		RenderTitles:           true,
		Scrolling:              true,
		Rounding:               1,
		GradientRounding:       2,
		RoundOnlyEdges:         true,
		GradientRoundOnlyEdges: true,
		TextColor:              "0xffffffff",
		ColActive:              "0x66ffff00",
		ColInactive:            "0x66777700",
		ColLockedActive:        "0x66ff5500",
		ColLockedInactive:      "0x66775500",
		GapsIn:                 2,
		GapsOut:                2,
		KeepUpperGap:           true,
	}
}
