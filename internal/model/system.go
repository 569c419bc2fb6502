package model

// Binds holds the binds { } settings section. Keybind lines themselves are
// stored on Config.Binds and Config.Submaps.
type Binds struct {
	PassMouseWhenBound             bool `yaml:"pass_mouse_when_bound" toml:"pass_mouse_when_bound"`
	ScrollEventDelay               int  `yaml:"scroll_event_delay" toml:"scroll_event_delay"`
	WorkspaceBackAndForth          bool `yaml:"workspace_back_and_forth" toml:"workspace_back_and_forth"`
	HideSpecialOnWorkspaceChange   bool `yaml:"hide_special_on_workspace_change" toml:"hide_special_on_workspace_change"`
	AllowWorkspaceCycles           bool `yaml:"allow_workspace_cycles" toml:"allow_workspace_cycles"`
	WorkspaceCenterOn              int  `yaml:"workspace_center_on" toml:"workspace_center_on"`
	FocusPreferredMethod           int  `yaml:"focus_preferred_method" toml:"focus_preferred_method"`
	IgnoreGroupLock                bool `yaml:"ignore_group_lock" toml:"ignore_group_lock"`
	MovefocusCyclesFullscreen      bool `yaml:"movefocus_cycles_fullscreen" toml:"movefocus_cycles_fullscreen"`
	MovefocusCyclesGroupfirst      bool `yaml:"movefocus_cycles_groupfirst" toml:"movefocus_cycles_groupfirst"`
	DisableKeybindGrabbing         bool `yaml:"disable_keybind_grabbing" toml:"disable_keybind_grabbing"`
	WindowDirectionMonitorFallback bool `yaml:"window_direction_monitor_fallback" toml:"window_direction_monitor_fallback"`
	AllowPinFullscreen             bool `yaml:"allow_pin_fullscreen" toml:"allow_pin_fullscreen"`
}

// XWayland holds the xwayland { } section.
type XWayland struct {
	Enabled              bool `yaml:"enabled" toml:"enabled"`
	UseNearestNeighbor   bool `yaml:"use_nearest_neighbor" toml:"use_nearest_neighbor"`
	ForceZeroScaling     bool `yaml:"force_zero_scaling" toml:"force_zero_scaling"`
	CreateAbstractSocket bool `yaml:"create_abstract_socket" toml:"create_abstract_socket"`
}

// OpenGL holds the opengl { } section.
type OpenGL struct {
	NvidiaAntiFlicker bool `yaml:"nvidia_anti_flicker" toml:"nvidia_anti_flicker"`
}

// Render holds the render { } section.
type Render struct {
	ExplicitSync             int  `yaml:"explicit_sync" toml:"explicit_sync"`
	ExplicitSyncKMS          int  `yaml:"explicit_sync_kms" toml:"explicit_sync_kms"`
	DirectScanout            int  `yaml:"direct_scanout" toml:"direct_scanout"`
	ExpandUndersizedTextures bool `yaml:"expand_undersized_textures" toml:"expand_undersized_textures"`
	XPMode                   bool `yaml:"xp_mode" toml:"xp_mode"`
	CTMAnimation             int  `yaml:"ctm_animation" toml:"ctm_animation"`
	CMFSPassthrough          int  `yaml:"cm_fs_passthrough" toml:"cm_fs_passthrough"`
	CMEnabled                bool `yaml:"cm_enabled" toml:"cm_enabled"`
}

// Cursor holds the cursor { } section.
type Cursor struct {
	SyncGsettingsTheme         bool    `yaml:"sync_gsettings_theme" toml:"sync_gsettings_theme"`
	NoHardwareCursors          int     `yaml:"no_hardware_cursors" toml:"no_hardware_cursors"`
	NoBreakFSVRR               int     `yaml:"no_break_fs_vrr" toml:"no_break_fs_vrr"`
	MinRefreshRate             int     `yaml:"min_refresh_rate" toml:"min_refresh_rate"`
	HotspotPadding             int     `yaml:"hotspot_padding" toml:"hotspot_padding"`
	InactiveTimeout            float64 `yaml:"inactive_timeout" toml:"inactive_timeout"`
	NoWarps                    bool    `yaml:"no_warps" toml:"no_warps"`
	PersistentWarps            bool    `yaml:"persistent_warps" toml:"persistent_warps"`
	WarpOnChangeWorkspace      int     `yaml:"warp_on_change_workspace" toml:"warp_on_change_workspace"`
	WarpOnToggleSpecial        int     `yaml:"warp_on_toggle_special" toml:"warp_on_toggle_special"`
	DefaultMonitor             string  `yaml:"default_monitor" toml:"default_monitor"`
	ZoomFactor                 float64 `yaml:"zoom_factor" toml:"zoom_factor"`
	ZoomRigid                  bool    `yaml:"zoom_rigid" toml:"zoom_rigid"`
	EnableHyprcursor           bool    `yaml:"enable_hyprcursor" toml:"enable_hyprcursor"`
	HideOnKeyPress             bool    `yaml:"hide_on_key_press" toml:"hide_on_key_press"`
	HideOnTouch                bool    `yaml:"hide_on_touch" toml:"hide_on_touch"`
	UseCPUBuffer               int     `yaml:"use_cpu_buffer" toml:"use_cpu_buffer"`
	WarpBackAfterNonMouseInput bool    `yaml:"warp_back_after_non_mouse_input" toml:"warp_back_after_non_mouse_input"`
}

// Debug holds the debug { } section.
type Debug struct {
	Overlay            bool `yaml:"overlay" toml:"overlay"`
	DamageBlink        bool `yaml:"damage_blink" toml:"damage_blink"`
	DisableLogs        bool `yaml:"disable_logs" toml:"disable_logs"`
	DisableTime        bool `yaml:"disable_time" toml:"disable_time"`
	DamageTracking     int  `yaml:"damage_tracking" toml:"damage_tracking"`
	EnableStdoutLogs   bool `yaml:"enable_stdout_logs" toml:"enable_stdout_logs"`
	ManualCrash        int  `yaml:"manual_crash" toml:"manual_crash"`
	SuppressErrors     bool `yaml:"suppress_errors" toml:"suppress_errors"`
	WatchdogTimeout    int  `yaml:"watchdog_timeout" toml:"watchdog_timeout"`
	DisableScaleChecks bool `yaml:"disable_scale_checks" toml:"disable_scale_checks"`
	ErrorLimit         int  `yaml:"error_limit" toml:"error_limit"`
	ErrorPosition      int  `yaml:"error_position" toml:"error_position"`
	ColoredStdoutLogs  bool `yaml:"colored_stdout_logs" toml:"colored_stdout_logs"`
	Pass               bool `yaml:"pass" toml:"pass"`
	FullCMProto        bool `yaml:"full_cm_proto" toml:"full_cm_proto"`
}

// Ecosystem holds the ecosystem { } section.
type Ecosystem struct {
	NoUpdateNews       bool `yaml:"no_update_news" toml:"no_update_news"`
	NoDonationNag      bool `yaml:"no_donation_nag" toml:"no_donation_nag"`
	EnforcePermissions bool `yaml:"enforce_permissions" toml:"enforce_permissions"`
}

// Experimental holds the experimental { } section.
type Experimental struct {
	XXColorManagementV4 bool `yaml:"xx_color_management_v4" toml:"xx_color_management_v4"`
}

// DefaultBinds returns the compositor defaults for binds.
func DefaultBinds() Binds {
	return Binds{
		ScrollEventDelay:               300,
		WindowDirectionMonitorFallback: true,
	}
}

// DefaultXWayland returns the compositor defaults for xwayland.
func DefaultXWayland() XWayland {
	return XWayland{Enabled: true, UseNearestNeighbor: true}
}

// DefaultOpenGL returns the compositor defaults for opengl.
func DefaultOpenGL() OpenGL {
	return OpenGL{NvidiaAntiFlicker: true}
}

// DefaultRender returns the compositor defaults for render.
func DefaultRender() Render {
	return Render{
		ExplicitSync:             2,
		ExplicitSyncKMS:          2,
		ExpandUndersizedTextures: true,
		CTMAnimation:             2,
		CMFSPassthrough:          2,
		CMEnabled:                true,
	}
}

// DefaultCursor returns the compositor defaults for cursor.
func DefaultCursor() Cursor {
	return Cursor{
		SyncGsettingsTheme: true,
		NoHardwareCursors:  2,
		NoBreakFSVRR:       2,
		MinRefreshRate:     24,
		HotspotPadding:     1,
		ZoomFactor:         1.0,
		EnableHyprcursor:   true,
		HideOnTouch:        true,
		UseCPUBuffer:       2,
	}
}

// DefaultDebug returns the compositor defaults for debug.
func DefaultDebug() Debug {
	return Debug{
		DisableLogs:       true,
		DisableTime:       true,
		DamageTracking:    2,
		WatchdogTimeout:   5,
		ErrorLimit:        5,
		ColoredStdoutLogs: true,
	}
}
