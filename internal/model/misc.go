package model

// Misc holds the misc { } section.
type Misc struct {
	DisableHyprlandLogo          bool   `yaml:"disable_hyprland_logo" toml:"disable_hyprland_logo"`
	DisableSplashRendering       bool   `yaml:"disable_splash_rendering" toml:"disable_splash_rendering"`
	ColSplash                    string `yaml:"col_splash" toml:"col_splash"`
	FontFamily                   string `yaml:"font_family" toml:"font_family"`
	SplashFontFamily             string `yaml:"splash_font_family" toml:"splash_font_family"`
	ForceDefaultWallpaper        int    `yaml:"force_default_wallpaper" toml:"force_default_wallpaper"`
	VFR                          bool   `yaml:"vfr" toml:"vfr"`
	VRR                          int    `yaml:"vrr" toml:"vrr"`
	MouseMoveEnablesDPMS         bool   `yaml:"mouse_move_enables_dpms" toml:"mouse_move_enables_dpms"`
	KeyPressEnablesDPMS          bool   `yaml:"key_press_enables_dpms" toml:"key_press_enables_dpms"`
	AlwaysFollowOnDnd            bool   `yaml:"always_follow_on_dnd" toml:"always_follow_on_dnd"`
	LayersHogKeyboardFocus       bool   `yaml:"layers_hog_keyboard_focus" toml:"layers_hog_keyboard_focus"`
	AnimateManualResizes         bool   `yaml:"animate_manual_resizes" toml:"animate_manual_resizes"`
	AnimateMouseWindowdragging   bool   `yaml:"animate_mouse_windowdragging" toml:"animate_mouse_windowdragging"`
	DisableAutoreload            bool   `yaml:"disable_autoreload" toml:"disable_autoreload"`
	EnableSwallow                bool   `yaml:"enable_swallow" toml:"enable_swallow"`
	SwallowRegex                 string `yaml:"swallow_regex" toml:"swallow_regex"`
	SwallowExceptionRegex        string `yaml:"swallow_exception_regex" toml:"swallow_exception_regex"`
	FocusOnActivate              bool   `yaml:"focus_on_activate" toml:"focus_on_activate"`
	MouseMoveFocusesMonitor      bool   `yaml:"mouse_move_focuses_monitor" toml:"mouse_move_focuses_monitor"`
	RenderAheadOfTime            bool   `yaml:"render_ahead_of_time" toml:"render_ahead_of_time"`
	RenderAheadSafezone          int    `yaml:"render_ahead_safezone" toml:"render_ahead_safezone"`
	AllowSessionLockRestore      bool   `yaml:"allow_session_lock_restore" toml:"allow_session_lock_restore"`
	BackgroundColor              string `yaml:"background_color" toml:"background_color"`
	CloseSpecialOnEmpty          bool   `yaml:"close_special_on_empty" toml:"close_special_on_empty"`
	NewWindowTakesOverFullscreen int    `yaml:"new_window_takes_over_fullscreen" toml:"new_window_takes_over_fullscreen"`
	ExitWindowRetainsFullscreen  bool   `yaml:"exit_window_retains_fullscreen" toml:"exit_window_retains_fullscreen"`
	InitialWorkspaceTracking     int    `yaml:"initial_workspace_tracking" toml:"initial_workspace_tracking"`
	MiddleClickPaste             bool   `yaml:"middle_click_paste" toml:"middle_click_paste"`
	RenderUnfocusedFPS           int    `yaml:"render_unfocused_fps" toml:"render_unfocused_fps"`
	DisableXdgEnvChecks          bool   `yaml:"disable_xdg_env_checks" toml:"disable_xdg_env_checks"`
	DisableHyprlandQtutilsCheck  bool   `yaml:"disable_hyprland_qtutils_check" toml:"disable_hyprland_qtutils_check"`
	LockdeadScreenDelay          int    `yaml:"lockdead_screen_delay" toml:"lockdead_screen_delay"`
	EnableAnrDialog              bool   `yaml:"enable_anr_dialog" toml:"enable_anr_dialog"`
	AnrMissedPings               int    `yaml:"anr_missed_pings" toml:"anr_missed_pings"`
}

// DefaultMisc returns the compositor defaults for misc.
func DefaultMisc() Misc {
	return Misc{
		ColSplash:                "0xffffffff",
		FontFamily:               "Sans",
		ForceDefaultWallpaper:    -1,
		VFR:                      true,
		AlwaysFollowOnDnd:        true,
		LayersHogKeyboardFocus:   true,
		MouseMoveFocusesMonitor:  true,
		RenderAheadSafezone:      1,
		BackgroundColor:          "0x111111",
		CloseSpecialOnEmpty:      true,
		InitialWorkspaceTracking: 1,
		MiddleClickPaste:         true,
		RenderUnfocusedFPS:       15,
		LockdeadScreenDelay:      1000,
		EnableAnrDialog:          true,
		AnrMissedPings:           1,
	}
}
