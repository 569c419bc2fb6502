package schema

import "github.com/donaldgifford/hyprconf/internal/model"

// Key tables, one per block. Order here is the order fields are written.
var (
	generalTable = NewTable("general", model.DefaultGeneral(),
		Int("border_size", func(g *model.General) *int { return &g.BorderSize }),
		Bool("no_border_on_floating", func(g *model.General) *bool { return &g.NoBorderOnFloating }),
		String("gaps_in", func(g *model.General) *string { return &g.GapsIn }),
		String("gaps_out", func(g *model.General) *string { return &g.GapsOut }),
		Int("gaps_workspaces", func(g *model.General) *int { return &g.GapsWorkspaces }),
		String("col.inactive_border", func(g *model.General) *string { return &g.InactiveBorder }),
		String("col.active_border", func(g *model.General) *string { return &g.ActiveBorder }),
		String("col.nogroup_border", func(g *model.General) *string { return &g.NoGroupBorder }),
		String("col.nogroup_border_active", func(g *model.General) *string { return &g.NoGroupBorderActive }),
		String("layout", func(g *model.General) *string { return &g.Layout }),
		Bool("no_focus_fallback", func(g *model.General) *bool { return &g.NoFocusFallback }),
		Bool("resize_on_border", func(g *model.General) *bool { return &g.ResizeOnBorder }),
		Int("extend_border_grab_area", func(g *model.General) *int { return &g.ExtendBorderGrabArea }),
		Bool("hover_icon_on_border", func(g *model.General) *bool { return &g.HoverIconOnBorder }),
		Bool("allow_tearing", func(g *model.General) *bool { return &g.AllowTearing }),
		Int("resize_corner", func(g *model.General) *int { return &g.ResizeCorner }),
	)

	snapTable = NewTable("snap", model.DefaultSnap(),
		Bool("enabled", func(s *model.Snap) *bool { return &s.Enabled }),
		Int("window_gap", func(s *model.Snap) *int { return &s.WindowGap }),
		Int("monitor_gap", func(s *model.Snap) *int { return &s.MonitorGap }),
		Bool("border_overlap", func(s *model.Snap) *bool { return &s.BorderOverlap }),
	)

	decorationTable = NewTable("decoration", model.DefaultDecoration(),
		Int("rounding", func(d *model.Decoration) *int { return &d.Rounding }),
		Float("rounding_power", func(d *model.Decoration) *float64 { return &d.RoundingPower }),
		Float("active_opacity", func(d *model.Decoration) *float64 { return &d.ActiveOpacity }),
		Float("inactive_opacity", func(d *model.Decoration) *float64 { return &d.InactiveOpacity }),
		Float("fullscreen_opacity", func(d *model.Decoration) *float64 { return &d.FullscreenOpacity }),
		Bool("dim_inactive", func(d *model.Decoration) *bool { return &d.DimInactive }),
		Float("dim_strength", func(d *model.Decoration) *float64 { return &d.DimStrength }),
		Float("dim_special", func(d *model.Decoration) *float64 { return &d.DimSpecial }),
		Float("dim_around", func(d *model.Decoration) *float64 { return &d.DimAround }),
		String("screen_shader", func(d *model.Decoration) *string { return &d.ScreenShader }),
		Bool("border_part_of_window", func(d *model.Decoration) *bool { return &d.BorderPartOfWindow }),
	)

	blurTable = NewTable("blur", model.DefaultBlur(),
		Bool("enabled", func(b *model.Blur) *bool { return &b.Enabled }),
		Int("size", func(b *model.Blur) *int { return &b.Size }),
		Int("passes", func(b *model.Blur) *int { return &b.Passes }),
		Bool("ignore_opacity", func(b *model.Blur) *bool { return &b.IgnoreOpacity }),
		Bool("new_optimizations", func(b *model.Blur) *bool { return &b.NewOptimizations }),
		Bool("xray", func(b *model.Blur) *bool { return &b.Xray }),
		Float("noise", func(b *model.Blur) *float64 { return &b.Noise }),
		Float("contrast", func(b *model.Blur) *float64 { return &b.Contrast }),
		Float("brightness", func(b *model.Blur) *float64 { return &b.Brightness }),
		Float("vibrancy", func(b *model.Blur) *float64 { return &b.Vibrancy }),
		Float("vibrancy_darkness", func(b *model.Blur) *float64 { return &b.VibrancyDarkness }),
		Bool("special", func(b *model.Blur) *bool { return &b.Special }),
		Bool("popups", func(b *model.Blur) *bool { return &b.Popups }),
		Float("popups_ignorealpha", func(b *model.Blur) *float64 { return &b.PopupsIgnoreAlpha }),
		Bool("input_methods", func(b *model.Blur) *bool { return &b.InputMethods }),
		Float("input_methods_ignorealpha", func(b *model.Blur) *float64 { return &b.InputMethodsIgnoreAlpha }),
	)

	shadowTable = NewTable("shadow", model.DefaultShadow(),
		Bool("enabled", func(s *model.Shadow) *bool { return &s.Enabled }),
		Int("range", func(s *model.Shadow) *int { return &s.Range }),
		Int("render_power", func(s *model.Shadow) *int { return &s.RenderPower }),
		Bool("sharp", func(s *model.Shadow) *bool { return &s.Sharp }),
		Bool("ignore_window", func(s *model.Shadow) *bool { return &s.IgnoreWindow }),
		String("color", func(s *model.Shadow) *string { return &s.Color }),
		String("color_inactive", func(s *model.Shadow) *string { return &s.ColorInactive }),
		Pair("offset", func(s *model.Shadow) *model.Vec2 { return &s.Offset }),
		Float("scale", func(s *model.Shadow) *float64 { return &s.Scale }),
	)

	animationsTable = NewTable("animations", model.DefaultAnimations(),
		Bool("enabled", func(a *model.Animations) *bool { return &a.Enabled }),
		Bool("first_launch_animation", func(a *model.Animations) *bool { return &a.FirstLaunchAnimation }),
	)

	inputTable = NewTable("input", model.DefaultInput(),
		String("kb_model", func(in *model.Input) *string { return &in.KbModel }),
		String("kb_layout", func(in *model.Input) *string { return &in.KbLayout }),
		String("kb_variant", func(in *model.Input) *string { return &in.KbVariant }),
		String("kb_options", func(in *model.Input) *string { return &in.KbOptions }),
		String("kb_rules", func(in *model.Input) *string { return &in.KbRules }),
		String("kb_file", func(in *model.Input) *string { return &in.KbFile }),
		Bool("numlock_by_default", func(in *model.Input) *bool { return &in.NumlockByDefault }),
		Bool("resolve_binds_by_sym", func(in *model.Input) *bool { return &in.ResolveBindsBySym }),
		Int("repeat_rate", func(in *model.Input) *int { return &in.RepeatRate }),
		Int("repeat_delay", func(in *model.Input) *int { return &in.RepeatDelay }),
		Float("sensitivity", func(in *model.Input) *float64 { return &in.Sensitivity }),
		String("accel_profile", func(in *model.Input) *string { return &in.AccelProfile }),
		Bool("force_no_accel", func(in *model.Input) *bool { return &in.ForceNoAccel }),
		Bool("left_handed", func(in *model.Input) *bool { return &in.LeftHanded }),
		String("scroll_points", func(in *model.Input) *string { return &in.ScrollPoints }),
		String("scroll_method", func(in *model.Input) *string { return &in.ScrollMethod }),
		Int("scroll_button", func(in *model.Input) *int { return &in.ScrollButton }),
		Bool("scroll_button_lock", func(in *model.Input) *bool { return &in.ScrollButtonLock }),
		Float("scroll_factor", func(in *model.Input) *float64 { return &in.ScrollFactor }),
		Bool("natural_scroll", func(in *model.Input) *bool { return &in.NaturalScroll }),
		Int("follow_mouse", func(in *model.Input) *int { return &in.FollowMouse }),
		Float("follow_mouse_threshold", func(in *model.Input) *float64 { return &in.FollowMouseThreshold }),
		Int("focus_on_close", func(in *model.Input) *int { return &in.FocusOnClose }),
		Bool("mouse_refocus", func(in *model.Input) *bool { return &in.MouseRefocus }),
		Int("float_switch_override_focus", func(in *model.Input) *int { return &in.FloatSwitchOverrideFocus }),
		Bool("special_fallthrough", func(in *model.Input) *bool { return &in.SpecialFallthrough }),
		Int("off_window_axis_events", func(in *model.Input) *int { return &in.OffWindowAxisEvents }),
		Int("emulate_discrete_scroll", func(in *model.Input) *int { return &in.EmulateDiscreteScroll }),
		Int("drag_threshold", func(in *model.Input) *int { return &in.DragThreshold }),
	)

	touchpadTable = NewTable("touchpad", model.DefaultTouchpad(),
		Bool("disable_while_typing", func(tp *model.Touchpad) *bool { return &tp.DisableWhileTyping }),
		Bool("natural_scroll", func(tp *model.Touchpad) *bool { return &tp.NaturalScroll }),
		Float("scroll_factor", func(tp *model.Touchpad) *float64 { return &tp.ScrollFactor }),
		Bool("middle_button_emulation", func(tp *model.Touchpad) *bool { return &tp.MiddleButtonEmulation }),
		String("tap_button_map", func(tp *model.Touchpad) *string { return &tp.TapButtonMap }),
		Bool("clickfinger_behavior", func(tp *model.Touchpad) *bool { return &tp.ClickfingerBehavior }),
		Bool("tap-to-click", func(tp *model.Touchpad) *bool { return &tp.TapToClick }).WithAliases("tap_to_click"),
		Bool("drag_lock", func(tp *model.Touchpad) *bool { return &tp.DragLock }),
		Bool("tap-and-drag", func(tp *model.Touchpad) *bool { return &tp.TapAndDrag }).WithAliases("tap_and_drag"),
		Bool("flip_x", func(tp *model.Touchpad) *bool { return &tp.FlipX }),
		Bool("flip_y", func(tp *model.Touchpad) *bool { return &tp.FlipY }),
	)

	touchdeviceTable = NewTable("touchdevice", model.DefaultTouchdevice(),
		Int("transform", func(td *model.Touchdevice) *int { return &td.Transform }),
		String("output", func(td *model.Touchdevice) *string { return &td.Output }),
		Bool("enabled", func(td *model.Touchdevice) *bool { return &td.Enabled }),
	)

	tabletTable = NewTable("tablet", model.DefaultTablet(),
		Int("transform", func(tb *model.Tablet) *int { return &tb.Transform }),
		String("output", func(tb *model.Tablet) *string { return &tb.Output }),
		Pair("region_position", func(tb *model.Tablet) *model.Vec2 { return &tb.RegionPosition }),
		Bool("absolute_region_position", func(tb *model.Tablet) *bool { return &tb.AbsoluteRegionPosition }),
		Pair("region_size", func(tb *model.Tablet) *model.Vec2 { return &tb.RegionSize }),
		Bool("relative_input", func(tb *model.Tablet) *bool { return &tb.RelativeInput }),
		Bool("left_handed", func(tb *model.Tablet) *bool { return &tb.LeftHanded }),
		Pair("active_area_size", func(tb *model.Tablet) *model.Vec2 { return &tb.ActiveAreaSize }),
		Pair("active_area_position", func(tb *model.Tablet) *model.Vec2 { return &tb.ActiveAreaPosition }),
	)

	gesturesTable = NewTable("gestures", model.DefaultGestures(),
		Bool("workspace_swipe", func(g *model.Gestures) *bool { return &g.WorkspaceSwipe }),
		Int("workspace_swipe_fingers", func(g *model.Gestures) *int { return &g.WorkspaceSwipeFingers }),
		Bool("workspace_swipe_min_fingers", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeMinFingers }),
		Int("workspace_swipe_distance", func(g *model.Gestures) *int { return &g.WorkspaceSwipeDistance }),
		Bool("workspace_swipe_touch", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeTouch }),
		Bool("workspace_swipe_invert", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeInvert }),
		Bool("workspace_swipe_touch_invert", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeTouchInvert }),
		Int("workspace_swipe_min_speed_to_force", func(g *model.Gestures) *int { return &g.WorkspaceSwipeMinSpeedToForce }),
		Float("workspace_swipe_cancel_ratio", func(g *model.Gestures) *float64 { return &g.WorkspaceSwipeCancelRatio }),
		Bool("workspace_swipe_create_new", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeCreateNew }),
		Bool("workspace_swipe_direction_lock", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeDirectionLock }),
		Int("workspace_swipe_direction_lock_threshold", func(g *model.Gestures) *int { return &g.WorkspaceSwipeDirectionLockThreshold }),
		Bool("workspace_swipe_forever", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeForever }),
		Bool("workspace_swipe_use_r", func(g *model.Gestures) *bool { return &g.WorkspaceSwipeUseR }),
	)

	groupTable = NewTable("group", model.DefaultGroup(),
		Bool("auto_group", func(g *model.Group) *bool { return &g.AutoGroup }),
		Bool("insert_after_current", func(g *model.Group) *bool { return &g.InsertAfterCurrent }),
		Bool("focus_removed_window", func(g *model.Group) *bool { return &g.FocusRemovedWindow }),
		Int("drag_into_group", func(g *model.Group) *int { return &g.DragIntoGroup }),
		Bool("merge_groups_on_drag", func(g *model.Group) *bool { return &g.MergeGroupsOnDrag }),
		Bool("merge_groups_on_groupbar", func(g *model.Group) *bool { return &g.MergeGroupsOnGroupbar }),
		Bool("merge_floated_into_tiled_on_groupbar", func(g *model.Group) *bool { return &g.MergeFloatedIntoTiledOnGroupbar }),
		Bool("group_on_movetoworkspace", func(g *model.Group) *bool { return &g.GroupOnMoveToWorkspace }),
		String("col.border_active", func(g *model.Group) *string { return &g.BorderActive }),
		String("col.border_inactive", func(g *model.Group) *string { return &g.BorderInactive }),
		String("col.border_locked_active", func(g *model.Group) *string { return &g.BorderLockedActive }),
		String("col.border_locked_inactive", func(g *model.Group) *string { return &g.BorderLockedInactive }),
	)

	groupbarTable = NewTable("groupbar", model.DefaultGroupbar(),
		Bool("enabled", func(gb *model.Groupbar) *bool { return &gb.Enabled }),
		String("font_family", func(gb *model.Groupbar) *string { return &gb.FontFamily }),
		Int("font_size", func(gb *model.Groupbar) *int { return &gb.FontSize }),
		Bool("gradients", func(gb *model.Groupbar) *bool { return &gb.Gradients }),
		Int("height", func(gb *model.Groupbar) *int { return &gb.Height }),
		Int("indicator_height", func(gb *model.Groupbar) *int { return &gb.IndicatorHeight }),
		Bool("stacked", func(gb *model.Groupbar) *bool { return &gb.Stacked }),
		Int("priority", func(gb *model.Groupbar) *int { return &gb.Priority }),
		Bool("render_titles", func(gb *model.Groupbar) *bool { return &gb.RenderTitles }),
		Int("text_offset", func(gb *model.Groupbar) *int { return &gb.TextOffset }),
		Bool("scrolling", func(gb *model.Groupbar) *bool { return &gb.Scrolling }),
		Int("rounding", func(gb *model.Groupbar) *int { return &gb.Rounding }),
		Int("gradient_rounding", func(gb *model.Groupbar) *int { return &gb.GradientRounding }),
		Bool("round_only_edges", func(gb *model.Groupbar) *bool { return &gb.RoundOnlyEdges }),
		Bool("gradient_round_only_edges", func(gb *model.Groupbar) *bool { return &gb.GradientRoundOnlyEdges }),
		String("text_color", func(gb *model.Groupbar) *string { return &gb.TextColor }),
		String("col.active", func(gb *model.Groupbar) *string { return &gb.ColActive }),
		String("col.inactive", func(gb *model.Groupbar) *string { return &gb.ColInactive }),
		String("col.locked_active", func(gb *model.Groupbar) *string { return &gb.ColLockedActive }),
		String("col.locked_inactive", func(gb *model.Groupbar) *string { return &gb.ColLockedInactive }),
		Int("gaps_in", func(gb *model.Groupbar) *int { return &gb.GapsIn }),
		Int("gaps_out", func(gb *model.Groupbar) *int { return &gb.GapsOut }),
		Bool("keep_upper_gap", func(gb *model.Groupbar) *bool { return &gb.KeepUpperGap }),
	)

	miscTable = NewTable("misc", model.DefaultMisc(),
		Bool("disable_hyprland_logo", func(m *model.Misc) *bool { return &m.DisableHyprlandLogo }),
		Bool("disable_splash_rendering", func(m *model.Misc) *bool { return &m.DisableSplashRendering }),
		String("col.splash", func(m *model.Misc) *string { return &m.ColSplash }),
		String("font_family", func(m *model.Misc) *string { return &m.FontFamily }),
		String("splash_font_family", func(m *model.Misc) *string { return &m.SplashFontFamily }),
		Int("force_default_wallpaper", func(m *model.Misc) *int { return &m.ForceDefaultWallpaper }),
		Bool("vfr", func(m *model.Misc) *bool { return &m.VFR }),
		Int("vrr", func(m *model.Misc) *int { return &m.VRR }),
		Bool("mouse_move_enables_dpms", func(m *model.Misc) *bool { return &m.MouseMoveEnablesDPMS }),
		Bool("key_press_enables_dpms", func(m *model.Misc) *bool { return &m.KeyPressEnablesDPMS }),
		Bool("always_follow_on_dnd", func(m *model.Misc) *bool { return &m.AlwaysFollowOnDnd }),
		Bool("layers_hog_keyboard_focus", func(m *model.Misc) *bool { return &m.LayersHogKeyboardFocus }),
		Bool("animate_manual_resizes", func(m *model.Misc) *bool { return &m.AnimateManualResizes }),
		Bool("animate_mouse_windowdragging", func(m *model.Misc) *bool { return &m.AnimateMouseWindowdragging }),
		Bool("disable_autoreload", func(m *model.Misc) *bool { return &m.DisableAutoreload }),
		Bool("enable_swallow", func(m *model.Misc) *bool { return &m.EnableSwallow }),
		String("swallow_regex", func(m *model.Misc) *string { return &m.SwallowRegex }),
		String("swallow_exception_regex", func(m *model.Misc) *string { return &m.SwallowExceptionRegex }),
		Bool("focus_on_activate", func(m *model.Misc) *bool { return &m.FocusOnActivate }),
		Bool("mouse_move_focuses_monitor", func(m *model.Misc) *bool { return &m.MouseMoveFocusesMonitor }),
		Bool("render_ahead_of_time", func(m *model.Misc) *bool { return &m.RenderAheadOfTime }),
		Int("render_ahead_safezone", func(m *model.Misc) *int { return &m.RenderAheadSafezone }),
		Bool("allow_session_lock_restore", func(m *model.Misc) *bool { return &m.AllowSessionLockRestore }),
		String("background_color", func(m *model.Misc) *string { return &m.BackgroundColor }),
		Bool("close_special_on_empty", func(m *model.Misc) *bool { return &m.CloseSpecialOnEmpty }),
		Int("new_window_takes_over_fullscreen", func(m *model.Misc) *int { return &m.NewWindowTakesOverFullscreen }),
		Bool("exit_window_retains_fullscreen", func(m *model.Misc) *bool { return &m.ExitWindowRetainsFullscreen }),
		Int("initial_workspace_tracking", func(m *model.Misc) *int { return &m.InitialWorkspaceTracking }),
		Bool("middle_click_paste", func(m *model.Misc) *bool { return &m.MiddleClickPaste }),
		Int("render_unfocused_fps", func(m *model.Misc) *int { return &m.RenderUnfocusedFPS }),
		Bool("disable_xdg_env_checks", func(m *model.Misc) *bool { return &m.DisableXdgEnvChecks }),
		Bool("disable_hyprland_qtutils_check", func(m *model.Misc) *bool { return &m.DisableHyprlandQtutilsCheck }),
		Int("lockdead_screen_delay", func(m *model.Misc) *int { return &m.LockdeadScreenDelay }),
		Bool("enable_anr_dialog", func(m *model.Misc) *bool { return &m.EnableAnrDialog }),
		Int("anr_missed_pings", func(m *model.Misc) *int { return &m.AnrMissedPings }),
	)

	bindsTable = NewTable("binds", model.DefaultBinds(),
		Bool("pass_mouse_when_bound", func(b *model.Binds) *bool { return &b.PassMouseWhenBound }),
		Int("scroll_event_delay", func(b *model.Binds) *int { return &b.ScrollEventDelay }),
		Bool("workspace_back_and_forth", func(b *model.Binds) *bool { return &b.WorkspaceBackAndForth }),
		Bool("hide_special_on_workspace_change", func(b *model.Binds) *bool { return &b.HideSpecialOnWorkspaceChange }),
		Bool("allow_workspace_cycles", func(b *model.Binds) *bool { return &b.AllowWorkspaceCycles }),
		Int("workspace_center_on", func(b *model.Binds) *int { return &b.WorkspaceCenterOn }),
		Int("focus_preferred_method", func(b *model.Binds) *int { return &b.FocusPreferredMethod }),
		Bool("ignore_group_lock", func(b *model.Binds) *bool { return &b.IgnoreGroupLock }),
		Bool("movefocus_cycles_fullscreen", func(b *model.Binds) *bool { return &b.MovefocusCyclesFullscreen }),
		Bool("movefocus_cycles_groupfirst", func(b *model.Binds) *bool { return &b.MovefocusCyclesGroupfirst }),
		Bool("disable_keybind_grabbing", func(b *model.Binds) *bool { return &b.DisableKeybindGrabbing }),
		Bool("window_direction_monitor_fallback", func(b *model.Binds) *bool { return &b.WindowDirectionMonitorFallback }),
		Bool("allow_pin_fullscreen", func(b *model.Binds) *bool { return &b.AllowPinFullscreen }),
	)

	xwaylandTable = NewTable("xwayland", model.DefaultXWayland(),
		Bool("enabled", func(x *model.XWayland) *bool { return &x.Enabled }),
		Bool("use_nearest_neighbor", func(x *model.XWayland) *bool { return &x.UseNearestNeighbor }),
		Bool("force_zero_scaling", func(x *model.XWayland) *bool { return &x.ForceZeroScaling }),
		Bool("create_abstract_socket", func(x *model.XWayland) *bool { return &x.CreateAbstractSocket }),
	)

	openglTable = NewTable("opengl", model.DefaultOpenGL(),
		Bool("nvidia_anti_flicker", func(o *model.OpenGL) *bool { return &o.NvidiaAntiFlicker }),
	)

	renderTable = NewTable("render", model.DefaultRender(),
		Int("explicit_sync", func(r *model.Render) *int { return &r.ExplicitSync }),
		Int("explicit_sync_kms", func(r *model.Render) *int { return &r.ExplicitSyncKMS }),
		Int("direct_scanout", func(r *model.Render) *int { return &r.DirectScanout }),
		Bool("expand_undersized_textures", func(r *model.Render) *bool { return &r.ExpandUndersizedTextures }),
		Bool("xp_mode", func(r *model.Render) *bool { return &r.XPMode }),
		Int("ctm_animation", func(r *model.Render) *int { return &r.CTMAnimation }),
		Int("cm_fs_passthrough", func(r *model.Render) *int { return &r.CMFSPassthrough }),
		Bool("cm_enabled", func(r *model.Render) *bool { return &r.CMEnabled }),
	)

	cursorTable = NewTable("cursor", model.DefaultCursor(),
		Bool("sync_gsettings_theme", func(c *model.Cursor) *bool { return &c.SyncGsettingsTheme }),
		Int("no_hardware_cursors", func(c *model.Cursor) *int { return &c.NoHardwareCursors }),
		Int("no_break_fs_vrr", func(c *model.Cursor) *int { return &c.NoBreakFSVRR }),
		Int("min_refresh_rate", func(c *model.Cursor) *int { return &c.MinRefreshRate }),
		Int("hotspot_padding", func(c *model.Cursor) *int { return &c.HotspotPadding }),
		Float("inactive_timeout", func(c *model.Cursor) *float64 { return &c.InactiveTimeout }),
		Bool("no_warps", func(c *model.Cursor) *bool { return &c.NoWarps }),
		Bool("persistent_warps", func(c *model.Cursor) *bool { return &c.PersistentWarps }),
		Int("warp_on_change_workspace", func(c *model.Cursor) *int { return &c.WarpOnChangeWorkspace }),
		Int("warp_on_toggle_special", func(c *model.Cursor) *int { return &c.WarpOnToggleSpecial }),
		String("default_monitor", func(c *model.Cursor) *string { return &c.DefaultMonitor }),
		Float("zoom_factor", func(c *model.Cursor) *float64 { return &c.ZoomFactor }),
		Bool("zoom_rigid", func(c *model.Cursor) *bool { return &c.ZoomRigid }),
		Bool("enable_hyprcursor", func(c *model.Cursor) *bool { return &c.EnableHyprcursor }),
		Bool("hide_on_key_press", func(c *model.Cursor) *bool { return &c.HideOnKeyPress }),
		Bool("hide_on_touch", func(c *model.Cursor) *bool { return &c.HideOnTouch }),
		Int("use_cpu_buffer", func(c *model.Cursor) *int { return &c.UseCPUBuffer }),
		Bool("warp_back_after_non_mouse_input", func(c *model.Cursor) *bool { return &c.WarpBackAfterNonMouseInput }),
	)

	dwindleTable = NewTable("dwindle", model.DefaultDwindle(),
		Bool("pseudotile", func(d *model.Dwindle) *bool { return &d.Pseudotile }),
		Bool("preserve_split", func(d *model.Dwindle) *bool { return &d.PreserveSplit }),
		Bool("smart_split", func(d *model.Dwindle) *bool { return &d.SmartSplit }),
		Int("force_split", func(d *model.Dwindle) *int { return &d.ForceSplit }),
		Bool("permanent_direction_override", func(d *model.Dwindle) *bool { return &d.PermanentDirectionOverride }),
		Float("special_scale_factor", func(d *model.Dwindle) *float64 { return &d.SpecialScaleFactor }),
		Float("split_width_multiplier", func(d *model.Dwindle) *float64 { return &d.SplitWidthMultiplier }),
		Bool("use_active_for_splits", func(d *model.Dwindle) *bool { return &d.UseActiveForSplits }),
		Float("default_split_ratio", func(d *model.Dwindle) *float64 { return &d.DefaultSplitRatio }),
		Int("split_bias", func(d *model.Dwindle) *int { return &d.SplitBias }),
		Bool("smart_resizing", func(d *model.Dwindle) *bool { return &d.SmartResizing }),
	)

	masterTable = NewTable("master", model.DefaultMaster(),
		Bool("allow_small_split", func(m *model.Master) *bool { return &m.AllowSmallSplit }),
		Float("special_scale_factor", func(m *model.Master) *float64 { return &m.SpecialScaleFactor }),
		Float("mfact", func(m *model.Master) *float64 { return &m.Mfact }),
		String("new_status", func(m *model.Master) *string { return &m.NewStatus }),
		Bool("new_on_top", func(m *model.Master) *bool { return &m.NewOnTop }),
		String("new_on_active", func(m *model.Master) *string { return &m.NewOnActive }),
		String("orientation", func(m *model.Master) *string { return &m.Orientation }),
		Bool("inherit_fullscreen", func(m *model.Master) *bool { return &m.InheritFullscreen }),
		Int("slave_count_for_center_master", func(m *model.Master) *int { return &m.SlaveCountForCenterMaster }),
		Bool("center_master_slaves_on_right", func(m *model.Master) *bool { return &m.CenterMasterSlavesOnRight }),
		Bool("smart_resizing", func(m *model.Master) *bool { return &m.SmartResizing }),
		Bool("drop_at_cursor", func(m *model.Master) *bool { return &m.DropAtCursor }),
		Bool("always_keep_position", func(m *model.Master) *bool { return &m.AlwaysKeepPosition }),
	)

	debugTable = NewTable("debug", model.DefaultDebug(),
		Bool("overlay", func(d *model.Debug) *bool { return &d.Overlay }),
		Bool("damage_blink", func(d *model.Debug) *bool { return &d.DamageBlink }),
		Bool("disable_logs", func(d *model.Debug) *bool { return &d.DisableLogs }),
		Bool("disable_time", func(d *model.Debug) *bool { return &d.DisableTime }),
		Int("damage_tracking", func(d *model.Debug) *int { return &d.DamageTracking }),
		Bool("enable_stdout_logs", func(d *model.Debug) *bool { return &d.EnableStdoutLogs }),
		Int("manual_crash", func(d *model.Debug) *int { return &d.ManualCrash }),
		Bool("suppress_errors", func(d *model.Debug) *bool { return &d.SuppressErrors }),
		Int("watchdog_timeout", func(d *model.Debug) *int { return &d.WatchdogTimeout }),
		Bool("disable_scale_checks", func(d *model.Debug) *bool { return &d.DisableScaleChecks }),
		Int("error_limit", func(d *model.Debug) *int { return &d.ErrorLimit }),
		Int("error_position", func(d *model.Debug) *int { return &d.ErrorPosition }),
		Bool("colored_stdout_logs", func(d *model.Debug) *bool { return &d.ColoredStdoutLogs }),
		Bool("pass", func(d *model.Debug) *bool { return &d.Pass }),
		Bool("full_cm_proto", func(d *model.Debug) *bool { return &d.FullCMProto }),
	)

	ecosystemTable = NewTable("ecosystem", model.Ecosystem{},
		Bool("no_update_news", func(e *model.Ecosystem) *bool { return &e.NoUpdateNews }),
		Bool("no_donation_nag", func(e *model.Ecosystem) *bool { return &e.NoDonationNag }),
		Bool("enforce_permissions", func(e *model.Ecosystem) *bool { return &e.EnforcePermissions }),
	)

	experimentalTable = NewTable("experimental", model.Experimental{},
		Bool("xx_color_management_v4", func(e *model.Experimental) *bool { return &e.XXColorManagementV4 }),
	)
)

// DeviceTable is the set of tagged attributes accepted on device lines and
// inside device blocks.
var DeviceTable = NewTable("device", model.Device{},
	OptFloat("sensitivity", func(d *model.Device) **float64 { return &d.Sensitivity }),
	OptString("accel_profile", func(d *model.Device) **string { return &d.AccelProfile }),
	OptString("kb_layout", func(d *model.Device) **string { return &d.KbLayout }),
	OptString("kb_model", func(d *model.Device) **string { return &d.KbModel }),
	OptString("kb_options", func(d *model.Device) **string { return &d.KbOptions }),
	OptString("kb_rules", func(d *model.Device) **string { return &d.KbRules }),
	OptString("kb_variant", func(d *model.Device) **string { return &d.KbVariant }),
	OptInt("repeat_delay", func(d *model.Device) **int { return &d.RepeatDelay }),
	OptInt("repeat_rate", func(d *model.Device) **int { return &d.RepeatRate }),
	OptBool("natural_scroll", func(d *model.Device) **bool { return &d.NaturalScroll }),
	OptBool("tap-and-drag", func(d *model.Device) **bool { return &d.TapAndDrag }).WithAliases("tap_and_drag"),
	OptString("tap_button_map", func(d *model.Device) **string { return &d.TapButtonMap }),
	OptBool("tap-to-click", func(d *model.Device) **bool { return &d.TapToClick }).WithAliases("tap_to_click"),
	OptBool("middle_button_emulation", func(d *model.Device) **bool { return &d.MiddleButtonEmulation }),
	OptBool("clickfinger_behavior", func(d *model.Device) **bool { return &d.ClickfingerBehavior }),
	OptBool("drag_lock", func(d *model.Device) **bool { return &d.DragLock }),
	OptBool("left_handed", func(d *model.Device) **bool { return &d.LeftHanded }),
	OptInt("scroll_button", func(d *model.Device) **int { return &d.ScrollButton }),
	OptString("scroll_method", func(d *model.Device) **string { return &d.ScrollMethod }),
	OptInt("transform", func(d *model.Device) **int { return &d.Transform }),
	OptString("output", func(d *model.Device) **string { return &d.Output }),
	OptBool("enabled", func(d *model.Device) **bool { return &d.Enabled }),
	OptBool("keybinds", func(d *model.Device) **bool { return &d.Keybinds }),
)

// MonitorTags is the set of tag:value attributes accepted on monitor lines.
// Scale is positional and is not part of this table.
var MonitorTags = NewTable("monitor", model.NewMonitor(""),
	OptInt("transform", func(m *model.Monitor) **int { return &m.Transform }),
	OptString("mirror", func(m *model.Monitor) **string { return &m.Mirror }),
	OptInt("bitdepth", func(m *model.Monitor) **int { return &m.Bitdepth }),
	OptString("color_management", func(m *model.Monitor) **string { return &m.ColorManagement }),
	OptFloat("sdr_brightness", func(m *model.Monitor) **float64 { return &m.SDRBrightness }),
	OptFloat("sdr_saturation", func(m *model.Monitor) **float64 { return &m.SDRSaturation }),
	OptInt("vrr", func(m *model.Monitor) **int { return &m.VRR }),
	OptReserved("reserved_area", func(m *model.Monitor) **model.Reserved { return &m.Reserved }),
)
