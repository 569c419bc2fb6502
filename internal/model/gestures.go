package model

// Gestures holds the gestures { } section.
type Gestures struct {
	WorkspaceSwipe                       bool    `yaml:"workspace_swipe" toml:"workspace_swipe"`
	WorkspaceSwipeFingers                int     `yaml:"workspace_swipe_fingers" toml:"workspace_swipe_fingers"`
	WorkspaceSwipeMinFingers             bool    `yaml:"workspace_swipe_min_fingers" toml:"workspace_swipe_min_fingers"`
	WorkspaceSwipeDistance               int     `yaml:"workspace_swipe_distance" toml:"workspace_swipe_distance"`
	WorkspaceSwipeTouch                  bool    `yaml:"workspace_swipe_touch" toml:"workspace_swipe_touch"`
	WorkspaceSwipeInvert                 bool    `yaml:"workspace_swipe_invert" toml:"workspace_swipe_invert"`
	WorkspaceSwipeTouchInvert            bool    `yaml:"workspace_swipe_touch_invert" toml:"workspace_swipe_touch_invert"`
	WorkspaceSwipeMinSpeedToForce        int     `yaml:"workspace_swipe_min_speed_to_force" toml:"workspace_swipe_min_speed_to_force"`
	WorkspaceSwipeCancelRatio            float64 `yaml:"workspace_swipe_cancel_ratio" toml:"workspace_swipe_cancel_ratio"`
	WorkspaceSwipeCreateNew              bool    `yaml:"workspace_swipe_create_new" toml:"workspace_swipe_create_new"`
	WorkspaceSwipeDirectionLock          bool    `yaml:"workspace_swipe_direction_lock" toml:"workspace_swipe_direction_lock"`
	WorkspaceSwipeDirectionLockThreshold int     `yaml:"workspace_swipe_direction_lock_threshold" toml:"workspace_swipe_direction_lock_threshold"`
	WorkspaceSwipeForever                bool    `yaml:"workspace_swipe_forever" toml:"workspace_swipe_forever"`
	WorkspaceSwipeUseR                   bool    `yaml:"workspace_swipe_use_r" toml:"workspace_swipe_use_r"`
}

// DefaultGestures returns the compositor defaults for gestures.
func DefaultGestures() Gestures {
	return Gestures{
		WorkspaceSwipeFingers:                3,
		WorkspaceSwipeDistance:               300,
		WorkspaceSwipeInvert:                 true,
		WorkspaceSwipeMinSpeedToForce:        30,
		WorkspaceSwipeCancelRatio:            0.5,
		WorkspaceSwipeCreateNew:              true,
		WorkspaceSwipeDirectionLock:          true,
		WorkspaceSwipeDirectionLockThreshold: 10,
	}
}
