package model

// Decoration holds the decoration { } section with its blur and shadow
// sub-blocks.
type Decoration struct {
	Rounding           int     `yaml:"rounding" toml:"rounding"`
	RoundingPower      float64 `yaml:"rounding_power" toml:"rounding_power"`
	ActiveOpacity      float64 `yaml:"active_opacity" toml:"active_opacity"`
	InactiveOpacity    float64 `yaml:"inactive_opacity" toml:"inactive_opacity"`
	FullscreenOpacity  float64 `yaml:"fullscreen_opacity" toml:"fullscreen_opacity"`
	DimInactive        bool    `yaml:"dim_inactive" toml:"dim_inactive"`
	DimStrength        float64 `yaml:"dim_strength" toml:"dim_strength"`
	DimSpecial         float64 `yaml:"dim_special" toml:"dim_special"`
	DimAround          float64 `yaml:"dim_around" toml:"dim_around"`
	ScreenShader       string  `yaml:"screen_shader" toml:"screen_shader"`
	BorderPartOfWindow bool    `yaml:"border_part_of_window" toml:"border_part_of_window"`
	Blur               Blur    `yaml:"blur" toml:"blur"`
	Shadow             Shadow  `yaml:"shadow" toml:"shadow"`
}

// Blur is decoration:blur.
type Blur struct {
	Enabled                 bool    `yaml:"enabled" toml:"enabled"`
	Size                    int     `yaml:"size" toml:"size"`
	Passes                  int     `yaml:"passes" toml:"passes"`
	IgnoreOpacity           bool    `yaml:"ignore_opacity" toml:"ignore_opacity"`
	NewOptimizations        bool    `yaml:"new_optimizations" toml:"new_optimizations"`
	Xray                    bool    `yaml:"xray" toml:"xray"`
	Noise                   float64 `yaml:"noise" toml:"noise"`
	Contrast                float64 `yaml:"contrast" toml:"contrast"`
	Brightness              float64 `yaml:"brightness" toml:"brightness"`
	Vibrancy                float64 `yaml:"vibrancy" toml:"vibrancy"`
	VibrancyDarkness        float64 `yaml:"vibrancy_darkness" toml:"vibrancy_darkness"`
	Special                 bool    `yaml:"special" toml:"special"`
	Popups                  bool    `yaml:"popups" toml:"popups"`
	PopupsIgnoreAlpha       float64 `yaml:"popups_ignorealpha" toml:"popups_ignorealpha"`
	InputMethods            bool    `yaml:"input_methods" toml:"input_methods"`
	InputMethodsIgnoreAlpha float64 `yaml:"input_methods_ignorealpha" toml:"input_methods_ignorealpha"`
}

// Shadow is decoration:shadow.
type Shadow struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	Range         int     `yaml:"range" toml:"range"`
	RenderPower   int     `yaml:"render_power" toml:"render_power"`
	Sharp         bool    `yaml:"sharp" toml:"sharp"`
	IgnoreWindow  bool    `yaml:"ignore_window" toml:"ignore_window"`
	Color         string  `yaml:"color" toml:"color"`
	ColorInactive string  `yaml:"color_inactive" toml:"color_inactive"`
	Offset        Vec2    `yaml:"offset" toml:"offset"`
	Scale         float64 `yaml:"scale" toml:"scale"`
}

// DefaultDecoration returns the compositor defaults for decoration.
func DefaultDecoration() Decoration {
	return Decoration{
		RoundingPower:      2.0,
		ActiveOpacity:      1.0,
		InactiveOpacity:    1.0,
		FullscreenOpacity:  1.0,
		DimStrength:        0.5,
		DimSpecial:         0.2,
		DimAround:          0.4,
		BorderPartOfWindow: true,
		Blur:               DefaultBlur(),
		Shadow:             DefaultShadow(),
	}
}

// DefaultBlur returns the defaults for decoration:blur.
func DefaultBlur() Blur {
	return Blur{
		Enabled:                 true,
		Size:                    8,
		Passes:                  1,
		IgnoreOpacity:           true,
		NewOptimizations:        true,
		Noise:                   0.0117,
		Contrast:                0.8916,
		Brightness:              0.8172,
		Vibrancy:                0.1696,
		PopupsIgnoreAlpha:       0.2,
		InputMethodsIgnoreAlpha: 0.2,
	}
}

// DefaultShadow returns the defaults for decoration:shadow.
func DefaultShadow() Shadow {
	return Shadow{
		Enabled:      true,
		Range:        4,
		RenderPower:  3,
		IgnoreWindow: true,
		Color:        "0xee1a1a1a",
		Scale:        1.0,
	}
}
