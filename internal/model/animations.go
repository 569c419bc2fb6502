package model

// Animations holds the animations { } section. Entries are the repeatable
// "animation = ..." lines declared inside it.
type Animations struct {
	Enabled              bool        `yaml:"enabled" toml:"enabled"`
	FirstLaunchAnimation bool        `yaml:"first_launch_animation" toml:"first_launch_animation"`
	Entries              []Animation `yaml:"entries" toml:"entries"`
}

// Animation is one "animation = name,onoff,speed,curve[,style]" line.
type Animation struct {
	Name    string  `yaml:"name" toml:"name"`
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Speed   float64 `yaml:"speed" toml:"speed"`
	Curve   string  `yaml:"curve" toml:"curve"`
	Style   string  `yaml:"style,omitempty" toml:"style,omitempty"`
}

// Default speed and curve for an animation line that omits them.
const (
	DefaultAnimationSpeed = 10.0
	DefaultAnimationCurve = "default"
)

// DefaultAnimations returns the compositor defaults for animations.
func DefaultAnimations() Animations {
	return Animations{
		Enabled:              true,
		FirstLaunchAnimation: true,
		Entries:              []Animation{},
	}
}
