package model

// Vec2 is a two-component value such as an offset or an area size.
// It is written as two whitespace-separated numbers.
type Vec2 struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Reserved is a monitor's reserved area, written as "top bottom left right".
type Reserved struct {
	Top    int `yaml:"top" toml:"top"`
	Bottom int `yaml:"bottom" toml:"bottom"`
	Left   int `yaml:"left" toml:"left"`
	Right  int `yaml:"right" toml:"right"`
}
