package model

// Monitor is one "monitor = name,resolution,position,scale[,...]" line.
// Optional tagged attributes are nil when the line does not set them.
type Monitor struct {
	Name            string    `yaml:"name" toml:"name"`
	Resolution      string    `yaml:"resolution" toml:"resolution"`
	Position        string    `yaml:"position" toml:"position"`
	Scale           float64   `yaml:"scale" toml:"scale"`
	Transform       *int      `yaml:"transform,omitempty" toml:"transform,omitempty"`
	Mirror          *string   `yaml:"mirror,omitempty" toml:"mirror,omitempty"`
	Bitdepth        *int      `yaml:"bitdepth,omitempty" toml:"bitdepth,omitempty"`
	ColorManagement *string   `yaml:"color_management,omitempty" toml:"color_management,omitempty"`
	SDRBrightness   *float64  `yaml:"sdr_brightness,omitempty" toml:"sdr_brightness,omitempty"`
	SDRSaturation   *float64  `yaml:"sdr_saturation,omitempty" toml:"sdr_saturation,omitempty"`
	VRR             *int      `yaml:"vrr,omitempty" toml:"vrr,omitempty"`
	Reserved        *Reserved `yaml:"reserved_area,omitempty" toml:"reserved_area,omitempty"`
	Disable         bool      `yaml:"disable,omitempty" toml:"disable,omitempty"`
}

// DefaultMonitorScale is the scale used when a monitor line omits it.
const DefaultMonitorScale = 1.0

// NewMonitor returns a monitor with the given name and the default scale.
func NewMonitor(name string) Monitor {
	return Monitor{Name: name, Scale: DefaultMonitorScale}
}

// Clone returns a deep copy of the monitor.
func (m Monitor) Clone() Monitor {
	m.Transform = clonePtr(m.Transform)
	m.Mirror = clonePtr(m.Mirror)
	m.Bitdepth = clonePtr(m.Bitdepth)
	m.ColorManagement = clonePtr(m.ColorManagement)
	m.SDRBrightness = clonePtr(m.SDRBrightness)
	m.SDRSaturation = clonePtr(m.SDRSaturation)
	m.VRR = clonePtr(m.VRR)
	m.Reserved = clonePtr(m.Reserved)
	return m
}
