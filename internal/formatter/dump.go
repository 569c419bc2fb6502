package formatter

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// Dump formats.
const (
	DumpYAML = "yaml"
	DumpTOML = "toml"
)

// Dump exports cfg as structured data in the given format ("yaml" or
// "toml"). Optional entity attributes that are unset are omitted.
func Dump(cfg *model.Config, format string) ([]byte, error) {
	switch format {
	case DumpYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil

	case DumpTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(withoutNilSubmaps(cfg)); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown dump format %q (want %s or %s)", format, DumpYAML, DumpTOML)
}

// withoutNilSubmaps returns cfg, or a copy of it in which declared but
// empty submaps hold an empty slice rather than nil.
func withoutNilSubmaps(cfg *model.Config) *model.Config {
	for _, binds := range cfg.Submaps {
		if binds == nil {
			out := cfg.Clone()
			for name, b := range out.Submaps {
				if b == nil {
					out.Submaps[name] = []model.KeyBind{}
				}
			}
			return out
		}
	}
	return cfg
}
