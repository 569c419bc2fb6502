package model

import (
	"fmt"
	"strings"
)

// PermissionMode is the decision recorded for a permission block.
type PermissionMode int

const (
	// PermissionAllow grants the permission without asking.
	PermissionAllow PermissionMode = iota
	// PermissionAsk prompts the user.
	PermissionAsk
	// PermissionDeny refuses the permission.
	PermissionDeny
)

var permissionModeNames = [...]string{"allow", "ask", "deny"}

func (m PermissionMode) String() string {
	if m < 0 || int(m) >= len(permissionModeNames) {
		return fmt.Sprintf("PermissionMode(%d)", int(m))
	}
	return permissionModeNames[m]
}

// ParsePermissionMode matches s case-insensitively against allow, ask and deny.
func ParsePermissionMode(s string) (PermissionMode, bool) {
	for i, name := range permissionModeNames {
		if strings.EqualFold(s, name) {
			return PermissionMode(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (m PermissionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PermissionMode) UnmarshalText(text []byte) error {
	mode, ok := ParsePermissionMode(string(text))
	if !ok {
		return fmt.Errorf("invalid permission mode %q", text)
	}
	*m = mode
	return nil
}

// Permission is one permission { } block. All three fields are required.
type Permission struct {
	PathRegex string         `yaml:"path_regex" toml:"path_regex"`
	Type      string         `yaml:"permission_type" toml:"permission_type"`
	Mode      PermissionMode `yaml:"mode" toml:"mode"`
}
