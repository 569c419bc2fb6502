package model

// Bind families. They differ only in compositor-side binding flags.
const (
	FamilyBind   = "bind"
	FamilyBindL  = "bindl"
	FamilyBindR  = "bindr"
	FamilyBindM  = "bindm"
	FamilyBindE  = "binde"
	FamilyBindLE = "bindle"
	FamilyBindEL = "bindel"
	FamilyUnbind = "unbind"
)

// KeyBind is one "bind = mods,key,dispatcher,arg" line. Metadata after a
// '#' in the argument is split into Flags and Description.
type KeyBind struct {
	Family      string   `yaml:"family,omitempty" toml:"family,omitempty"`
	Modifiers   string   `yaml:"modifiers" toml:"modifiers"`
	Key         string   `yaml:"key" toml:"key"`
	Dispatchers []string `yaml:"dispatchers" toml:"dispatchers"`
	Arg         string   `yaml:"arg" toml:"arg"`
	Flags       *string  `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Description *string  `yaml:"description,omitempty" toml:"description,omitempty"`
}

// IsBindFamily reports whether keyword is one of the bind-family directives.
func IsBindFamily(keyword string) bool {
	switch keyword {
	case FamilyBind, FamilyBindL, FamilyBindR, FamilyBindM, FamilyBindE,
		FamilyBindLE, FamilyBindEL, FamilyUnbind:
		return true
	}
	return false
}

// Keyword returns the directive keyword for the bind, defaulting to "bind".
func (k KeyBind) Keyword() string {
	if k.Family == "" {
		return FamilyBind
	}
	return k.Family
}

// Clone returns a deep copy of the bind.
func (k KeyBind) Clone() KeyBind {
	if k.Dispatchers != nil {
		k.Dispatchers = append([]string(nil), k.Dispatchers...)
	}
	k.Flags = clonePtr(k.Flags)
	k.Description = clonePtr(k.Description)
	return k
}
