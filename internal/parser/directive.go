// Package parser converts configuration source text into a model.Config.
package parser

// Kind classifies a single trimmed source line.
type Kind int

const (
	// KindBlank is an empty line.
	KindBlank Kind = iota
	// KindComment is a line starting with #.
	KindComment
	// KindVariable is a "$name = value" definition.
	KindVariable
	// KindEnv is an "env = NAME,VALUE" definition.
	KindEnv
	// KindAutostart is an "exec-once = command" line.
	KindAutostart
	// KindSource is a "source = path" line. It is recognized and ignored.
	KindSource
	// KindSectionOpen is "name {" at top level.
	KindSectionOpen
	// KindNestedOpen is "name {" inside a section.
	KindNestedOpen
	// KindClose is a line starting with }.
	KindClose
	// KindMonitor is a "monitor = ..." entity line.
	KindMonitor
	// KindDevice is a "device = name,tag:value,..." entity line.
	KindDevice
	// KindWindowRule is a "windowrule = ..." or "windowrulev2 = ..." line.
	KindWindowRule
	// KindWorkspaceRule is a "workspace = ..." line.
	KindWorkspaceRule
	// KindLayerRule is a "layerrule = ..." line.
	KindLayerRule
	// KindKeyBind is any bind-family line (bind, bindl, bindr, ...).
	KindKeyBind
	// KindSubmap is a "submap = name" or "submap = reset" marker.
	KindSubmap
	// KindBezier is a "bezier = name,curve" line.
	KindBezier
	// KindAnimation is an "animation = name,onoff,speed,curve" line.
	KindAnimation
	// KindPermission is a one-line "permission = regex,type,mode" form.
	KindPermission
	// KindKeyValue is any other key = value pair.
	KindKeyValue
	// KindUnknown is a line that matches nothing above.
	KindUnknown
)

var kindNames = [...]string{
	"Blank", "Comment", "Variable", "Env", "Autostart", "Source",
	"SectionOpen", "NestedOpen", "Close", "Monitor", "Device", "WindowRule",
	"WorkspaceRule", "LayerRule", "KeyBind", "Submap", "Bezier", "Animation",
	"Permission", "KeyValue", "Unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Depth is the block nesting level the parser is currently at.
type Depth int

// Nesting levels. The language allows at most InNested.
const (
	TopLevel Depth = iota
	InSection
	InNested
)

// Directive is a classified line.
type Directive struct {
	Kind Kind
	Line int    // 1-indexed source line number.
	Raw  string // Trimmed source text.

	// Key is the directive keyword, variable name or block name.
	Key string
	// Value is the text after the first '=' (trimmed), or for block opens
	// the text following '{' on the same line.
	Value string
}
