package parser

import (
	"strings"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// entityKinds maps directive keywords to their entity kind.
var entityKinds = map[string]Kind{
	"monitor":      KindMonitor,
	"device":       KindDevice,
	"windowrule":   KindWindowRule,
	"windowrulev2": KindWindowRule,
	"workspace":    KindWorkspaceRule,
	"layerrule":    KindLayerRule,
	"submap":       KindSubmap,
	"bezier":       KindBezier,
	"animation":    KindAnimation,
	"permission":   KindPermission,
}

// Classify determines the directive kind of one line. The line is trimmed
// first; depth decides whether "name {" opens a section or a nested block.
// Classify does not look at any other parser state.
func Classify(line string, depth Depth) Directive {
	text := strings.TrimSpace(line)
	d := Directive{Raw: text}

	// 1. Blank line or comment.
	if text == "" {
		d.Kind = KindBlank
		return d
	}
	if strings.HasPrefix(text, "#") {
		d.Kind = KindComment
		return d
	}

	key, value, hasEq := cutAssign(text)

	// 2. Variable definition.
	if strings.HasPrefix(text, "$") {
		name := strings.TrimSpace(strings.TrimPrefix(key, "$"))
		if !hasEq || name == "" {
			d.Kind = KindUnknown
			return d
		}
		d.Kind, d.Key, d.Value = KindVariable, name, value
		return d
	}

	// 3. Global directives, recognized at any depth.
	if hasEq {
		switch key {
		case "env":
			d.Kind, d.Key, d.Value = KindEnv, key, value
			return d
		case "exec-once":
			d.Kind, d.Key, d.Value = KindAutostart, key, value
			return d
		case "source":
			d.Kind, d.Key, d.Value = KindSource, key, value
			return d
		}
	}
	if rest, ok := strings.CutPrefix(text, "source"); ok && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
		d.Kind, d.Key, d.Value = KindSource, "source", strings.TrimSpace(rest)
		return d
	}

	// 4. Block close.
	if strings.HasPrefix(text, "}") {
		d.Kind = KindClose
		d.Value = strings.TrimSpace(text[1:])
		return d
	}

	// 5. Block open: "name {" where the name part holds no '='. Braces
	// inside values (regex quantifiers, for example) are not block opens.
	if name, rest, ok := strings.Cut(text, "{"); ok && !strings.Contains(name, "=") {
		d.Key = strings.TrimSpace(name)
		d.Value = strings.TrimSpace(rest)
		if depth == TopLevel {
			d.Kind = KindSectionOpen
		} else {
			d.Kind = KindNestedOpen
		}
		return d
	}

	if !hasEq {
		d.Kind = KindUnknown
		return d
	}

	// 6. Entity directives and submap markers.
	if kind, ok := entityKinds[key]; ok {
		d.Kind, d.Key, d.Value = kind, key, value
		return d
	}
	if model.IsBindFamily(key) {
		d.Kind, d.Key, d.Value = KindKeyBind, key, value
		return d
	}

	// 7. Generic key = value.
	d.Kind, d.Key, d.Value = KindKeyValue, key, value
	return d
}

// cutAssign splits text on the first '=' and trims both sides.
func cutAssign(text string) (key, value string, ok bool) {
	k, v, ok := strings.Cut(text, "=")
	if !ok {
		return strings.TrimSpace(text), "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}
