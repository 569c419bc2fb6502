package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// ErrNotFinite is returned for float values that parse as NaN or infinity.
var ErrNotFinite = errors.New("value is not a finite number")

// CoercionError reports a value that did not parse as its field's type.
// The field has already been reset to its default when this is returned.
type CoercionError struct {
	Key   string
	Value string
	Kind  string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("invalid %s value %q for %s: %v", e.Kind, e.Value, e.Key, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// ParseBool reports whether s is one of the accepted truthy spellings:
// true, yes, on, 1, or any string containing "yes". Matching is
// case-insensitive. Everything else, including "", is false.
func ParseBool(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "true", "yes", "on", "1":
		return true
	}
	return strings.Contains(v, "yes")
}

// FormatBool renders b the way the config language writes booleans.
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseFloat parses a finite float.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// FormatFloat renders f with the fewest digits that parse back to f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseVec2 parses two whitespace-separated numbers. ok is false when the
// count is not exactly two; err is set when a component is not a number.
func ParseVec2(s string) (v model.Vec2, ok bool, err error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return v, false, nil
	}
	if v.X, err = ParseFloat(parts[0]); err != nil {
		return model.Vec2{}, true, err
	}
	if v.Y, err = ParseFloat(parts[1]); err != nil {
		return model.Vec2{}, true, err
	}
	return v, true, nil
}

// FormatVec2 renders v as "x y".
func FormatVec2(v model.Vec2) string {
	return FormatFloat(v.X) + " " + FormatFloat(v.Y)
}

// ParseReserved parses "top bottom left right".
func ParseReserved(s string) (model.Reserved, error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return model.Reserved{}, fmt.Errorf("expected 4 integers, got %d", len(parts))
	}
	var vals [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return model.Reserved{}, err
		}
		vals[i] = n
	}
	return model.Reserved{Top: vals[0], Bottom: vals[1], Left: vals[2], Right: vals[3]}, nil
}

// FormatReserved renders r as "top bottom left right".
func FormatReserved(r model.Reserved) string {
	return fmt.Sprintf("%d %d %d %d", r.Top, r.Bottom, r.Left, r.Right)
}
