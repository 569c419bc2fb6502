package parser

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/model"
	"github.com/donaldgifford/hyprconf/internal/schema"
)

// Reporter receives non-fatal problems found while decoding an entity,
// such as an attribute that failed to parse. It may be nil.
type Reporter func(err error)

func (r Reporter) report(err error) {
	if r != nil && err != nil {
		r(err)
	}
}

// splitFields splits s on commas and trims every field.
func splitFields(s string, n int) []string {
	parts := strings.SplitN(s, ",", n)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// DecodeMonitor decodes the value of a monitor line:
// name,resolution,position[,scale][,tag:value...][,disable].
// "name,disable" is also accepted. An empty name matches any output.
func DecodeMonitor(value string, warn Reporter) (model.Monitor, error) {
	parts := splitFields(value, -1)
	m := model.NewMonitor(parts[0])
	if len(parts) == 2 && parts[1] == "disable" {
		m.Disable = true
		return m, nil
	}
	if len(parts) < 3 {
		return model.Monitor{}, fmt.Errorf("monitor %q: %w: want name,resolution,position", value, ErrTooFewFields)
	}
	m.Resolution, m.Position = parts[1], parts[2]

	for i, field := range parts[3:] {
		if field == "disable" {
			m.Disable = true
			continue
		}

		tag, val, tagged := strings.Cut(field, ":")
		switch {
		case !tagged && i == 0:
			m.Scale = parseScale(field, warn)
		case tagged && tag == "scale":
			m.Scale = parseScale(val, warn)
		case tagged && schema.MonitorTags.Has(tag):
			_, err := schema.MonitorTags.Set(&m, tag, strings.TrimSpace(val))
			warn.report(err)
		default:
			warn.report(fmt.Errorf("monitor %s: unknown attribute %q", m.Name, field))
		}
	}
	return m, nil
}

func parseScale(raw string, warn Reporter) float64 {
	f, err := schema.ParseFloat(raw)
	if err != nil {
		warn.report(&schema.CoercionError{Key: "scale", Value: raw, Kind: "float", Err: err})
		return model.DefaultMonitorScale
	}
	return f
}

// DecodeDevice decodes the value of a device line: name,tag:value,...
func DecodeDevice(value string, warn Reporter) (model.Device, error) {
	parts := splitFields(value, -1)
	if parts[0] == "" {
		return model.Device{}, fmt.Errorf("device: %w: missing name", ErrTooFewFields)
	}

	d := model.Device{Name: parts[0]}
	for _, field := range parts[1:] {
		if field == "" {
			continue
		}
		tag, val, ok := strings.Cut(field, ":")
		if !ok {
			warn.report(fmt.Errorf("device %s: attribute %q is not tag:value", d.Name, field))
			continue
		}
		setDeviceAttr(&d, strings.TrimSpace(tag), strings.TrimSpace(val), warn)
	}
	return d, nil
}

// DecodeDeviceBlock decodes the body of a device { } block. The block must
// set name.
func DecodeDeviceBlock(lines []string, warn Reporter) (model.Device, error) {
	var d model.Device
	for _, line := range lines {
		key, val, ok := cutAssign(line)
		if !ok {
			warn.report(fmt.Errorf("device: ignoring %q", line))
			continue
		}
		if key == "name" {
			d.Name = val
			continue
		}
		setDeviceAttr(&d, key, val, warn)
	}
	if d.Name == "" {
		return model.Device{}, fmt.Errorf("device block: %w: name", ErrMissingField)
	}
	return d, nil
}

func setDeviceAttr(d *model.Device, key, val string, warn Reporter) {
	known, err := schema.DeviceTable.Set(d, key, val)
	if !known {
		warn.report(fmt.Errorf("device %s: unknown attribute %q", d.Name, key))
		return
	}
	warn.report(err)
}

// DecodeWindowRule decodes "rule,value[,param...]".
func DecodeWindowRule(value string) (model.WindowRule, error) {
	parts := splitFields(value, -1)
	if len(parts) < 2 {
		return model.WindowRule{}, fmt.Errorf("windowrule: %w: want rule,value", ErrTooFewFields)
	}
	r := model.WindowRule{Rule: parts[0], Value: parts[1]}
	if len(parts) > 2 {
		r.Params = parts[2:]
	}
	return r, nil
}

// DecodeWorkspaceRule decodes "workspace[,key:value...]".
func DecodeWorkspaceRule(value string, warn Reporter) (model.WorkspaceRule, error) {
	parts := splitFields(value, -1)
	if parts[0] == "" {
		return model.WorkspaceRule{}, fmt.Errorf("workspace: %w: missing workspace", ErrTooFewFields)
	}
	r := model.WorkspaceRule{Workspace: parts[0], Rules: map[string]string{}}
	for _, field := range parts[1:] {
		k, v, ok := strings.Cut(field, ":")
		if !ok || strings.TrimSpace(k) == "" {
			warn.report(fmt.Errorf("workspace %s: rule %q is not key:value", r.Workspace, field))
			continue
		}
		r.Rules[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return r, nil
}

// DecodeLayerRule decodes "rule,target[,value]".
func DecodeLayerRule(value string) (model.LayerRule, error) {
	parts := splitFields(value, 3)
	if len(parts) < 2 {
		return model.LayerRule{}, fmt.Errorf("layerrule: %w: want rule,target", ErrTooFewFields)
	}
	r := model.LayerRule{Rule: parts[0], Target: parts[1]}
	if len(parts) == 3 {
		r.Value = model.Ptr(parts[2])
	}
	return r, nil
}

// DecodeKeyBind decodes "mods,key,dispatcher[,arg]" for the given bind
// family. Text after a '#' in arg is metadata: flags:X, desc:Y, or a bare
// description.
func DecodeKeyBind(family, value string) (model.KeyBind, error) {
	parts := splitFields(value, 4)
	if len(parts) < 3 {
		return model.KeyBind{}, fmt.Errorf("%s %q: %w", family, value, ErrShortKeyBind)
	}

	kb := model.KeyBind{
		Family:      family,
		Modifiers:   parts[0],
		Key:         parts[1],
		Dispatchers: strings.Fields(parts[2]),
	}
	if family == model.FamilyBind {
		kb.Family = ""
	}
	if len(parts) == 4 {
		kb.Arg = parts[3]
	}

	if arg, meta, ok := strings.Cut(kb.Arg, "#"); ok {
		kb.Arg = strings.TrimSpace(arg)
		kb.Flags, kb.Description = decodeBindMeta(meta)
	}
	return kb, nil
}

// decodeBindMeta parses "flags:X, desc:Y". A description runs to the end
// of the metadata, so it may itself contain commas.
func decodeBindMeta(meta string) (flags, desc *string) {
	parts := strings.Split(meta, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, ok := strings.CutPrefix(part, "flags:"); ok {
			flags = model.Ptr(strings.TrimSpace(v))
			continue
		}
		rest := strings.TrimSpace(strings.Join(parts[i:], ","))
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "desc:"))
		desc = &rest
		break
	}
	return flags, desc
}

// DecodePermission decodes the body of a permission { } block. All of
// path_regex, permission_type and mode are required.
func DecodePermission(lines []string) (model.Permission, error) {
	fields := map[string]string{}
	for _, line := range lines {
		key, val, ok := cutAssign(line)
		if !ok {
			continue
		}
		fields[key] = unquote(val)
	}
	return buildPermission(fields["path_regex"], fields["permission_type"], fields["mode"])
}

// DecodePermissionLine decodes the one-line form "regex,type,mode".
func DecodePermissionLine(value string) (model.Permission, error) {
	parts := splitFields(value, 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return buildPermission(unquote(parts[0]), unquote(parts[1]), unquote(parts[2]))
}

func buildPermission(regex, typ, mode string) (model.Permission, error) {
	switch {
	case regex == "":
		return model.Permission{}, fmt.Errorf("%w: path_regex", ErrMissingField)
	case typ == "":
		return model.Permission{}, fmt.Errorf("%w: permission_type", ErrMissingField)
	case mode == "":
		return model.Permission{}, fmt.Errorf("%w: mode", ErrMissingField)
	}
	m, ok := model.ParsePermissionMode(mode)
	if !ok {
		return model.Permission{}, fmt.Errorf("%w %q: want allow, ask or deny", ErrInvalidMode, mode)
	}
	return model.Permission{PathRegex: regex, Type: typ, Mode: m}, nil
}

// DecodeAnimation decodes "name,onoff[,speed[,curve[,style]]]".
func DecodeAnimation(value string, warn Reporter) (model.Animation, error) {
	parts := splitFields(value, 5)
	if len(parts) < 2 || parts[0] == "" {
		return model.Animation{}, fmt.Errorf("animation %q: %w: want name,onoff", value, ErrTooFewFields)
	}

	a := model.Animation{
		Name:    parts[0],
		Enabled: schema.ParseBool(parts[1]),
		Speed:   model.DefaultAnimationSpeed,
		Curve:   model.DefaultAnimationCurve,
	}
	if len(parts) > 2 && parts[2] != "" {
		f, err := schema.ParseFloat(parts[2])
		if err != nil {
			warn.report(&schema.CoercionError{Key: "animation " + a.Name + " speed", Value: parts[2], Kind: "float", Err: err})
		} else {
			a.Speed = f
		}
	}
	if len(parts) > 3 && parts[3] != "" {
		a.Curve = parts[3]
	}
	if len(parts) > 4 {
		a.Style = parts[4]
	}
	return a, nil
}

// DecodeBezier decodes "name,curve".
func DecodeBezier(value string) (name, curve string, err error) {
	name, curve, ok := strings.Cut(value, ",")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("bezier %q: %w: want name,curve", value, ErrTooFewFields)
	}
	return name, strings.TrimSpace(curve), nil
}

// DecodeEnv splits "NAME,VALUE" or "NAME=VALUE" on whichever separator
// comes first.
func DecodeEnv(value string) (name, val string, err error) {
	i := strings.IndexAny(value, ",=")
	if i < 0 {
		return "", "", fmt.Errorf("env %q: %w: want NAME,VALUE", value, ErrMalformed)
	}
	name = strings.TrimSpace(value[:i])
	if name == "" {
		return "", "", fmt.Errorf("env %q: %w: empty name", value, ErrMalformed)
	}
	return name, strings.TrimSpace(value[i+1:]), nil
}

// unquote strips one pair of surrounding double quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
