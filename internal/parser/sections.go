package parser

import (
	"errors"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/schema"
)

// topLevel handles a directive outside any block.
func (p *state) topLevel(d Directive) error {
	warn := p.reporter(d)

	switch d.Kind {
	case KindMonitor:
		m, err := DecodeMonitor(d.Value, warn)
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.Monitors = append(p.cfg.Monitors, m)

	case KindDevice:
		dev, err := DecodeDevice(d.Value, warn)
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.Devices = append(p.cfg.Devices, dev)

	case KindWindowRule:
		r, err := DecodeWindowRule(d.Value)
		if err != nil {
			return p.skip(d, err)
		}
		r.V2 = d.Key == "windowrulev2"
		p.cfg.WindowRules = append(p.cfg.WindowRules, r)

	case KindWorkspaceRule:
		r, err := DecodeWorkspaceRule(d.Value, warn)
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.WorkspaceRules = append(p.cfg.WorkspaceRules, r)

	case KindLayerRule:
		r, err := DecodeLayerRule(d.Value)
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.LayerRules = append(p.cfg.LayerRules, r)

	case KindPermission:
		perm, err := DecodePermissionLine(d.Value)
		if err != nil {
			return &FormatError{Line: d.Line, Block: "permission", Err: err}
		}
		p.cfg.Permissions = append(p.cfg.Permissions, perm)

	case KindKeyBind, KindSubmap, KindBezier, KindAnimation:
		return p.bindOrAnimation(d)

	case KindKeyValue:
		p.setPath(d)

	default:
		p.log.Debug("ignoring unrecognized line", "line", d.Line, "text", d.Raw)
	}
	return nil
}

// bindOrAnimation handles the directives that may appear both at top level
// and inside the binds or animations blocks.
func (p *state) bindOrAnimation(d Directive) error {
	switch d.Kind {
	case KindKeyBind:
		kb, err := DecodeKeyBind(d.Key, d.Value)
		if err != nil {
			return p.skip(d, err)
		}
		if p.submap != "" {
			p.cfg.Submaps[p.submap] = append(p.cfg.Submaps[p.submap], kb)
		} else {
			p.cfg.Binds = append(p.cfg.Binds, kb)
		}

	case KindSubmap:
		if d.Value == "reset" || d.Value == "" {
			p.submap = ""
			return nil
		}
		p.submap = d.Value
		if _, ok := p.cfg.Submaps[d.Value]; !ok {
			p.cfg.Submaps[d.Value] = nil
		}

	case KindBezier:
		name, curve, err := DecodeBezier(d.Value)
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.Beziers[name] = curve

	case KindAnimation:
		a, err := DecodeAnimation(d.Value, p.reporter(d))
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.Animations.Entries = append(p.cfg.Animations.Entries, a)
	}
	return nil
}

// setPath handles a top-level "section:key = value" or
// "section:nested:key = value" assignment.
func (p *state) setPath(d Directive) {
	parts := strings.Split(d.Key, ":")
	var (
		sec *schema.Section
		ok  bool
		key string
	)
	switch len(parts) {
	case 2:
		sec, ok = schema.Lookup(parts[0])
		key = parts[1]
	case 3:
		sec, ok = schema.LookupPath(parts[0], parts[1])
		key = parts[2]
	}
	if !ok {
		p.log.Debug("ignoring top-level assignment", "line", d.Line, "key", d.Key)
		return
	}
	p.setKey(sec, d.Line, key, d.Value)
}

// setKey decodes one key into sec, routing "nested:key" to a nested table.
func (p *state) setKey(sec *schema.Section, line int, key, value string) {
	if prefix, rest, ok := strings.Cut(key, ":"); ok {
		if n, found := sec.Nested(prefix); found {
			sec, key = n, rest
		}
	}

	known, err := sec.Set(p.cfg, key, value)
	switch {
	case !known:
		p.log.Debug("ignoring unknown key", "line", line, "section", sec.Name, "key", key)
	case err != nil:
		p.log.Warn("value fell back to default", "line", line, "section", sec.Name, "key", key, "error", err)
	}
}

// decodeSection routes a closed top-level block to its decoder.
func (p *state) decodeSection(name string, openLine int, body []bodyLine) error {
	switch name {
	case "permission":
		perm, err := DecodePermission(texts(body))
		if err != nil {
			return &FormatError{Line: openLine, Block: "permission", Err: err}
		}
		p.cfg.Permissions = append(p.cfg.Permissions, perm)
		return nil

	case "device":
		d := Directive{Kind: KindDevice, Line: openLine, Key: "device"}
		dev, err := DecodeDeviceBlock(texts(body), p.reporter(d))
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.Devices = append(p.cfg.Devices, dev)
		return nil
	}

	sec, ok := schema.Lookup(name)
	if !ok {
		p.log.Debug("ignoring unknown section", "line", openLine, "section", name)
		return nil
	}

	for _, line := range body {
		d := Classify(line.text, InSection)
		d.Line = line.num

		switch {
		case d.Kind == KindBlank || d.Kind == KindComment:
			continue
		case d.Kind == KindNestedOpen:
			// Nested blocks are routed by the state machine.
			continue
		case name == "binds" && (d.Kind == KindKeyBind || d.Kind == KindSubmap):
			if err := p.bindOrAnimation(d); err != nil {
				return err
			}
			continue
		case name == "animations" && (d.Kind == KindBezier || d.Kind == KindAnimation):
			if err := p.bindOrAnimation(d); err != nil {
				return err
			}
			continue
		}

		key, value, hasEq := cutAssign(line.text)
		if !hasEq {
			p.log.Debug("ignoring line without assignment", "line", line.num, "section", name, "text", line.text)
			continue
		}
		p.setKey(sec, line.num, key, value)
	}
	return nil
}

// decodeNested routes a closed nested block to its (section, nested) table.
func (p *state) decodeNested(section, nested string, openLine int, body []bodyLine) error {
	sec, ok := schema.LookupPath(section, nested)
	if !ok {
		p.log.Debug("ignoring unknown nested section", "line", openLine, "section", section, "nested", nested)
		return nil
	}

	for _, line := range body {
		key, value, hasEq := cutAssign(line.text)
		if !hasEq {
			continue
		}
		p.setKey(sec, line.num, key, value)
	}
	return nil
}

func texts(body []bodyLine) []string {
	out := make([]string, len(body))
	for i, l := range body {
		out[i] = l.text
	}
	return out
}

// IsFormatError reports whether err is or wraps a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
