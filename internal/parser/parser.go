package parser

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// Options controls parser behavior.
type Options struct {
	// Strict turns entity lines that would otherwise be logged and skipped
	// (a short keybind, a monitor without a position, ...) into a
	// FormatError, as well as blocks left open at end of input.
	Strict bool

	// Logger receives unknown-key, fallback and skipped-entity reports.
	// Nil discards them.
	Logger *slog.Logger
}

// Parse converts configuration text into a Config using default options.
func Parse(src string) (*model.Config, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions converts configuration text into a Config. Parsing is
// all-or-nothing: on error no partial Config is returned.
func ParseWithOptions(src string, opts Options) (*model.Config, error) {
	p := newState(opts)
	if err := p.parse(src); err != nil {
		return nil, err
	}
	return p.cfg, nil
}

// ParseFile reads and parses the file at path. Read failures are returned
// as *ReadError; structural failures as *FormatError with Path set.
func ParseFile(path string, opts Options) (*model.Config, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(path, src, opts)
}

// ReadSource reads the file at path, wrapping failures in *ReadError.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(data), nil
}

// ParseSource parses src, which was read from path. A *FormatError carries
// path so callers that already hold the text report the same errors as
// ParseFile.
func ParseSource(path, src string, opts Options) (*model.Config, error) {
	cfg, err := ParseWithOptions(src, opts)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// bodyLine is one accumulated line of a block body.
type bodyLine struct {
	num  int
	text string
}

// state is the parse state for a single call. It is never shared.
type state struct {
	opts Options
	log  *slog.Logger
	cfg  *model.Config

	depth      Depth
	section    string
	nested     string
	openLine   int
	nestedLine int
	body       []bodyLine
	nestedBody []bodyLine

	// submap is the active submap name, or "" for the flat bind list.
	submap  string
	lineNum int
}

func newState(opts Options) *state {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &state{
		opts: opts,
		log:  log,
		cfg:  model.New(),
	}
}

func (p *state) parse(src string) error {
	for i, raw := range splitLines(src) {
		p.lineNum = i + 1
		if err := p.handle(Classify(raw, p.depth)); err != nil {
			return err
		}
	}

	if p.depth == TopLevel {
		return nil
	}

	block := p.blockName()
	if p.opts.Strict {
		return &FormatError{Line: p.openLine, Block: block, Err: ErrUnclosedBlock}
	}
	p.log.Warn("block not closed before end of input", "block", block, "line", p.openLine)
	for p.depth != TopLevel {
		if err := p.closeBlock(); err != nil {
			return err
		}
	}
	return nil
}

func (p *state) handle(d Directive) error {
	d.Line = p.lineNum

	if p.depth != TopLevel && closesInline(d.Kind) {
		if i := unmatchedClose(d.Raw); i >= 0 {
			return p.closeAfter(d.Raw[:i], d.Raw[i+1:])
		}
	}

	switch d.Kind {
	case KindBlank, KindComment:
		return nil
	case KindVariable:
		p.cfg.Variables[d.Key] = d.Value
		return nil
	case KindEnv:
		name, val, err := DecodeEnv(d.Value)
		if err != nil {
			return p.skip(d, err)
		}
		p.cfg.Env[name] = val
		return nil
	case KindAutostart:
		if d.Value == "" {
			return p.skip(d, ErrMalformed)
		}
		p.cfg.Autostart = append(p.cfg.Autostart, d.Value)
		return nil
	case KindSource:
		p.log.Debug("source directives are not followed", "line", d.Line, "path", d.Value)
		return nil
	case KindSectionOpen, KindNestedOpen:
		return p.openBlock(d)
	case KindClose:
		if p.depth == TopLevel {
			p.log.Warn("unmatched closing brace", "line", d.Line)
			return nil
		}
		return p.closeAfter("", d.Value)
	}

	if p.depth != TopLevel {
		p.appendBody(d.Raw)
		return nil
	}
	return p.topLevel(d)
}

// openBlock enters a section or nested block. Text after '{' on the same
// line is treated as block body, and a closing '}' on the same line closes
// the block again.
func (p *state) openBlock(d Directive) error {
	switch p.depth {
	case TopLevel:
		p.depth = InSection
		p.section, p.openLine, p.body = d.Key, d.Line, nil
	case InSection:
		p.depth = InNested
		p.nested, p.nestedLine, p.nestedBody = d.Key, d.Line, nil
	default:
		return &FormatError{Line: d.Line, Block: p.blockName() + ":" + d.Key, Err: ErrNestingTooDeep}
	}

	rest := d.Value
	if rest == "" {
		return nil
	}

	inner, after, closed := strings.Cut(rest, "}")
	if !closed {
		// "name { key = value" continues on following lines.
		for _, line := range splitInline(rest) {
			if err := p.handle(Classify(line, p.depth)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, line := range splitInline(inner) {
		if err := p.handle(Classify(line, p.depth)); err != nil {
			return err
		}
	}
	if err := p.closeBlock(); err != nil {
		return err
	}
	if after = strings.TrimSpace(after); after != "" {
		return p.handle(Classify(after, p.depth))
	}
	return nil
}

func (p *state) closeBlock() error {
	switch p.depth {
	case InNested:
		body := p.nestedBody
		p.depth, p.nestedBody = InSection, nil
		return p.decodeNested(p.section, p.nested, p.nestedLine, body)
	case InSection:
		body := p.body
		p.depth, p.body = TopLevel, nil
		return p.decodeSection(p.section, p.openLine, body)
	}
	return nil
}

// closesInline reports whether a '}' inside a line of kind k ends the
// enclosing block. Structural lines manage their own braces.
func closesInline(k Kind) bool {
	switch k {
	case KindBlank, KindComment, KindClose, KindSectionOpen, KindNestedOpen:
		return false
	}
	return true
}

// closeAfter handles before as a body line, closes the current block and
// handles whatever follows the brace on the same line.
func (p *state) closeAfter(before, after string) error {
	if before = strings.TrimSpace(before); before != "" {
		if err := p.handle(Classify(before, p.depth)); err != nil {
			return err
		}
	}
	if err := p.closeBlock(); err != nil {
		return err
	}
	if after = strings.TrimSpace(after); after != "" {
		return p.handle(Classify(after, p.depth))
	}
	return nil
}

func (p *state) appendBody(text string) {
	line := bodyLine{num: p.lineNum, text: text}
	if p.depth == InNested {
		p.nestedBody = append(p.nestedBody, line)
		return
	}
	p.body = append(p.body, line)
}

func (p *state) blockName() string {
	if p.depth == InNested {
		return p.section + ":" + p.nested
	}
	return p.section
}

// skip handles an entity that could not be decoded: logged and dropped by
// default, a FormatError in strict mode.
func (p *state) skip(d Directive, err error) error {
	if p.opts.Strict {
		return &FormatError{Line: d.Line, Block: d.Key, Err: err}
	}
	p.log.Warn("skipping directive", "line", d.Line, "directive", d.Key, "error", err)
	return nil
}

// reporter returns a Reporter that logs non-fatal decode problems for d.
func (p *state) reporter(d Directive) Reporter {
	return func(err error) {
		p.log.Warn("value fell back to default", "line", d.Line, "directive", d.Key, "error", err)
	}
}

// splitLines splits source into lines, handling \r\n.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	// Drop the empty element produced by a trailing newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
