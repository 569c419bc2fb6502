package schema

import "github.com/donaldgifford/hyprconf/internal/model"

// sections lists every top-level section in the order the formatter writes
// them. Nested sections hang off their parent.
var sections = []*Section{
	bind(generalTable, func(c *model.Config) *model.General { return &c.General },
		bind(snapTable, func(c *model.Config) *model.Snap { return &c.General.Snap }),
	),
	bind(decorationTable, func(c *model.Config) *model.Decoration { return &c.Decoration },
		bind(blurTable, func(c *model.Config) *model.Blur { return &c.Decoration.Blur }),
		bind(shadowTable, func(c *model.Config) *model.Shadow { return &c.Decoration.Shadow }),
	),
	bind(animationsTable, func(c *model.Config) *model.Animations { return &c.Animations }),
	bind(inputTable, func(c *model.Config) *model.Input { return &c.Input },
		bind(touchpadTable, func(c *model.Config) *model.Touchpad { return &c.Input.Touchpad }),
		bind(touchdeviceTable, func(c *model.Config) *model.Touchdevice { return &c.Input.Touchdevice }),
		bind(tabletTable, func(c *model.Config) *model.Tablet { return &c.Input.Tablet }),
	),
	bind(gesturesTable, func(c *model.Config) *model.Gestures { return &c.Gestures }),
	bind(groupTable, func(c *model.Config) *model.Group { return &c.Group },
		bind(groupbarTable, func(c *model.Config) *model.Groupbar { return &c.Group.Groupbar }),
	),
	bind(miscTable, func(c *model.Config) *model.Misc { return &c.Misc }),
	bind(bindsTable, func(c *model.Config) *model.Binds { return &c.BindSettings }),
	bind(xwaylandTable, func(c *model.Config) *model.XWayland { return &c.XWayland }),
	bind(openglTable, func(c *model.Config) *model.OpenGL { return &c.OpenGL }),
	bind(renderTable, func(c *model.Config) *model.Render { return &c.Render }),
	bind(cursorTable, func(c *model.Config) *model.Cursor { return &c.Cursor }),
	bind(dwindleTable, func(c *model.Config) *model.Dwindle { return &c.Dwindle }),
	bind(masterTable, func(c *model.Config) *model.Master { return &c.Master }),
	bind(debugTable, func(c *model.Config) *model.Debug { return &c.Debug }),
	bind(ecosystemTable, func(c *model.Config) *model.Ecosystem { return &c.Ecosystem }),
	bind(experimentalTable, func(c *model.Config) *model.Experimental { return &c.Experimental }),
}

var sectionIndex = func() map[string]*Section {
	m := make(map[string]*Section, len(sections))
	for _, s := range sections {
		m[s.Name] = s
	}
	return m
}()

// Sections returns the top-level sections in output order. The returned
// slice must not be modified.
func Sections() []*Section {
	return sections
}

// Lookup returns the top-level section called name.
func Lookup(name string) (*Section, bool) {
	s, ok := sectionIndex[name]
	return s, ok
}

// LookupPath resolves "section" or "section:nested" to its section.
func LookupPath(section, nested string) (*Section, bool) {
	s, ok := Lookup(section)
	if !ok || nested == "" {
		return s, ok
	}
	return s.Nested(nested)
}
