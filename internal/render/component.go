package render

import (
	"strings"

	"github.com/google/uuid"

	"resume-templates/internal/model"
)

// Component is the stateful wrapper over the pure Render function,
// mirroring the custom-element lifecycle of the original templates: set
// data or language, the output is recomputed synchronously and replaced
// wholesale. Each component renders under its own scope class so several
// instances of the same template can live in one document.
type Component struct {
	style    *Style
	scope    string
	data     *model.ResumeData
	language string // explicit override; empty means follow the data
	html     string
}

// NewComponent wires a component to a style descriptor.
func NewComponent(st *Style) *Component {
	c := &Component{
		style: st,
		scope: st.Key + "-" + strings.Split(uuid.NewString(), "-")[0],
	}
	c.rerender()
	return c
}

// SetData assigns the resume and re-renders. A nil value is ignored and the
// previous output stays visible, matching the original setter guard.
func (c *Component) SetData(d *model.ResumeData) {
	if d == nil {
		return
	}
	c.data = d
	c.rerender()
}

// SetLanguage sets an explicit language override and re-renders.
func (c *Component) SetLanguage(lang string) {
	c.language = lang
	c.rerender()
}

// Language resolves the effective language: explicit override first, then
// the resume's own language, then English.
func (c *Component) Language() string {
	if c.language != "" {
		return c.language
	}
	if c.data != nil && c.data.Language != "" {
		return c.data.Language
	}
	return "en"
}

// HTML returns the current output. Before any data is set it is a minimal
// valid, empty document.
func (c *Component) HTML() string {
	return c.html
}

func (c *Component) rerender() {
	c.html = renderScoped(c.data, c.Language(), c.style, c.scope)
}
