package icons

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/jorge-barreto/oops/internal/i18n"
)

// Request describes one icon to render. Desc is only used when Title is set.
type Request struct {
	Icon     string
	Title    string
	Desc     string
	Fallback bool
}

// IsZero reports whether no field of the request is set.
func (r Request) IsZero() bool {
	return r == Request{}
}

const (
	msgNoArgs = "Please define default parameters in the form of an array."
	msgNoIcon = "Please define an SVG icon filename."
)

// Renderer builds inline SVG markup that references symbols in the
// theme's sprite sheet.
type Renderer struct {
	newID func() string
	tr    *i18n.Translator
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithIDFunc replaces the generator used for title/desc element ids.
func WithIDFunc(fn func() string) RendererOption {
	return func(r *Renderer) { r.newID = fn }
}

// WithTranslator sets the translator used for input error messages.
func WithTranslator(tr *i18n.Translator) RendererOption {
	return func(r *Renderer) { r.tr = tr }
}

// NewRenderer returns a Renderer that generates a fresh UUID per titled icon.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		newID: uuid.NewString,
		tr:    i18n.English(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the SVG markup for req. Invalid requests produce a
// human-readable message in place of the markup.
func (r *Renderer) Render(req Request) string {
	if req.IsZero() {
		return r.tr.T(msgNoArgs)
	}
	if req.Icon == "" {
		return r.tr.T(msgNoIcon)
	}

	icon := html.EscapeString(req.Icon)
	ariaHidden := ` aria-hidden="true"`
	ariaLabelledBy := ""
	var id string

	if req.Title != "" {
		ariaHidden = ""
		id = r.newID()
		ariaLabelledBy = ` aria-labelledby="title-` + id + `"`
		if req.Desc != "" {
			ariaLabelledBy = ` aria-labelledby="title-` + id + ` desc-` + id + `"`
		}
	}

	var b strings.Builder
	b.WriteString(`<svg class="icon icon-` + icon + `"` + ariaHidden + ariaLabelledBy + ` role="img">`)

	if req.Title != "" {
		b.WriteString(`<title id="title-` + id + `">` + html.EscapeString(req.Title) + `</title>`)
		if req.Desc != "" {
			b.WriteString(`<desc id="desc-` + id + `">` + html.EscapeString(req.Desc) + `</desc>`)
		}
	}

	// Whitespace around <use> works around a Safari 10 keyboard navigation bug.
	b.WriteString(` <use href="#icon-` + icon + `" xlink:href="#icon-` + icon + `"></use> `)

	if req.Fallback {
		b.WriteString(`<span class="svg-fallback icon-` + icon + `"></span>`)
	}

	b.WriteString(`</svg>`)
	return b.String()
}
