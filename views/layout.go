package views

import (
	"html"

	"github.com/rohanthewiz/element"
)

// documentLayout renders a complete HTML document around a body
// component. Each styles entry becomes its own style block.
func documentLayout(title string, body element.Component, styles ...string) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(html.EscapeString(title)),
			b.Wrap(func() {
				for _, css := range styles {
					if css != "" {
						b.Style().T(css)
					}
				}
			}),
		),
		b.Body().R(
			element.RenderComponents(b, body),
		),
	)

	return b.String()
}
