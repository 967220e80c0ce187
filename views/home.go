package views

import (
	"html"
	"strconv"

	"pageforge/models"

	"github.com/rohanthewiz/element"
)

// HomePage lists all saved pages with preview links.
type HomePage struct {
	Pages []models.Page
}

// RenderHome renders the pages index.
func RenderHome(pages []models.Page) string {
	return documentLayout("PageForge", HomePage{Pages: pages}, homeCSS)
}

func (h HomePage) Render(b *element.Builder) (x any) {
	b.DivClass("home").R(
		b.H1().T("PageForge"),
		b.PClass("subtitle").T("Saved landing pages"),
		b.Wrap(func() {
			if len(h.Pages) == 0 {
				b.PClass("empty").T("No pages yet. Create one via POST /api/pages.")
				return
			}
			b.UlClass("page-list").R(
				b.Wrap(func() {
					for _, page := range h.Pages {
						b.Li().R(
							b.A("href", "/preview/"+page.ID).T(html.EscapeString(page.Title)),
							b.SpanClass("meta").T(" — "+page.Theme+", "+
								strconv.Itoa(len(page.Components))+" components, updated "+
								page.UpdatedAt.Format("Jan 2, 2006 3:04 PM")),
						)
					}
				}),
			)
		}),
	)
	return
}

const homeCSS = `
body {
	font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
	background: #0f0f14;
	color: #eee;
	padding: 48px;
}
.subtitle { color: #999; margin: 8px 0 24px; }
.page-list { list-style: none; }
.page-list li { margin: 8px 0; }
.page-list a { color: #8ab4f8; text-decoration: none; }
.page-list a:hover { text-decoration: underline; }
.meta { color: #777; font-size: 14px; }
.empty { color: #777; }
`
