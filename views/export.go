// Package views renders pages to standalone HTML with the element
// builder. The export renderer is the single switch over all widget
// variants; adding a component type without a case here fails to compile.
package views

import (
	"pageforge/models"

	"github.com/rohanthewiz/element"
)

// exportCSS is the base stylesheet of every exported page.
// The mobile media query stacks absolutely positioned components.
const exportCSS = `
* {
	margin: 0;
	padding: 0;
	box-sizing: border-box;
}

body {
	font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
	background-size: cover;
	background-position: center;
	background-attachment: fixed;
	min-height: 100vh;
	position: relative;
	overflow-x: hidden;
}

.container {
	position: relative;
	width: 100%;
	height: 100vh;
}

.glass-button {
	cursor: pointer;
	transition: all 0.3s ease;
	font-weight: 500;
	text-decoration: none;
	display: inline-block;
	border: 1px solid rgba(255,255,255,0.2);
	backdrop-filter: blur(10px);
}

.glass-button:hover {
	transform: translateY(-2px);
	box-shadow: 0 10px 20px rgba(0,0,0,0.2);
	background: rgba(255,255,255,0.2) !important;
}

.component {
	backdrop-filter: blur(12px);
	-webkit-backdrop-filter: blur(12px);
}

.chat-widget {
	max-width: 280px;
	padding: 16px;
}

@media (max-width: 768px) {
	.component {
		position: relative !important;
		left: 0 !important;
		top: auto !important;
		margin: 20px auto;
		text-align: center;
	}
}
`

// ExportHTML renders a page as a complete standalone HTML document.
func ExportHTML(page *models.Page) string {
	return documentLayout(page.Title, exportBody{page: page}, exportCSS, bodyCSS(page))
}

type exportBody struct {
	page *models.Page
}

func (e exportBody) Render(b *element.Builder) (x any) {
	b.DivClass("container").R(
		b.Wrap(func() {
			for _, comp := range e.page.Components {
				renderComponent(b, comp)
			}
		}),
	)
	return
}

// bodyCSS builds the page-level background rules.
func bodyCSS(page *models.Page) string {
	css := "body { background: linear-gradient(135deg, " + page.BackgroundColor + " 0%, #000000 100%);"
	if page.BackgroundImage.Valid && page.BackgroundImage.String != "" {
		css += " background-image: url('" + page.BackgroundImage.String + "');"
	}
	if page.Theme == "light" {
		css += " color: #111111;"
	} else {
		css += " color: #ffffff;"
	}
	return css + " }"
}
