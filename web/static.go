package web

import (
	"github.com/rohanthewiz/rweb"
)

// setupStatic serves the small fixed assets the HTML pages reference.
// The favicon is an inline SVG so no asset files need to ship.
func setupStatic(s *rweb.Server) {
	const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#5b4b9f"/><rect x="60" y="110" width="180" height="110" rx="16" fill="white" fill-opacity=".85"/><rect x="60" y="260" width="380" height="40" rx="12" fill="white" fill-opacity=".7"/><rect x="60" y="330" width="280" height="40" rx="12" fill="white" fill-opacity=".55"/><text x="350" y="210" font-family="Arial,sans-serif" font-weight="900" font-size="130" fill="white" text-anchor="middle">PF</text></svg>`

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})
}
