package publish

import (
	"github.com/rohanthewiz/serr"
)

// EmbedFormat selects the flavor of embed snippet.
type EmbedFormat string

const (
	EmbedIframe     EmbedFormat = "iframe"
	EmbedJavaScript EmbedFormat = "javascript"
	EmbedHTML       EmbedFormat = "html"
)

// EmbedCode builds the snippet a site owner pastes to embed a page.
// publicURL is the builder's public base URL without a trailing slash.
func EmbedCode(publicURL, pageID string, format EmbedFormat) (string, error) {
	previewURL := publicURL + "/preview/" + pageID

	switch format {
	case EmbedIframe:
		return `<iframe src="` + previewURL + `" width="100%" height="600" frameborder="0" scrolling="auto"></iframe>`, nil

	case EmbedJavaScript:
		return `<script>
(function() {
	var f = document.createElement("iframe");
	f.src = "` + previewURL + `";
	f.width = "100%";
	f.height = "600";
	f.frameBorder = "0";
	f.scrolling = "auto";
	document.currentScript.parentNode.insertBefore(f, document.currentScript);
})();
</script>`, nil

	case EmbedHTML:
		return `<div class="pageforge-embed">
  <a href="` + previewURL + `" target="_blank" rel="noopener">View this page</a>
</div>`, nil
	}

	return "", serr.New("unsupported embed format: " + string(format))
}
