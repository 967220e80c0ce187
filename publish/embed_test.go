package publish

import (
	"strings"
	"testing"
)

func TestEmbedCodeIframe(t *testing.T) {
	code, err := EmbedCode("https://pages.example.com", "abc-123", EmbedIframe)
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if !strings.Contains(code, `src="https://pages.example.com/preview/abc-123"`) {
		t.Errorf("iframe src wrong: %s", code)
	}
	if !strings.HasPrefix(code, "<iframe") || !strings.Contains(code, `height="600"`) {
		t.Errorf("iframe snippet malformed: %s", code)
	}
}

func TestEmbedCodeJavaScript(t *testing.T) {
	code, err := EmbedCode("https://pages.example.com", "abc-123", EmbedJavaScript)
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	for _, want := range []string{
		"<script>",
		`f.src = "https://pages.example.com/preview/abc-123"`,
		"document.currentScript",
		"</script>",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("javascript snippet missing %q", want)
		}
	}
}

func TestEmbedCodeHTML(t *testing.T) {
	code, err := EmbedCode("https://pages.example.com", "abc-123", EmbedHTML)
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if !strings.Contains(code, `href="https://pages.example.com/preview/abc-123"`) {
		t.Errorf("html snippet link wrong: %s", code)
	}
	if !strings.Contains(code, `rel="noopener"`) {
		t.Error("html snippet should open safely in a new tab")
	}
}

func TestEmbedCodeUnsupportedFormat(t *testing.T) {
	_, err := EmbedCode("https://pages.example.com", "abc-123", "flash")
	if err == nil {
		t.Fatal("unsupported format should error")
	}
	if !strings.Contains(err.Error(), "unsupported embed format") {
		t.Errorf("error = %v", err)
	}
}
