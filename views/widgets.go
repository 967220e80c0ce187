package views

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"pageforge/models"

	"github.com/rohanthewiz/element"
)

// renderComponent emits one positioned component. The switch is over
// the concrete content types, so every widget variant must be handled.
func renderComponent(b *element.Builder, comp models.Component) {
	wrapperClass := "component " + string(comp.Type) + "-component"
	style := positionStyle(comp)

	switch ct := comp.Content.(type) {
	case models.TextContent:
		tag := ct.Tag
		if tag == "" {
			tag = "p"
		}
		b.Div("class", wrapperClass, "style", style).R(
			b.T("<" + tag + " style=\"" + html.EscapeString(inlineStyle(comp.Style)) + "\">" +
				html.EscapeString(ct.Text) + "</" + tag + ">"),
		)

	case models.ButtonContent:
		action := ct.Action
		if action == "" && ct.URL != "" {
			action = "location.href='" + ct.URL + "'"
		}
		b.Div("class", wrapperClass, "style", style).R(
			b.Button("class", "glass-button", "onclick", action,
				"style", inlineStyle(comp.Style)).T(html.EscapeString(ct.Text)),
		)

	case models.CTAContent:
		b.Div("class", wrapperClass, "style", style).R(
			b.A("class", "glass-button", "href", ctaHref(ct),
				"style", inlineStyle(comp.Style)).T(html.EscapeString(ct.Text)),
		)

	case models.FormContent:
		b.Div("class", wrapperClass, "style", style+inlineStyle(comp.Style)).R(
			b.H3().T(html.EscapeString(ct.Title)),
			b.Form("method", "post", "onsubmit",
				"event.preventDefault(); this.innerHTML='"+html.EscapeString(ct.SuccessMessage)+"'").R(
				b.Wrap(func() {
					for _, field := range ct.Fields {
						b.Input("type", inputType(field), "name", field,
							"placeholder", capitalize(field))
						b.Br()
					}
				}),
				b.Button("class", "glass-button", "type", "submit").T(html.EscapeString(ct.ButtonText)),
			),
		)

	case models.TimerContent:
		countID := comp.ID + "-count"
		b.Div("class", wrapperClass, "style", style+inlineStyle(comp.Style)).R(
			b.Span().T(html.EscapeString(ct.Label)+" "),
			b.Span("id", countID).T("--:--:--"),
			b.Script().T(countdownJS(countID, ct.TargetDate)),
		)

	case models.AudioContent:
		attrs := " controls"
		if ct.Autoplay {
			attrs += " autoplay"
		}
		if ct.Loop {
			attrs += " loop"
		}
		b.Div("class", wrapperClass, "style", style).R(
			b.T("<audio src=\""+html.EscapeString(ct.URL)+"\""+attrs+"></audio>"),
		)

	case models.VideoContent:
		attrs := ""
		if ct.Controls {
			attrs += " controls"
		}
		if ct.Autoplay {
			attrs += " autoplay muted"
		}
		b.Div("class", wrapperClass, "style", style).R(
			b.T("<video src=\"" + html.EscapeString(ct.URL) + "\"" + attrs +
				" style=\"" + html.EscapeString(inlineStyle(comp.Style)) + "\"></video>"),
		)

	case models.LogoContent:
		b.Div("class", wrapperClass, "style", style).R(
			b.T("<img src=\"" + html.EscapeString(ct.URL) + "\" alt=\"" + html.EscapeString(ct.Alt) +
				"\" style=\"" + html.EscapeString(inlineStyle(comp.Style)) + "\">"),
		)

	case models.ImageContent:
		b.Div("class", wrapperClass, "style", style).R(
			b.T("<img src=\"" + html.EscapeString(ct.URL) + "\" alt=\"" + html.EscapeString(ct.Alt) +
				"\" style=\"" + html.EscapeString(inlineStyle(comp.Style)) + "\">"),
		)

	case models.ChatContent:
		b.Div("class", wrapperClass+" chat-widget", "style", style+inlineStyle(comp.Style)).R(
			b.H3().T(html.EscapeString(ct.AgentName)),
			b.P().T(html.EscapeString(ct.Greeting)),
		)

	case models.SlotMachineContent:
		b.Div("class", wrapperClass, "style", style+inlineStyle(comp.Style)).R(
			b.H3().T(html.EscapeString(ct.Title)),
			b.Button("class", "glass-button", "data-win-every",
				strconv.Itoa(ct.WinEvery)).T(html.EscapeString(ct.ButtonText)),
		)

	case models.SocialContent:
		b.Div("class", wrapperClass, "style", style+inlineStyle(comp.Style)).R(
			b.Wrap(func() {
				// Stable ordering for deterministic output
				names := make([]string, 0, len(ct.Links))
				for name := range ct.Links {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					b.A("href", ct.Links[name], "title", name).T(html.EscapeString(name))
					b.T(" ")
				}
			}),
		)

	case models.RawContent:
		// Unknown widget type; emit an empty placeholder so positions hold
		b.Div("class", wrapperClass, "style", style).R()
	}
}

// ctaHref maps a CTA purpose onto its link target.
func ctaHref(ct models.CTAContent) string {
	switch ct.Purpose {
	case "call":
		return "tel:" + ct.Target
	case "subscribe", "signup", "download", "buy":
		return ct.Target
	}
	return ct.Target
}

// inputType picks an input type from a form field name.
func inputType(field string) string {
	switch field {
	case "email":
		return "email"
	case "phone":
		return "tel"
	}
	return "text"
}

// countdownJS returns the inline countdown script for a timer widget.
func countdownJS(countID, targetDate string) string {
	return `
(function() {
	var target = new Date("` + targetDate + `").getTime();
	var el = document.getElementById("` + countID + `");
	function tick() {
		var d = target - Date.now();
		if (d < 0) { el.textContent = "0d 0h 0m 0s"; return; }
		var days = Math.floor(d / 86400000);
		var hours = Math.floor(d % 86400000 / 3600000);
		var mins = Math.floor(d % 3600000 / 60000);
		var secs = Math.floor(d % 60000 / 1000);
		el.textContent = days + "d " + hours + "h " + mins + "m " + secs + "s";
		setTimeout(tick, 1000);
	}
	tick();
})();`
}

// positionStyle builds the absolute placement rules for a component.
func positionStyle(comp models.Component) string {
	return "position: absolute; left: " + formatPx(comp.Position.X) +
		"; top: " + formatPx(comp.Position.Y) + "; "
}

// inlineStyle converts the component's style record to CSS text.
// CamelCase keys become kebab-case; bare numeric size values get px.
func inlineStyle(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}

	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		v := style[k]
		if needsPx(k) {
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				v += "px"
			}
		}
		sb.WriteString(cssName(k))
		sb.WriteString(": ")
		sb.WriteString(v)
		sb.WriteString("; ")
	}
	return sb.String()
}

func needsPx(key string) bool {
	switch key {
	case "fontSize", "maxWidth", "width", "height":
		return true
	}
	return false
}

// cssName converts a camelCase style key to its kebab-case CSS name.
func cssName(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
