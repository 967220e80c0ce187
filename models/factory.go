package models

import (
	"strconv"
	"time"
)

// baseStyle is the style every new component starts from.
func baseStyle() map[string]string {
	return map[string]string{
		"color":    "#ffffff",
		"fontSize": "16",
	}
}

// NewComponent builds a component of the given type with its default
// content and style, placed at the given canvas position. Unknown types
// fall through to an empty payload over the base style; no validation.
func NewComponent(t ComponentType, pos Position) Component {
	content, style := DefaultsFor(t)
	return Component{
		ID:       string(t) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Type:     t,
		Content:  content,
		Position: pos,
		Style:    style,
	}
}

// DefaultsFor returns the default content and style records for a
// component type, per the fixed per-type table.
func DefaultsFor(t ComponentType) (Content, map[string]string) {
	style := baseStyle()

	switch t {
	case TypeText:
		return TextContent{Text: "Edit this text", Tag: "p"}, style

	case TypeButton:
		style["background"] = "rgba(255,255,255,0.1)"
		style["padding"] = "12px 24px"
		style["borderRadius"] = "12px"
		return ButtonContent{Text: "Click Me"}, style

	case TypeCTA:
		style["background"] = "rgba(99,102,241,0.35)"
		style["padding"] = "14px 28px"
		style["borderRadius"] = "12px"
		return CTAContent{Text: "Subscribe", Purpose: "subscribe"}, style

	case TypeForm:
		style["background"] = "rgba(255,255,255,0.06)"
		style["padding"] = "24px"
		style["borderRadius"] = "16px"
		return FormContent{
			Title:          "Stay in touch",
			Fields:         []string{"name", "email"},
			ButtonText:     "Submit",
			SuccessMessage: "Thanks, we'll be in touch!",
		}, style

	case TypeTimer:
		style["fontSize"] = "32"
		return TimerContent{
			TargetDate: time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
			Label:      "Offer ends in",
		}, style

	case TypeAudio:
		return AudioContent{Title: "Ambient Sound", Loop: true}, style

	case TypeVideo:
		return VideoContent{Controls: true}, style

	case TypeLogo:
		style["maxWidth"] = "180"
		return LogoContent{Alt: "Logo"}, style

	case TypeImage:
		style["maxWidth"] = "400"
		return ImageContent{Alt: "Image"}, style

	case TypeChat:
		style["background"] = "rgba(255,255,255,0.08)"
		style["borderRadius"] = "16px"
		return ChatContent{Greeting: "Hi there! How can we help?", AgentName: "Support"}, style

	case TypeSlotMachine:
		style["background"] = "rgba(255,215,0,0.12)"
		style["padding"] = "24px"
		style["borderRadius"] = "16px"
		return SlotMachineContent{Title: "Spin to Win!", ButtonText: "Spin", WinEvery: 5}, style

	case TypeSocial:
		style["fontSize"] = "24"
		return SocialContent{Links: map[string]string{}}, style

	default:
		return RawContent{}, style
	}
}
