package models

import (
	"encoding/json"

	"github.com/rohanthewiz/serr"
)

// ComponentType tags the widget variant of a component.
type ComponentType string

const (
	TypeText        ComponentType = "text"
	TypeButton      ComponentType = "button"
	TypeCTA         ComponentType = "cta"
	TypeForm        ComponentType = "form"
	TypeTimer       ComponentType = "timer"
	TypeAudio       ComponentType = "audio"
	TypeVideo       ComponentType = "video"
	TypeLogo        ComponentType = "logo"
	TypeImage       ComponentType = "image"
	TypeChat        ComponentType = "chat"
	TypeSlotMachine ComponentType = "slotmachine"
	TypeSocial      ComponentType = "social"
)

// ComponentTypes lists every known widget variant, in palette order.
var ComponentTypes = []ComponentType{
	TypeText, TypeButton, TypeCTA, TypeForm, TypeTimer, TypeAudio,
	TypeVideo, TypeLogo, TypeImage, TypeChat, TypeSlotMachine, TypeSocial,
}

// Known reports whether t is one of the supported widget variants.
func (t ComponentType) Known() bool {
	for _, kt := range ComponentTypes {
		if t == kt {
			return true
		}
	}
	return false
}

// Content is the type-specific payload of a component. One concrete struct
// exists per widget variant so switches over variants stay exhaustive.
type Content interface {
	contentType() ComponentType
}

// TextContent is a block of text rendered with the given HTML tag.
type TextContent struct {
	Text string `json:"text"`
	Tag  string `json:"tag"` // p, h1, h2, h3
}

// ButtonContent is a plain clickable button.
type ButtonContent struct {
	Text   string `json:"text"`
	Action string `json:"action"` // inline JS or empty
	URL    string `json:"url"`
}

// CTAContent is a call-to-action button with a fixed purpose.
// Purposes: call, subscribe, download, signup, buy.
type CTAContent struct {
	Text    string `json:"text"`
	Purpose string `json:"purpose"`
	Target  string `json:"target"` // phone number, mailing list URL, etc.
}

// FormContent is a lead-capture form.
type FormContent struct {
	Title          string   `json:"title"`
	Fields         []string `json:"fields"`
	ButtonText     string   `json:"button_text"`
	SuccessMessage string   `json:"success_message"`
}

// TimerContent is a countdown to a target date.
type TimerContent struct {
	TargetDate string `json:"target_date"` // RFC 3339
	Label      string `json:"label"`
}

// AudioContent is an audio player, optionally backed by the
// royalty-free sounds catalog.
type AudioContent struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Autoplay bool   `json:"autoplay"`
	Loop     bool   `json:"loop"`
}

// VideoContent is an embedded video player.
type VideoContent struct {
	URL      string `json:"url"`
	Autoplay bool   `json:"autoplay"`
	Controls bool   `json:"controls"`
}

// LogoContent is a brand image.
type LogoContent struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ImageContent is a general image.
type ImageContent struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ChatContent is a floating chat widget.
type ChatContent struct {
	Greeting  string `json:"greeting"`
	AgentName string `json:"agent_name"`
}

// SlotMachineContent configures the gamified prize widget.
// WinEvery forces a win on every nth play; see the game package.
type SlotMachineContent struct {
	Title      string `json:"title"`
	ButtonText string `json:"button_text"`
	WinEvery   int    `json:"win_every"`
}

// SocialContent maps network names to profile URLs.
type SocialContent struct {
	Links map[string]string `json:"links"`
}

// RawContent carries the payload of an unknown component type untouched.
type RawContent map[string]any

func (TextContent) contentType() ComponentType        { return TypeText }
func (ButtonContent) contentType() ComponentType      { return TypeButton }
func (CTAContent) contentType() ComponentType         { return TypeCTA }
func (FormContent) contentType() ComponentType        { return TypeForm }
func (TimerContent) contentType() ComponentType       { return TypeTimer }
func (AudioContent) contentType() ComponentType       { return TypeAudio }
func (VideoContent) contentType() ComponentType       { return TypeVideo }
func (LogoContent) contentType() ComponentType        { return TypeLogo }
func (ImageContent) contentType() ComponentType       { return TypeImage }
func (ChatContent) contentType() ComponentType        { return TypeChat }
func (SlotMachineContent) contentType() ComponentType { return TypeSlotMachine }
func (SocialContent) contentType() ComponentType      { return TypeSocial }
func (RawContent) contentType() ComponentType         { return "" }

// Position is the absolute canvas placement of a component, in pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Component is a single placeable widget instance on a page.
// ID is "<type>-<unix-millis>" and unique within its page.
type Component struct {
	ID       string            `json:"id"`
	Type     ComponentType     `json:"type"`
	Content  Content           `json:"content"`
	Position Position          `json:"position"`
	Style    map[string]string `json:"style"`
}

// componentShadow mirrors Component with the content left raw so the
// tagged union can be decoded after the type tag is known.
type componentShadow struct {
	ID       string            `json:"id"`
	Type     ComponentType     `json:"type"`
	Content  json.RawMessage   `json:"content"`
	Position Position          `json:"position"`
	Style    map[string]string `json:"style"`
}

// UnmarshalJSON decodes the content payload into the concrete struct
// for the component's type. Unknown types keep their payload as RawContent.
func (c *Component) UnmarshalJSON(data []byte) error {
	var sh componentShadow
	if err := json.Unmarshal(data, &sh); err != nil {
		return serr.Wrap(err, "failed to decode component")
	}

	content, err := decodeContent(sh.Type, sh.Content)
	if err != nil {
		return err
	}

	c.ID = sh.ID
	c.Type = sh.Type
	c.Content = content
	c.Position = sh.Position
	c.Style = sh.Style
	if c.Style == nil {
		c.Style = map[string]string{}
	}
	return nil
}

// decodeContent picks the concrete content struct for a component type.
func decodeContent(t ComponentType, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	var (
		content Content
		err     error
	)

	switch t {
	case TypeText:
		v := TextContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeButton:
		v := ButtonContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeCTA:
		v := CTAContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeForm:
		v := FormContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeTimer:
		v := TimerContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeAudio:
		v := AudioContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeVideo:
		v := VideoContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeLogo:
		v := LogoContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeImage:
		v := ImageContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeChat:
		v := ChatContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeSlotMachine:
		v := SlotMachineContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	case TypeSocial:
		v := SocialContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	default:
		v := RawContent{}
		err = json.Unmarshal(raw, &v)
		content = v
	}

	if err != nil {
		return nil, serr.Wrap(err, "failed to decode component content", "type", string(t))
	}
	return content, nil
}

// MarshalComponents serializes a component list for the pages table.
// A nil slice serializes as an empty array so stored pages always carry one.
func MarshalComponents(comps []Component) (string, error) {
	if comps == nil {
		comps = []Component{}
	}
	data, err := json.Marshal(comps)
	if err != nil {
		return "", serr.Wrap(err, "failed to marshal components")
	}
	return string(data), nil
}

// UnmarshalComponents restores a component list from its stored JSON form.
func UnmarshalComponents(data string) ([]Component, error) {
	if data == "" {
		return []Component{}, nil
	}
	var comps []Component
	if err := json.Unmarshal([]byte(data), &comps); err != nil {
		return nil, serr.Wrap(err, "failed to unmarshal components")
	}
	return comps, nil
}
