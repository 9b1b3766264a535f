package site

import "strings"

// SkinName identifies a landing page skin.
type SkinName string

// Available skins.
const (
	SkinMidnight SkinName = "midnight"
	SkinAurora   SkinName = "aurora"
	SkinMono     SkinName = "mono"
)

// DefaultSkin is used when no skin or an unknown skin is requested.
const DefaultSkin = SkinMidnight

// Skin is a palette applied to the shared page markup.
// Colors are CSS values exposed to the stylesheet as custom properties.
type Skin struct {
	Name        SkinName
	Label       string
	Background  string
	Surface     string
	Border      string
	Text        string
	Muted       string
	Accent      string
	AccentText  string
	HeroOverlay string
}

var skins = map[SkinName]Skin{
	SkinMidnight: {
		Name:        SkinMidnight,
		Label:       "Midnight",
		Background:  "#000000",
		Surface:     "rgba(255,255,255,0.02)",
		Border:      "rgba(255,255,255,0.10)",
		Text:        "#ffffff",
		Muted:       "rgba(255,255,255,0.70)",
		Accent:      "#ffffff",
		AccentText:  "#000000",
		HeroOverlay: "linear-gradient(to bottom, rgba(0,0,0,0.7), rgba(0,0,0,0.5), #000)",
	},
	SkinAurora: {
		Name:        SkinAurora,
		Label:       "Aurora",
		Background:  "#0b0620",
		Surface:     "rgba(153,69,255,0.06)",
		Border:      "rgba(20,241,149,0.20)",
		Text:        "#f5f3ff",
		Muted:       "rgba(245,243,255,0.70)",
		Accent:      "#14f195",
		AccentText:  "#0b0620",
		HeroOverlay: "linear-gradient(135deg, rgba(153,69,255,0.45), rgba(20,241,149,0.25), #0b0620)",
	},
	SkinMono: {
		Name:        SkinMono,
		Label:       "Mono",
		Background:  "#fafafa",
		Surface:     "#ffffff",
		Border:      "#e5e5e5",
		Text:        "#0a0a0a",
		Muted:       "#525252",
		Accent:      "#0a0a0a",
		AccentText:  "#fafafa",
		HeroOverlay: "linear-gradient(to bottom, #f5f5f5, #fafafa)",
	},
}

// LookupSkin returns the skin with the given name, ignoring case.
func LookupSkin(name string) (Skin, bool) {
	s, ok := skins[SkinName(strings.ToLower(strings.TrimSpace(name)))]
	return s, ok
}

// SkinOrDefault returns the named skin, or fallback when name is unknown.
// An unknown fallback resolves to DefaultSkin.
func SkinOrDefault(name string, fallback SkinName) Skin {
	if s, ok := LookupSkin(name); ok {
		return s
	}
	if s, ok := skins[fallback]; ok {
		return s
	}
	return skins[DefaultSkin]
}

// Skins returns every skin in display order.
func Skins() []Skin {
	return []Skin{skins[SkinMidnight], skins[SkinAurora], skins[SkinMono]}
}
