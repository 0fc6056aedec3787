package render

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme holds the presentational constants of the card. None of them are
// part of the behavioral contract; a TOML file can override any subset.
type Theme struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Margin int `toml:"margin"`

	Background   string `toml:"background"`
	HeaderColor  string `toml:"header_color"`
	TextColor    string `toml:"text_color"`
	SectionColor string `toml:"section_color"`
	AccentColor  string `toml:"accent_color"`
	MutedColor   string `toml:"muted_color"`

	TitleSize  float64 `toml:"title_size"`
	NameSize   float64 `toml:"name_size"`
	HeaderSize float64 `toml:"header_size"`
	BodySize   float64 `toml:"body_size"`
	SmallSize  float64 `toml:"small_size"`
}

// DefaultTheme is the 800x1200 light card.
func DefaultTheme() Theme {
	return Theme{
		Width:  800,
		Height: 1200,
		Margin: 60,

		Background:   "#fafafa",
		HeaderColor:  "#1e1e1e",
		TextColor:    "#323232",
		SectionColor: "#464646",
		AccentColor:  "#6496ff",
		MutedColor:   "#969696",

		TitleSize:  40,
		NameSize:   32,
		HeaderSize: 22,
		BodySize:   16,
		SmallSize:  12,
	}
}

// LoadTheme overlays a TOML file on the default theme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, fmt.Errorf("loading theme %s: %w", path, err)
	}
	return theme, nil
}
