// Package render lays out a persona record as a fixed-template card and
// writes it as a PNG.
package render

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	perrors "personacard/src/errors"
	"personacard/src/persona"
)

// Card renders persona records with a fixed theme.
type Card struct {
	theme Theme
}

func NewCard(theme Theme) *Card {
	return &Card{theme: theme}
}

// Render draws the record with the default theme and writes one PNG at
// path, overwriting any existing file.
func Render(rec *persona.Record, path string) error {
	return NewCard(DefaultTheme()).Render(rec, path)
}

// Render writes exactly one PNG at path. All record values are rendered
// verbatim; empty scalars fall back to "N/A" and empty lists render a
// placeholder line. Rendering never fails on content, only on I/O.
func (c *Card) Render(rec *persona.Record, path string) error {
	dc := gg.NewContext(c.theme.Width, c.theme.Height)
	dc.SetHexColor(c.theme.Background)
	dc.Clear()

	x := float64(c.theme.Margin)
	contentWidth := float64(c.theme.Width - 2*c.theme.Margin)
	y := 40 + c.theme.TitleSize

	// Header
	dc.SetFontFace(newFace(boldFont, c.theme.TitleSize))
	dc.SetHexColor(c.theme.HeaderColor)
	dc.DrawString("User Persona Card", x, y)
	y += 60

	dc.SetFontFace(newFace(boldFont, c.theme.NameSize))
	dc.SetHexColor(c.theme.AccentColor)
	dc.DrawString(orNA(rec.Name), x, y)
	y += 40

	// Basic information
	dc.SetFontFace(newFace(boldFont, c.theme.HeaderSize))
	dc.SetHexColor(c.theme.SectionColor)
	dc.DrawString("Basic Information:", x, y)
	y += 30

	dc.SetFontFace(newFace(regularFont, c.theme.BodySize))
	dc.SetHexColor(c.theme.TextColor)
	for _, field := range []struct{ label, value string }{
		{"Age", rec.Age},
		{"Occupation", rec.Occupation},
		{"Status", rec.Status},
		{"Location", rec.Location},
		{"Archetype", rec.Archetype},
		{"Personality", rec.PersonalityType},
	} {
		dc.DrawString(fmt.Sprintf("%s: %s", field.label, orNA(field.value)), x+10, y)
		y += 25
	}
	y += 20

	// Itemized sections, in the card's fixed order
	for _, section := range []struct {
		title  string
		traits []persona.Trait
	}{
		{"Frustrations:", rec.Frustrations},
		{"Likings:", rec.Likings},
		{"Motivations:", rec.Motivations},
		{"Behavior & Habits:", rec.Behaviors},
		{"Goals & Needs:", rec.Goals},
	} {
		y = c.bulletSection(dc, x, y, section.title, section.traits, contentWidth)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("%w: saving %s: %v", perrors.ErrRenderIO, path, err)
	}
	return nil
}

// bulletSection draws a titled bullet list, wrapping each item at the
// measured pixel width, and returns the next baseline.
func (c *Card) bulletSection(dc *gg.Context, x, y float64, title string, traits []persona.Trait, maxWidth float64) float64 {
	dc.SetFontFace(newFace(boldFont, c.theme.HeaderSize))
	dc.SetHexColor(c.theme.SectionColor)
	dc.DrawString(title, x, y)
	y += 25

	if len(traits) == 0 {
		dc.SetFontFace(newFace(regularFont, c.theme.BodySize))
		dc.SetHexColor(c.theme.MutedColor)
		dc.DrawString("• No specific data inferred.", x+10, y)
		return y + 25 + 20
	}

	for _, trait := range traits {
		dc.SetFontFace(newFace(regularFont, c.theme.BodySize))
		dc.SetHexColor(c.theme.TextColor)

		for i, line := range wrapText(dc, orNA(trait.Item), maxWidth-20) {
			prefix := "• "
			if i > 0 {
				prefix = "  "
			}
			dc.DrawString(prefix+line, x+10, y)
			y += 20
		}

		if trait.CitationURL != "" {
			dc.SetFontFace(newFace(regularFont, c.theme.SmallSize))
			dc.SetHexColor(c.theme.MutedColor)
			dc.DrawString(fmt.Sprintf("(source: %s)", lastSegment(trait.CitationURL)), x+25, y)
			y += 18
		}
	}
	return y + 20
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func lastSegment(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
