package parser

import (
	"strings"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
)

// Heading cells are hand-authored with Excel's UI rather than a structured
// marker: yellow fill plus red font. Each check tolerates the three ways an
// xlsx file can encode a color (literal RGB, theme reference, indexed).

// yellowThemes are the theme palette indices accepted as yellow fill.
var yellowThemes = map[int]bool{4: true, 5: true, 6: true}

const (
	yellowIndexed = 6
	redIndexed    = 3
)

// isYellowFill reports whether the look has a solid yellow foreground fill.
func isYellowFill(look models.CellLook) bool {
	if !look.SolidFill {
		return false
	}
	c := look.Fill
	if strings.HasSuffix(strings.ToUpper(c.RGB), "FFFF00") {
		return true
	}
	if c.Theme != nil && yellowThemes[*c.Theme] {
		return true
	}
	return c.Indexed == yellowIndexed
}

// isRedFont reports whether the look has a red font color. Any theme-colored
// font is accepted: backend files in the field rely on this loose reading.
func isRedFont(look models.CellLook) bool {
	c := look.Font
	if c == nil || c.IsZero() {
		return false
	}
	if strings.HasSuffix(strings.ToUpper(c.RGB), "FF0000") {
		return true
	}
	if c.Theme != nil {
		return true
	}
	return c.Indexed == redIndexed
}

// isHeading reports whether the look qualifies as a heading cell: yellow
// fill, red font, and a non-empty stripped value.
func isHeading(look models.CellLook) bool {
	return isYellowFill(look) && isRedFont(look) && strings.TrimSpace(look.Value) != ""
}
