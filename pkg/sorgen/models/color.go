package models

// Color describes a cell color the three ways an xlsx file can encode one:
// a literal ARGB/RGB string, a theme palette reference, or a legacy indexed
// palette entry. Zero value means "no color recorded".
type Color struct {
	// RGB is the literal color hex, either 6 (RGB) or 8 (ARGB) digits.
	RGB string
	// Theme is the theme palette index, nil when the color is not theme-based.
	Theme *int
	// Indexed is the legacy indexed-palette entry (0 when unused).
	Indexed int
}

// IsZero reports whether no color information is present.
func (c Color) IsZero() bool {
	return c.RGB == "" && c.Theme == nil && c.Indexed == 0
}

// CellLook captures the visual attributes the heading classifier inspects.
// It is deliberately library-free so the heuristics stay testable without
// workbook fixtures.
type CellLook struct {
	// SolidFill is true when the fill pattern type is "solid".
	SolidFill bool
	// Fill is the foreground fill color.
	Fill Color
	// Font is the font color, nil when the font carries no color.
	Font *Color
	// Value is the cell's displayed value.
	Value string
}
