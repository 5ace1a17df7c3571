package parser

import (
	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/xuri/excelize/v2"
)

const solidPattern = 1 // index of "solid" in excelize's fill pattern table

// cellLook resolves the visual attributes of a cell into a models.CellLook.
// Fill theme/indexed colors are not surfaced by excelize's Style type, so
// those are read from the raw stylesheet; everything else comes from GetStyle.
func cellLook(f *excelize.File, sheet, cell string) (models.CellLook, error) {
	var look models.CellLook

	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return look, err
	}
	look.Value = value

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return look, err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return look, err
	}

	if style.Fill.Type == "pattern" && style.Fill.Pattern == solidPattern {
		look.SolidFill = true
	}
	if len(style.Fill.Color) > 0 {
		look.Fill.RGB = style.Fill.Color[0]
	}
	if theme, indexed, ok := rawFillColor(f, styleID); ok {
		look.Fill.Theme = theme
		if look.Fill.Indexed == 0 {
			look.Fill.Indexed = indexed
		}
	}

	if style.Font != nil {
		font := models.Color{
			RGB:     style.Font.Color,
			Theme:   style.Font.ColorTheme,
			Indexed: style.Font.ColorIndexed,
		}
		if !font.IsZero() {
			look.Font = &font
		}
	}

	return look, nil
}

// rawFillColor reads the foreground fill color's theme and indexed attributes
// straight from the workbook stylesheet for the given cell style ID.
func rawFillColor(f *excelize.File, styleID int) (theme *int, indexed int, ok bool) {
	ss := f.Styles
	if ss == nil || ss.CellXfs == nil || styleID < 0 || styleID >= len(ss.CellXfs.Xf) {
		return nil, 0, false
	}
	xf := ss.CellXfs.Xf[styleID]
	if xf.FillID == nil || ss.Fills == nil || *xf.FillID < 0 || *xf.FillID >= len(ss.Fills.Fill) {
		return nil, 0, false
	}
	pattern := ss.Fills.Fill[*xf.FillID].PatternFill
	if pattern == nil || pattern.FgColor == nil {
		return nil, 0, false
	}
	return pattern.FgColor.Theme, pattern.FgColor.Indexed, true
}

// IsHeadingCell reports whether the cell at the given coordinate is a heading
// cell: solid yellow fill, red font, and a non-empty value.
func IsHeadingCell(f *excelize.File, sheet, cell string) bool {
	look, err := cellLook(f, sheet, cell)
	if err != nil {
		return false
	}
	return isHeading(look)
}
