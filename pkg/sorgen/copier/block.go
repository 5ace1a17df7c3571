package copier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/parser"
	"github.com/xuri/excelize/v2"
)

// Defaults excelize reports for dimensions that were never set explicitly.
const (
	defaultColWidth  = 9.140625
	defaultRowHeight = 15
)

// CopyBlock copies the window of srcSheet to dstSheet, anchored at
// (dstRow, dstCol): column widths, row heights, cell values with formula
// translation, styles, and merged ranges wholly contained in the window.
//
// Merges are discovered before any cell is written and replicated only after
// the whole window is copied, so the destination merge is created exactly
// once over already-populated cells. Non-top-left cells of a contained merge
// are skipped; their content is implied by the merge.
//
// The returned CopyOutcome records what was actually carried over; cell- and
// style-level problems become warnings, never errors.
func CopyBlock(src *excelize.File, srcSheet string, dst *excelize.File, dstSheet string, win models.Window, dstRow, dstCol int) (models.CopyOutcome, error) {
	outcome := models.NewCopyOutcome()
	rowOff := dstRow - win.MinRow
	colOff := dstCol - win.MinCol

	copyColWidths(src, srcSheet, dst, dstSheet, win, colOff, &outcome)
	copyRowHeights(src, srcSheet, dst, dstSheet, win, rowOff, &outcome)

	merges, err := sheetMerges(src, srcSheet)
	if err != nil {
		return outcome, fmt.Errorf("read merges of %q: %w", srcSheet, err)
	}
	var contained []models.MergedRegion
	for _, m := range merges {
		if m.ContainedIn(win) {
			contained = append(contained, m)
		}
	}

	styles := newStyleTransfer(src, dst)
	for r := win.MinRow; r <= win.MaxRow; r++ {
		for c := win.MinCol; c <= win.MaxCol; c++ {
			if skip := insideContainedMerge(contained, r, c); skip {
				continue
			}
			srcR, srcC := resolveMergeTopLeft(merges, r, c)
			copyCell(src, srcSheet, dst, dstSheet, srcR, srcC,
				r+rowOff, c+colOff, rowOff+(srcR-r), colOff+(srcC-c), styles, &outcome)
		}
	}

	for _, m := range contained {
		if err := replicateMerge(dst, dstSheet, m, rowOff, colOff); err != nil {
			outcome.Warn(fmt.Sprintf("merge %d,%d: %v", m.MinRow, m.MinCol, err))
			continue
		}
		outcome.MergesCreated++
	}

	return outcome, nil
}

func copyColWidths(src *excelize.File, srcSheet string, dst *excelize.File, dstSheet string, win models.Window, colOff int, outcome *models.CopyOutcome) {
	for c := win.MinCol; c <= win.MaxCol; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			continue
		}
		width, err := src.GetColWidth(srcSheet, name)
		if err != nil || width == defaultColWidth {
			continue
		}
		dstName, err := excelize.ColumnNumberToName(c + colOff)
		if err != nil {
			continue
		}
		if err := dst.SetColWidth(dstSheet, dstName, dstName, width); err != nil {
			outcome.Warn(fmt.Sprintf("column width %s: %v", dstName, err))
		}
	}
}

func copyRowHeights(src *excelize.File, srcSheet string, dst *excelize.File, dstSheet string, win models.Window, rowOff int, outcome *models.CopyOutcome) {
	for r := win.MinRow; r <= win.MaxRow; r++ {
		height, err := src.GetRowHeight(srcSheet, r)
		if err != nil || height == defaultRowHeight {
			continue
		}
		if err := dst.SetRowHeight(dstSheet, r+rowOff, height); err != nil {
			outcome.Warn(fmt.Sprintf("row height %d: %v", r+rowOff, err))
		}
	}
}

// copyCell copies one cell: formula (translated by the given delta), or
// value (strings normalized, numbers and booleans verbatim), plus style.
func copyCell(src *excelize.File, srcSheet string, dst *excelize.File, dstSheet string, srcR, srcC, dstR, dstC, rowDelta, colDelta int, styles *styleTransfer, outcome *models.CopyOutcome) {
	srcCell, err := excelize.CoordinatesToCellName(srcC, srcR)
	if err != nil {
		return
	}
	dstCell, err := excelize.CoordinatesToCellName(dstC, dstR)
	if err != nil {
		return
	}

	if wrote := copyContent(src, srcSheet, srcCell, dst, dstSheet, dstCell, rowDelta, colDelta, outcome); wrote {
		outcome.ValuesCopied++
	}

	if styleID, err := src.GetCellStyle(srcSheet, srcCell); err == nil && styleID != 0 {
		if dstID, ok := styles.transfer(styleID, outcome); ok {
			if err := dst.SetCellStyle(dstSheet, dstCell, dstCell, dstID); err != nil {
				outcome.Warn(fmt.Sprintf("style %s: %v", dstCell, err))
			}
		}
	}
}

func copyContent(src *excelize.File, srcSheet, srcCell string, dst *excelize.File, dstSheet, dstCell string, rowDelta, colDelta int, outcome *models.CopyOutcome) bool {
	formula, err := src.GetCellFormula(srcSheet, srcCell)
	if err == nil && strings.TrimSpace(formula) != "" {
		translated, err := TranslateFormula(formula, rowDelta, colDelta)
		if err != nil {
			// Accepted limitation: the verbatim formula may point at the
			// wrong cells at the new location.
			outcome.Warn(fmt.Sprintf("formula %s left untranslated: %v", dstCell, err))
			translated = formula
		}
		if err := dst.SetCellFormula(dstSheet, dstCell, translated); err != nil {
			outcome.Warn(fmt.Sprintf("formula %s: %v", dstCell, err))
			return false
		}
		return true
	}

	raw, err := src.GetCellValue(srcSheet, srcCell, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return false
	}

	cellType, _ := src.GetCellType(srcSheet, srcCell)
	switch cellType {
	case excelize.CellTypeBool:
		err = dst.SetCellBool(dstSheet, dstCell, raw == "1" || strings.EqualFold(raw, "TRUE"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		err = dst.SetCellStr(dstSheet, dstCell, parser.NormalizeText(raw))
	default:
		if v, perr := strconv.ParseFloat(raw, 64); perr == nil {
			err = dst.SetCellFloat(dstSheet, dstCell, v, -1, 64)
		} else {
			err = dst.SetCellStr(dstSheet, dstCell, parser.NormalizeText(raw))
		}
	}
	if err != nil {
		outcome.Warn(fmt.Sprintf("value %s: %v", dstCell, err))
		return false
	}
	return true
}

func sheetMerges(f *excelize.File, sheet string) ([]models.MergedRegion, error) {
	mergeCells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	regions := make([]models.MergedRegion, 0, len(mergeCells))
	for _, mc := range mergeCells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		regions = append(regions, models.MergedRegion{
			MinRow: startRow, MinCol: startCol,
			MaxRow: endRow, MaxCol: endCol,
		})
	}
	return regions, nil
}

// insideContainedMerge reports whether (r, c) is a non-top-left cell of a
// merge wholly inside the copy window.
func insideContainedMerge(contained []models.MergedRegion, r, c int) bool {
	for _, m := range contained {
		if m.Contains(r, c) && !m.IsTopLeft(r, c) {
			return true
		}
	}
	return false
}

// resolveMergeTopLeft maps a merged cell to the top-left of its merge, which
// holds the actual content. Matters for merges only partially inside the
// window, whose member cells are not skipped.
func resolveMergeTopLeft(merges []models.MergedRegion, r, c int) (int, int) {
	for _, m := range merges {
		if m.Contains(r, c) {
			return m.MinRow, m.MinCol
		}
	}
	return r, c
}

func replicateMerge(dst *excelize.File, dstSheet string, m models.MergedRegion, rowOff, colOff int) error {
	topLeft, err := excelize.CoordinatesToCellName(m.MinCol+colOff, m.MinRow+rowOff)
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(m.MaxCol+colOff, m.MaxRow+rowOff)
	if err != nil {
		return err
	}
	return dst.MergeCell(dstSheet, topLeft, bottomRight)
}
