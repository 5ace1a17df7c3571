package parser

import (
	"strings"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/xuri/excelize/v2"
)

// headingScanCols is the fixed column window inspected for headings. Backend
// business data never extends past column J; columns beyond it are neither
// scanned nor copied.
const headingScanCols = 10

// DetectItems scans the sheet top to bottom and partitions it into item
// blocks, each starting at a heading row and running to the row before the
// next heading (or the sheet's last row for the final block).
//
// It is a pure function of the worksheet content: no side effects, bounded by
// the sheet's row count. A sheet with no headings yields an empty result.
func DetectItems(f *excelize.File, sheet string) ([]models.ItemBlock, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	maxRow := len(rows)

	var blocks []models.ItemBlock
	r := 1
	for r <= maxRow {
		name, col, ok := headingAt(f, sheet, r)
		if !ok {
			r++
			continue
		}

		end := maxRow
		for next := r + 1; next <= maxRow; next++ {
			if _, _, ok := headingAt(f, sheet, next); ok {
				end = next - 1
				break
			}
		}

		blocks = append(blocks, models.ItemBlock{
			Name:     name,
			StartRow: r,
			EndRow:   end,
			HeadCol:  col,
		})
		r = end + 1
	}

	return blocks, nil
}

// headingAt scans columns 1..headingScanCols of a row left to right and
// returns the first heading cell's stripped value and column.
func headingAt(f *excelize.File, sheet string, row int) (string, int, bool) {
	for col := 1; col <= headingScanCols; col++ {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			continue
		}
		look, err := cellLook(f, sheet, cell)
		if err != nil {
			continue
		}
		if isHeading(look) {
			return strings.TrimSpace(look.Value), col, true
		}
	}
	return "", 0, false
}
