package sorgen

import (
	"fmt"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/copier"
	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/parser"
	"github.com/xuri/excelize/v2"
)

// PlacedItem records where one item block landed in the output sheet.
type PlacedItem struct {
	// Name is the requested item name.
	Name string
	// StartRow and EndRow are the destination rows (1-based, inclusive).
	StartRow int
	EndRow   int
	// Unit is the item's unit from the Groups sheet, "" when unknown.
	Unit string
	// Outcome reports what the block copy carried over.
	Outcome models.CopyOutcome
}

// Composition is the result of composing selected items into a new workbook.
// Missing items are skipped, never fatal: callers surface them as reduced
// fidelity, not as a failed job.
type Composition struct {
	// File is the composed output workbook, not yet persisted.
	File *excelize.File
	// Placed lists the copied blocks in output order.
	Placed []PlacedItem
	// Missing lists requested item names with no matching block.
	Missing []string
}

// Compose builds a new output workbook from the named items of a loaded
// backend: one copied block per found item appended to the output sheet,
// plus an estimate summary sheet. Item names missing from the backend are
// collected in Composition.Missing and skipped.
func Compose(b *Backend, names []string, opts ComposeOptions) (*Composition, error) {
	if opts.OutputSheet == "" {
		opts = DefaultComposeOptions()
	}
	if opts.Columns <= 0 {
		opts.Columns = DefaultComposeOptions().Columns
	}

	dst := excelize.NewFile()
	if err := dst.SetSheetName("Sheet1", opts.OutputSheet); err != nil {
		return nil, fmt.Errorf("create output sheet: %w", err)
	}
	if _, err := dst.NewSheet(opts.SummarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	comp := &Composition{File: dst}
	cursor := 1
	for _, name := range names {
		block, ok := b.Block(name)
		if !ok {
			comp.Missing = append(comp.Missing, name)
			continue
		}

		win := models.Window{
			MinRow: block.StartRow, MaxRow: block.EndRow,
			MinCol: 1, MaxCol: opts.Columns,
		}
		outcome, err := copier.CopyBlock(b.File, MasterSheet, dst, opts.OutputSheet, win, cursor, 1)
		if err != nil {
			return nil, fmt.Errorf("copy block %q: %w", block.Name, err)
		}

		applyPrefix(dst, opts.OutputSheet, b, block, cursor)

		comp.Placed = append(comp.Placed, PlacedItem{
			Name:     block.Name,
			StartRow: cursor,
			EndRow:   cursor + block.Rows() - 1,
			Unit:     b.Unit(block.Name),
			Outcome:  outcome,
		})
		cursor += block.Rows()
	}

	if err := writeSummary(dst, opts.SummarySheet, comp.Placed); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	if opts.ShouldApplyPrintSetup() {
		if err := applyPrintSetup(dst, opts.OutputSheet); err != nil {
			return nil, fmt.Errorf("print setup: %w", err)
		}
	}

	return comp, nil
}

// applyPrefix prepends the item's regional prefix wording to the copied
// heading cell. Best-effort: a failed rewrite leaves the plain heading.
func applyPrefix(dst *excelize.File, sheet string, b *Backend, block models.ItemBlock, dstRow int) {
	prefix, ok := b.Prefixes[block.Name]
	if !ok || prefix == "" {
		return
	}
	cell, err := excelize.CoordinatesToCellName(block.HeadCol, dstRow)
	if err != nil {
		return
	}
	current, err := dst.GetCellValue(sheet, cell)
	if err != nil || current == "" {
		current = block.Name
	}
	dst.SetCellStr(sheet, cell, parser.NormalizeText(prefix+" "+current))
}

var summaryHeader = []string{"S.No", "Item", "Unit", "Output Row"}

// writeSummary fills the estimate sheet with one line per placed item.
// Totals and taxes are appended by the calling task, not here.
func writeSummary(dst *excelize.File, sheet string, placed []PlacedItem) error {
	for c, h := range summaryHeader {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := dst.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
	}
	headerStyle, err := dst.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(summaryHeader), 1)
		dst.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, item := range placed {
		row := i + 2
		values := []interface{}{i + 1, item.Name, item.Unit, item.StartRow}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := dst.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyPrintSetup applies portrait A4 with fit-to-width, matching how
// generated documents are printed by site engineers.
func applyPrintSetup(dst *excelize.File, sheet string) error {
	orientation := "portrait"
	a4 := 9
	fitToWidth := 1
	return dst.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		Size:        &a4,
		FitToWidth:  &fitToWidth,
	})
}
