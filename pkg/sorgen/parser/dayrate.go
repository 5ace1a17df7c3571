package parser

import (
	"strconv"
	"strings"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/xuri/excelize/v2"
)

// Day-rate variant layout: within each item block, column C holds the day
// number and column J the rate for that day (a value or a formula).
const (
	dayNumberCol = 3
	dayRateCol   = 10
)

// ExtractDayRates builds a day-rate table from the item blocks of a
// temporary-works backend sheet. The cached cell value wins when it parses
// as a positive number; otherwise a formula in the rate cell is evaluated
// with the restricted evaluator. Days with non-positive numbers or
// unresolvable rates are dropped. Table keys are whitespace-normalized item
// names.
func ExtractDayRates(f *excelize.File, sheet string, blocks []models.ItemBlock) models.DayRateTable {
	table := make(models.DayRateTable)
	resolve := sheetResolver(f, sheet)

	for _, block := range blocks {
		key := NormalizeKey(block.Name)
		for row := block.StartRow; row <= block.EndRow; row++ {
			day, ok := dayNumberAt(f, sheet, row)
			if !ok {
				continue
			}
			rate, ok := rateAt(f, sheet, row, resolve)
			if !ok {
				continue
			}
			table.Set(key, day, rate)
		}
	}

	return table
}

func dayNumberAt(f *excelize.File, sheet string, row int) (int, bool) {
	cell, err := excelize.CoordinatesToCellName(dayNumberCol, row)
	if err != nil {
		return 0, false
	}
	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	day := int(v)
	if day <= 0 {
		return 0, false
	}
	return day, true
}

func rateAt(f *excelize.File, sheet string, row int, resolve ResolveFunc) (float64, bool) {
	cell, err := excelize.CoordinatesToCellName(dayRateCol, row)
	if err != nil {
		return 0, false
	}

	// Cached value first.
	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && v > 0 {
			return v, true
		}
	}

	// Formula fallback.
	formula, err := f.GetCellFormula(sheet, cell)
	if err != nil || strings.TrimSpace(formula) == "" {
		return 0, false
	}
	if v := EvalFormula(formula, resolve); v > 0 {
		return v, true
	}
	return 0, false
}

// sheetResolver adapts a worksheet into a ResolveFunc for the restricted
// evaluator: formulas come back with a leading "=", plain cells as raw text.
func sheetResolver(f *excelize.File, sheet string) ResolveFunc {
	return func(ref string) (string, bool) {
		if formula, err := f.GetCellFormula(sheet, ref); err == nil && strings.TrimSpace(formula) != "" {
			return "=" + formula, true
		}
		raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
		if err != nil || strings.TrimSpace(raw) == "" {
			return "", false
		}
		return raw, true
	}
}
