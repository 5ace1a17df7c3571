// Package copier copies item blocks between worksheets: values, translated
// formulas, styles, merged ranges, row heights, and column widths.
package copier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// refPattern matches a candidate A1-style cell reference with optional "$"
// anchors on either part.
var refPattern = regexp.MustCompile(`\$?[A-Za-z]{1,3}\$?[0-9]{1,7}`)

// TranslateFormula shifts the relative cell references in a formula by the
// given row/column delta, the standard relocation rule for copied formulas.
// "$"-anchored rows or columns stay put, sheet-qualified references are left
// untouched, and text inside double-quoted string literals is never
// rewritten. An error is returned when a shifted reference would fall off
// the sheet; callers fall back to the verbatim formula text.
func TranslateFormula(formula string, rowDelta, colDelta int) (string, error) {
	var b strings.Builder
	last := 0
	for _, loc := range refPattern.FindAllStringIndex(formula, -1) {
		start, end := loc[0], loc[1]
		if start < last || !isCellRef(formula, start, end) {
			continue
		}
		translated, err := shiftRef(formula[start:end], rowDelta, colDelta)
		if err != nil {
			return "", err
		}
		b.WriteString(formula[last:start])
		b.WriteString(translated)
		last = end
	}
	b.WriteString(formula[last:])
	return b.String(), nil
}

// isCellRef filters out matches that are not actually cell references:
// sheet-qualified refs, function names (followed by "("), identifier tails,
// and text inside string literals.
func isCellRef(formula string, start, end int) bool {
	if start > 0 {
		prev := formula[start-1]
		if prev == '!' || prev == '_' || prev == '.' || isAlphaNum(prev) {
			return false
		}
	}
	if end < len(formula) {
		next := formula[end]
		if next == '(' || next == '_' || next == '.' || isAlphaNum(next) {
			return false
		}
	}
	return !inStringLiteral(formula, start)
}

func inStringLiteral(formula string, pos int) bool {
	quotes := 0
	for i := 0; i < pos; i++ {
		if formula[i] == '"' {
			quotes++
		}
	}
	return quotes%2 == 1
}

func isAlphaNum(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

// shiftRef relocates a single reference, honoring "$" anchors per part.
func shiftRef(ref string, rowDelta, colDelta int) (string, error) {
	absCol := strings.HasPrefix(ref, "$")
	rest := strings.TrimPrefix(ref, "$")
	digits := strings.IndexFunc(rest, func(r rune) bool { return r == '$' || r >= '0' && r <= '9' })
	if digits <= 0 {
		return "", fmt.Errorf("malformed reference %q", ref)
	}
	absRow := rest[digits] == '$'

	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(rest, "$", ""))
	if err != nil {
		return "", err
	}
	if !absCol {
		col += colDelta
	}
	if !absRow {
		row += rowDelta
	}
	if col < 1 || row < 1 {
		return "", fmt.Errorf("reference %q shifted off the sheet", ref)
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	colPart := name[:len(name)-lenDigits(name)]
	rowPart := name[len(name)-lenDigits(name):]
	var b strings.Builder
	if absCol {
		b.WriteByte('$')
	}
	b.WriteString(colPart)
	if absRow {
		b.WriteByte('$')
	}
	b.WriteString(rowPart)
	return b.String(), nil
}

func lenDigits(name string) int {
	n := 0
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] < '0' || name[i] > '9' {
			break
		}
		n++
	}
	return n
}
