package parser

import (
	"strings"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/xuri/excelize/v2"
)

// Groups sheet layout, fixed by the backend authoring convention:
// column A = item name, column B = group, column C = regional prefix
// (read separately by ReadPrefixes), column D = unit.
const (
	groupsItemCol  = 0
	groupsGroupCol = 1
	groupsUnitCol  = 3
)

// ReadGroups parses the "Groups" worksheet into group and unit lookup
// tables. Rows start at 2; a row with an empty item or group is skipped.
// Group membership keeps duplicates in encounter order; a repeated item's
// unit is overwritten by the last occurrence.
func ReadGroups(f *excelize.File, sheet string) (*models.GroupMapping, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	mapping := models.NewGroupMapping()
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		item := strings.TrimSpace(cellAt(row, groupsItemCol))
		group := strings.TrimSpace(cellAt(row, groupsGroupCol))
		if item == "" || group == "" {
			continue
		}
		mapping.Add(group, item)

		if unit := strings.TrimSpace(cellAt(row, groupsUnitCol)); unit != "" {
			mapping.Units[item] = unit
		}
	}

	return mapping, nil
}

// ReadPrefixes scans the Groups sheet for a header row containing "item name"
// and "prefix" cells (case-insensitive), then reads item-to-prefix pairs from
// every row below it. The search stops at the first row with any header
// match; when no header row exists, the result is empty and no error is
// raised.
func ReadPrefixes(f *excelize.File, sheet string) (map[string]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	prefixes := make(map[string]string)
	itemCol, prefixCol, headerRow := -1, -1, -1
	for i, row := range rows {
		for c, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "item name":
				itemCol = c
				headerRow = i
			case "prefix":
				prefixCol = c
				headerRow = i
			}
		}
		if headerRow >= 0 {
			break
		}
	}
	if headerRow < 0 || itemCol < 0 || prefixCol < 0 {
		return prefixes, nil
	}

	for i := headerRow + 1; i < len(rows); i++ {
		item := strings.TrimSpace(cellAt(rows[i], itemCol))
		prefix := strings.TrimSpace(cellAt(rows[i], prefixCol))
		if item == "" || prefix == "" {
			continue
		}
		prefixes[item] = prefix
	}

	return prefixes, nil
}

// cellAt returns the cell at index col, or "" when the row is shorter.
// excelize trims trailing empty cells from GetRows results.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
