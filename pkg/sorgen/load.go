package sorgen

import (
	"fmt"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/parser"
	"github.com/xuri/excelize/v2"
)

// Backend is a loaded SOR backend workbook with its derived lookup tables.
// Item blocks, groups, units, and prefixes are recomputed on every load; the
// workbook file itself is the durable store.
type Backend struct {
	// File is the open source workbook, formulas preserved.
	File *excelize.File
	// Path is the resolved filesystem path the workbook was loaded from.
	Path string
	// Items lists detected item blocks in sheet order.
	Items []models.ItemBlock
	// Groups holds the group and unit lookup tables.
	Groups *models.GroupMapping
	// Prefixes maps item name to its regional prefix wording.
	Prefixes map[string]string

	index map[string]models.ItemBlock
}

// LoadBackend opens a backend workbook and builds its lookup tables.
// It fails fast with ErrMissingRequiredSheet unless both "Master Datas" and
// "Groups" worksheets are present.
func LoadBackend(path string) (*Backend, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &BackendError{Path: path, Err: err}
	}

	for _, sheet := range []string{MasterSheet, GroupsSheet} {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			f.Close()
			return nil, &BackendError{Path: path, Sheet: sheet, Err: ErrMissingRequiredSheet}
		}
	}

	items, err := parser.DetectItems(f, MasterSheet)
	if err != nil {
		f.Close()
		return nil, &BackendError{Path: path, Sheet: MasterSheet, Err: err}
	}
	groups, err := parser.ReadGroups(f, GroupsSheet)
	if err != nil {
		f.Close()
		return nil, &BackendError{Path: path, Sheet: GroupsSheet, Err: err}
	}
	prefixes, err := parser.ReadPrefixes(f, GroupsSheet)
	if err != nil {
		f.Close()
		return nil, &BackendError{Path: path, Sheet: GroupsSheet, Err: err}
	}

	// Lookup by normalized name; a duplicated heading overwrites the
	// earlier entry, the sheet-order list keeps both.
	index := make(map[string]models.ItemBlock, len(items))
	for _, item := range items {
		index[parser.NormalizeKey(item.Name)] = item
	}

	return &Backend{
		File:     f,
		Path:     path,
		Items:    items,
		Groups:   groups,
		Prefixes: prefixes,
		index:    index,
	}, nil
}

// ResolveAndLoad resolves the backend file for a request and loads it.
func ResolveAndLoad(cfg BackendConfig, req BackendRequest) (*Backend, error) {
	path, err := ResolveBackend(cfg, req)
	if err != nil {
		return nil, err
	}
	return LoadBackend(path)
}

// Block looks up an item block by name; the lookup tolerates differing
// whitespace normalization between the UI and the worksheet.
func (b *Backend) Block(name string) (models.ItemBlock, bool) {
	block, ok := b.index[parser.NormalizeKey(name)]
	return block, ok
}

// Unit returns the unit string recorded for an item, or "".
func (b *Backend) Unit(item string) string {
	return b.Groups.Units[item]
}

// Close releases the underlying workbook.
func (b *Backend) Close() error {
	return b.File.Close()
}

// DayRates builds the day-rate table for a temporary-works backend file.
func (b *Backend) DayRates() models.DayRateTable {
	return parser.ExtractDayRates(b.File, MasterSheet, b.Items)
}

// BuildDayRates loads a temporary-works backend file and extracts its
// day-rate table in one step.
func BuildDayRates(path string) (models.DayRateTable, error) {
	b, err := LoadBackend(path)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	return b.DayRates(), nil
}

// String implements fmt.Stringer for log lines.
func (b *Backend) String() string {
	return fmt.Sprintf("backend %s (%d items, %d groups)", b.Path, len(b.Items), len(b.Groups.GroupOrder))
}
