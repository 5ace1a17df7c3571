package sorgen

import "path/filepath"

// GroupSummary counts items per group for a backend report.
type GroupSummary struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

// Report summarizes a backend workbook for the admin workflow that validates
// an uploaded file before publishing it.
type Report struct {
	BookName  string         `json:"book_name"`
	Sheets    []string       `json:"sheets"`
	ItemCount int            `json:"item_count"`
	Groups    []GroupSummary `json:"groups"`
	Units     int            `json:"units"`
	Prefixes  int            `json:"prefixes"`
}

// Inspect loads a backend workbook and summarizes its structure.
func Inspect(path string) (*Report, error) {
	b, err := LoadBackend(path)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	report := &Report{
		BookName:  filepath.Base(path),
		Sheets:    b.File.GetSheetList(),
		ItemCount: len(b.Items),
		Units:     len(b.Groups.Units),
		Prefixes:  len(b.Prefixes),
	}
	for _, group := range b.Groups.GroupOrder {
		report.Groups = append(report.Groups, GroupSummary{
			Name:  group,
			Items: len(b.Groups.Groups[group]),
		})
	}
	return report, nil
}
