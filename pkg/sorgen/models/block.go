// Package models defines data structures for SOR backend extraction.
package models

// ItemBlock represents one catalog entry inside a source worksheet: a
// contiguous row range starting at a colored heading row.
type ItemBlock struct {
	// Name is the heading label, stringified and stripped.
	Name string `json:"name"`
	// StartRow is the heading row (1-based, inclusive).
	StartRow int `json:"start_row"`
	// EndRow is the last row of the block (1-based, inclusive).
	EndRow int `json:"end_row"`
	// HeadCol is the column (1-based) where the heading cell was found.
	HeadCol int `json:"head_col"`
}

// Rows returns the number of rows the block spans.
func (b ItemBlock) Rows() int {
	return b.EndRow - b.StartRow + 1
}

// Window is a rectangular cell region, 1-based and inclusive on all bounds.
type Window struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Contains reports whether the cell at (row, col) lies inside the window.
func (w Window) Contains(row, col int) bool {
	return row >= w.MinRow && row <= w.MaxRow && col >= w.MinCol && col <= w.MaxCol
}

// MergedRegion identifies a merged cell range by its bounds.
type MergedRegion struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// IsTopLeft reports whether (row, col) is the top-left cell of the merge.
func (m MergedRegion) IsTopLeft(row, col int) bool {
	return row == m.MinRow && col == m.MinCol
}

// Contains reports whether the cell at (row, col) lies inside the merge.
func (m MergedRegion) Contains(row, col int) bool {
	return row >= m.MinRow && row <= m.MaxRow && col >= m.MinCol && col <= m.MaxCol
}

// ContainedIn reports whether the merge lies wholly inside the window.
func (m MergedRegion) ContainedIn(w Window) bool {
	return m.MinRow >= w.MinRow && m.MaxRow <= w.MaxRow &&
		m.MinCol >= w.MinCol && m.MaxCol <= w.MaxCol
}
