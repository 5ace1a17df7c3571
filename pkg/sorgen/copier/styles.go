package copier

import (
	"fmt"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/xuri/excelize/v2"
)

// styleTransfer recreates source styles in the destination file, one
// NewStyle call per distinct source style ID. When source and destination
// are the same file, style IDs are reused as-is.
type styleTransfer struct {
	src   *excelize.File
	dst   *excelize.File
	cache map[int]int
}

func newStyleTransfer(src, dst *excelize.File) *styleTransfer {
	return &styleTransfer{src: src, dst: dst, cache: make(map[int]int)}
}

// transfer maps a source style ID to a destination style ID and reports
// which attributes were carried over. Each attribute is best-effort: a
// missing or malformed attribute is skipped, never fatal.
func (t *styleTransfer) transfer(srcID int, outcome *models.CopyOutcome) (int, bool) {
	if t.src == t.dst {
		applyAll(outcome)
		return srcID, true
	}
	if dstID, ok := t.cache[srcID]; ok {
		applyAll(outcome)
		return dstID, true
	}

	style, err := t.src.GetStyle(srcID)
	if err != nil {
		outcome.Warn(fmt.Sprintf("read style %d: %v", srcID, err))
		return 0, false
	}

	rebuilt := &excelize.Style{}
	if style.Font != nil {
		rebuilt.Font = style.Font
		outcome.StylesApplied[models.AttrFont] = true
	}
	if style.Fill.Type != "" {
		rebuilt.Fill = style.Fill
		outcome.StylesApplied[models.AttrFill] = true
	}
	if len(style.Border) > 0 {
		rebuilt.Border = style.Border
		outcome.StylesApplied[models.AttrBorder] = true
	}
	if style.Alignment != nil {
		rebuilt.Alignment = style.Alignment
		outcome.StylesApplied[models.AttrAlignment] = true
	}
	if style.NumFmt != 0 || style.CustomNumFmt != nil {
		rebuilt.NumFmt = style.NumFmt
		rebuilt.CustomNumFmt = style.CustomNumFmt
		outcome.StylesApplied[models.AttrNumFmt] = true
	}
	if style.Protection != nil {
		rebuilt.Protection = style.Protection
		outcome.StylesApplied[models.AttrProtection] = true
	}

	dstID, err := t.dst.NewStyle(rebuilt)
	if err != nil {
		outcome.Warn(fmt.Sprintf("recreate style %d: %v", srcID, err))
		return 0, false
	}
	t.cache[srcID] = dstID
	return dstID, true
}

func applyAll(outcome *models.CopyOutcome) {
	for _, attr := range []string{
		models.AttrFont, models.AttrFill, models.AttrBorder,
		models.AttrAlignment, models.AttrNumFmt, models.AttrProtection,
	} {
		outcome.StylesApplied[attr] = true
	}
}
