package copier

import (
	"strings"
	"testing"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
	"github.com/xuri/excelize/v2"
)

func TestCopyBlockValuesAndFormulas(t *testing.T) {
	src := excelize.NewFile()
	defer src.Close()
	sheet := "Sheet1"
	src.SetCellStr(sheet, "A10", "Door – 1.2m") // en dash, normalized on copy
	src.SetCellStr(sheet, "D12", "Flush door")
	src.SetCellValue(sheet, "G14", 120.0)
	src.SetCellValue(sheet, "I14", 20.0)
	src.SetCellFormula(sheet, "J14", "G14*I14")
	src.SetCellValue(sheet, "B11", 42.5)

	dst := excelize.NewFile()
	defer dst.Close()

	win := models.Window{MinRow: 10, MaxRow: 15, MinCol: 1, MaxCol: 10}
	outcome, err := CopyBlock(src, sheet, dst, "Sheet1", win, 1, 1)
	if err != nil {
		t.Fatalf("CopyBlock failed: %v", err)
	}

	if got, _ := dst.GetCellValue("Sheet1", "A1"); got != "Door - 1.2m" {
		t.Errorf("A1 = %q, expected normalized heading", got)
	}
	if got, _ := dst.GetCellValue("Sheet1", "D3"); got != "Flush door" {
		t.Errorf("D3 = %q, expected Flush door", got)
	}
	if got, _ := dst.GetCellValue("Sheet1", "B2"); got != "42.5" {
		t.Errorf("B2 = %q, expected 42.5", got)
	}
	// Formula translated by the -9 row offset.
	if got, _ := dst.GetCellFormula("Sheet1", "J5"); got != "G5*I5" {
		t.Errorf("J5 formula = %q, expected G5*I5", got)
	}
	if outcome.ValuesCopied != 6 {
		t.Errorf("ValuesCopied = %d, expected 6", outcome.ValuesCopied)
	}
}

func TestCopyBlockMergeRoundTrip(t *testing.T) {
	src := excelize.NewFile()
	defer src.Close()
	sheet := "Sheet1"
	src.SetCellStr(sheet, "A5", "merged heading")
	if err := src.MergeCell(sheet, "A5", "B5"); err != nil {
		t.Fatalf("merge source: %v", err)
	}
	src.SetCellStr(sheet, "C6", "tail")

	dst := excelize.NewFile()
	defer dst.Close()

	win := models.Window{MinRow: 5, MaxRow: 6, MinCol: 1, MaxCol: 10}
	outcome, err := CopyBlock(src, sheet, dst, "Sheet1", win, 100, 1)
	if err != nil {
		t.Fatalf("CopyBlock failed: %v", err)
	}

	merges, err := dst.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatalf("read destination merges: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("expected 1 destination merge, got %d", len(merges))
	}
	if merges[0].GetStartAxis() != "A100" || merges[0].GetEndAxis() != "B100" {
		t.Errorf("merge = %s:%s, expected A100:B100",
			merges[0].GetStartAxis(), merges[0].GetEndAxis())
	}
	if outcome.MergesCreated != 1 {
		t.Errorf("MergesCreated = %d, expected 1", outcome.MergesCreated)
	}

	if got, _ := dst.GetCellValue("Sheet1", "A100"); got != "merged heading" {
		t.Errorf("A100 = %q, expected merged heading", got)
	}
	// The non-top-left merge cell gets no separate write.
	if outcome.ValuesCopied != 2 {
		t.Errorf("ValuesCopied = %d, expected 2 (merge member skipped)", outcome.ValuesCopied)
	}
}

func TestCopyBlockStyles(t *testing.T) {
	src := excelize.NewFile()
	defer src.Close()
	sheet := "Sheet1"
	styleID, err := src.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FF0000"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		t.Fatalf("create style: %v", err)
	}
	src.SetCellStr(sheet, "A1", "styled")
	src.SetCellStyle(sheet, "A1", "A1", styleID)

	dst := excelize.NewFile()
	defer dst.Close()

	win := models.Window{MinRow: 1, MaxRow: 1, MinCol: 1, MaxCol: 2}
	outcome, err := CopyBlock(src, sheet, dst, "Sheet1", win, 1, 1)
	if err != nil {
		t.Fatalf("CopyBlock failed: %v", err)
	}

	for _, attr := range []string{models.AttrFont, models.AttrFill, models.AttrAlignment} {
		if !outcome.Applied(attr) {
			t.Errorf("style attribute %q not applied", attr)
		}
	}

	dstStyleID, err := dst.GetCellStyle("Sheet1", "A1")
	if err != nil {
		t.Fatalf("destination style: %v", err)
	}
	style, err := dst.GetStyle(dstStyleID)
	if err != nil {
		t.Fatalf("read destination style: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Error("bold font not carried to destination")
	}
	if style.Alignment == nil || style.Alignment.Horizontal != "center" {
		t.Error("alignment not carried to destination")
	}
}

func TestCopyBlockColumnOffset(t *testing.T) {
	src := excelize.NewFile()
	defer src.Close()
	src.SetCellValue("Sheet1", "A1", 1.0)
	src.SetCellValue("Sheet1", "B1", 2.0)
	src.SetCellFormula("Sheet1", "C1", "A1+B1")

	dst := excelize.NewFile()
	defer dst.Close()

	win := models.Window{MinRow: 1, MaxRow: 1, MinCol: 1, MaxCol: 3}
	if _, err := CopyBlock(src, "Sheet1", dst, "Sheet1", win, 1, 4); err != nil {
		t.Fatalf("CopyBlock failed: %v", err)
	}

	if got, _ := dst.GetCellValue("Sheet1", "D1"); got != "1" {
		t.Errorf("D1 = %q, expected 1", got)
	}
	if got, _ := dst.GetCellFormula("Sheet1", "F1"); got != "D1+E1" {
		t.Errorf("F1 formula = %q, expected D1+E1", got)
	}
}

func TestCopyBlockUntranslatableFormulaFallsBack(t *testing.T) {
	src := excelize.NewFile()
	defer src.Close()
	// Shifting A1 up by 3 rows falls off the sheet; the formula must be
	// written verbatim instead of aborting the block.
	src.SetCellFormula("Sheet1", "B4", "A1*2")

	dst := excelize.NewFile()
	defer dst.Close()

	win := models.Window{MinRow: 4, MaxRow: 4, MinCol: 1, MaxCol: 2}
	outcome, err := CopyBlock(src, "Sheet1", dst, "Sheet1", win, 1, 1)
	if err != nil {
		t.Fatalf("CopyBlock failed: %v", err)
	}
	if got, _ := dst.GetCellFormula("Sheet1", "B1"); got != "A1*2" {
		t.Errorf("B1 formula = %q, expected verbatim A1*2", got)
	}
	found := false
	for _, w := range outcome.Warnings {
		if strings.Contains(w, "untranslated") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an untranslated-formula warning, got %v", outcome.Warnings)
	}
}
