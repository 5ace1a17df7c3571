package parser

import (
	"testing"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen/models"
)

func themeRef(n int) *int { return &n }

func TestIsYellowFill(t *testing.T) {
	tests := []struct {
		name     string
		look     models.CellLook
		expected bool
	}{
		{"rgb yellow", models.CellLook{SolidFill: true, Fill: models.Color{RGB: "FFFF00"}}, true},
		{"argb yellow", models.CellLook{SolidFill: true, Fill: models.Color{RGB: "FFFFFF00"}}, true},
		{"lowercase argb", models.CellLook{SolidFill: true, Fill: models.Color{RGB: "ffffff00"}}, true},
		{"theme 4", models.CellLook{SolidFill: true, Fill: models.Color{Theme: themeRef(4)}}, true},
		{"theme 5", models.CellLook{SolidFill: true, Fill: models.Color{Theme: themeRef(5)}}, true},
		{"theme 6", models.CellLook{SolidFill: true, Fill: models.Color{Theme: themeRef(6)}}, true},
		{"theme 7", models.CellLook{SolidFill: true, Fill: models.Color{Theme: themeRef(7)}}, false},
		{"indexed 6", models.CellLook{SolidFill: true, Fill: models.Color{Indexed: 6}}, true},
		{"indexed 5", models.CellLook{SolidFill: true, Fill: models.Color{Indexed: 5}}, false},
		{"white rgb", models.CellLook{SolidFill: true, Fill: models.Color{RGB: "FFFFFF"}}, false},
		{"yellow but not solid", models.CellLook{SolidFill: false, Fill: models.Color{RGB: "FFFF00"}}, false},
		{"no color", models.CellLook{SolidFill: true}, false},
	}
	for _, tt := range tests {
		if got := isYellowFill(tt.look); got != tt.expected {
			t.Errorf("%s: isYellowFill = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestIsRedFont(t *testing.T) {
	tests := []struct {
		name     string
		font     *models.Color
		expected bool
	}{
		{"rgb red", &models.Color{RGB: "FF0000"}, true},
		{"argb red", &models.Color{RGB: "FFFF0000"}, true},
		{"black", &models.Color{RGB: "000000"}, false},
		// Any theme-colored font is accepted by convention.
		{"theme 1", &models.Color{Theme: themeRef(1)}, true},
		{"theme 9", &models.Color{Theme: themeRef(9)}, true},
		{"indexed 3", &models.Color{Indexed: 3}, true},
		{"indexed 4", &models.Color{Indexed: 4}, false},
		{"no color", nil, false},
	}
	for _, tt := range tests {
		look := models.CellLook{Font: tt.font}
		if got := isRedFont(look); got != tt.expected {
			t.Errorf("%s: isRedFont = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

// Heading classification requires both colors plus a non-empty value; one
// color alone never qualifies.
func TestIsHeadingRequiresBothColors(t *testing.T) {
	yellow := models.Color{RGB: "FFFF00"}
	red := models.Color{RGB: "FF0000"}
	black := models.Color{RGB: "000000"}
	white := models.Color{RGB: "FFFFFF"}

	tests := []struct {
		name     string
		look     models.CellLook
		expected bool
	}{
		{"both colors", models.CellLook{SolidFill: true, Fill: yellow, Font: &red, Value: "Item"}, true},
		{"yellow fill black text", models.CellLook{SolidFill: true, Fill: yellow, Font: &black, Value: "Item"}, false},
		{"red text white fill", models.CellLook{SolidFill: true, Fill: white, Font: &red, Value: "Item"}, false},
		{"both colors empty value", models.CellLook{SolidFill: true, Fill: yellow, Font: &red, Value: "   "}, false},
	}
	for _, tt := range tests {
		if got := isHeading(tt.look); got != tt.expected {
			t.Errorf("%s: isHeading = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
