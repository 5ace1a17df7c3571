// Package sorgen generates construction estimate workbooks from Schedule of
// Rates backend files: it locates a backend workbook, detects its item
// blocks, and composes selected blocks into a new output workbook.
package sorgen

// Required worksheet names in every backend workbook.
const (
	MasterSheet = "Master Datas"
	GroupsSheet = "Groups"
)

// BackendConfig locates backend workbook storage. It is passed explicitly at
// call time so the engine runs without any ambient configuration.
type BackendConfig struct {
	// BaseDir is the root of managed backend storage (uploads, preferences,
	// module defaults, legacy files).
	BaseDir string
	// StaticDir holds the bundled fallback files shipped with the
	// application.
	StaticDir string
}

// BackendRequest identifies which backend workbook a caller wants.
type BackendRequest struct {
	// Category is the rate-book category (always required).
	Category string
	// ModuleCode selects a module default, empty to skip that tier.
	ModuleCode string
	// BackendID is an explicit backend upload id, 0 when unset.
	BackendID int
	// User is the requesting account, empty to skip preference lookup.
	User string
}

// ComposeOptions configures output workbook composition.
type ComposeOptions struct {
	// OutputSheet is the sheet receiving the copied item blocks.
	OutputSheet string
	// SummarySheet is the estimate summary sheet name.
	SummarySheet string
	// Columns is the width of the copied window; the heading scan window
	// (columns A..J) is the business-data bound.
	Columns int
	// PrintSetup controls portrait/A4/fit-to-width print settings on the
	// output sheet. If nil, defaults to true.
	PrintSetup *bool
}

// DefaultComposeOptions returns the standard composition settings.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		OutputSheet:  "Output",
		SummarySheet: "Estimate",
		Columns:      10,
	}
}

// ShouldApplyPrintSetup resolves the PrintSetup tri-state.
func (o ComposeOptions) ShouldApplyPrintSetup() bool {
	if o.PrintSetup != nil {
		return *o.PrintSetup
	}
	return true
}
