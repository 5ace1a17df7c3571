package models

// Style attribute names reported in CopyOutcome.StylesApplied.
const (
	AttrFont       = "font"
	AttrFill       = "fill"
	AttrBorder     = "border"
	AttrAlignment  = "alignment"
	AttrNumFmt     = "number_format"
	AttrProtection = "protection"
)

// CopyOutcome reports what a block copy actually achieved. Style copying is
// best-effort per attribute; callers inspect StylesApplied and Warnings
// instead of relying on silent error swallowing.
type CopyOutcome struct {
	// ValuesCopied counts destination cells that received a value or formula.
	ValuesCopied int
	// MergesCreated counts merged ranges replicated at the destination.
	MergesCreated int
	// StylesApplied is the set of style attribute names that were carried
	// over for at least one cell.
	StylesApplied map[string]bool
	// Warnings collects non-fatal copy problems (failed style transfers,
	// untranslatable formulas written verbatim).
	Warnings []string
}

// NewCopyOutcome returns an initialized outcome.
func NewCopyOutcome() CopyOutcome {
	return CopyOutcome{StylesApplied: make(map[string]bool)}
}

// Applied reports whether the named style attribute was carried over.
func (o CopyOutcome) Applied(attr string) bool {
	return o.StylesApplied[attr]
}

// Warn appends a warning message.
func (o *CopyOutcome) Warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}
