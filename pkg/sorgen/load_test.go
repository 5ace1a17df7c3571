package sorgen

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadBackendMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet(MasterSheet); err != nil {
		t.Fatalf("create sheet: %v", err)
	}
	// No "Groups" sheet.
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := LoadBackend(path)
	if !errors.Is(err, ErrMissingRequiredSheet) {
		t.Fatalf("expected ErrMissingRequiredSheet, got %v", err)
	}

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatal("expected a *BackendError")
	}
	if backendErr.Sheet != GroupsSheet {
		t.Errorf("error names sheet %q, expected %q", backendErr.Sheet, GroupsSheet)
	}
}

func TestLoadBackendUnreadableFile(t *testing.T) {
	_, err := LoadBackend(filepath.Join(t.TempDir(), "nope.xlsx"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected a *BackendError, got %T", err)
	}
}

func TestResolveAndLoad(t *testing.T) {
	base := t.TempDir()
	backendPath := buildBackendFile(t)

	legacyDir := filepath.Join(base, "legacy")
	copyFile(t, backendPath, filepath.Join(legacyDir, "civil.xlsx"))

	b, err := ResolveAndLoad(BackendConfig{BaseDir: base}, BackendRequest{Category: "civil"})
	if err != nil {
		t.Fatalf("ResolveAndLoad failed: %v", err)
	}
	defer b.Close()
	if len(b.Items) != 2 {
		t.Errorf("loaded %d items, expected 2", len(b.Items))
	}
}
