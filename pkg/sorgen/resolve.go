package sorgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ResolveBackend locates the physical backend workbook for a request by
// trying storage tiers in priority order: explicit upload id, user
// preference, module default, legacy per-category file, bundled static file.
// The first existing readable file wins. Resolution failure returns
// ErrBackendNotFound; administrative file replacement is assumed atomic, so
// a returned path names a stable, fully-written file.
func ResolveBackend(cfg BackendConfig, req BackendRequest) (string, error) {
	for _, candidate := range backendCandidates(cfg, req) {
		if candidate == "" {
			continue
		}
		if isReadableFile(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("category %q module %q: %w", req.Category, req.ModuleCode, ErrBackendNotFound)
}

func backendCandidates(cfg BackendConfig, req BackendRequest) []string {
	candidates := make([]string, 0, 5)

	if req.BackendID > 0 {
		candidates = append(candidates,
			filepath.Join(cfg.BaseDir, "backends", strconv.Itoa(req.BackendID)+".xlsx"))
	}
	if req.User != "" && req.Category != "" {
		candidates = append(candidates,
			filepath.Join(cfg.BaseDir, "prefs", req.User, req.Category+".xlsx"))
	}
	if req.ModuleCode != "" && req.Category != "" {
		candidates = append(candidates,
			filepath.Join(cfg.BaseDir, "modules", req.ModuleCode, req.Category+".xlsx"))
	}
	if req.Category != "" {
		candidates = append(candidates,
			filepath.Join(cfg.BaseDir, "legacy", req.Category+".xlsx"))
		if cfg.StaticDir != "" {
			candidates = append(candidates,
				filepath.Join(cfg.StaticDir, req.Category+".xlsx"))
		}
	}

	return candidates
}

func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
