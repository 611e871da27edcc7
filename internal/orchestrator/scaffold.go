package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeepFile is the empty placeholder that lets git track an empty folder
const KeepFile = ".gitkeep"

// Scaffold creates each configured folder under the working copy root with
// an empty KeepFile inside. Existing markers are left alone.
// It returns the marker paths it created, relative to the root.
func (o *Orchestrator) Scaffold(ctx context.Context) ([]string, error) {
	root := o.cfg.Root
	if root == "" {
		root = "."
	}

	var created []string
	for _, folder := range o.cfg.Folders {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		rel, err := cleanFolder(folder)
		if err != nil {
			return created, err
		}

		dir := filepath.Join(root, rel)
		marker := filepath.Join(dir, KeepFile)
		if _, err := os.Stat(marker); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return created, fmt.Errorf("checking %s: %w", marker, err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("creating %s: %w", dir, err)
		}
		if err := os.WriteFile(marker, nil, 0644); err != nil {
			return created, fmt.Errorf("creating %s: %w", marker, err)
		}

		o.log.Debug("Created folder marker", "path", marker)
		created = append(created, filepath.Join(rel, KeepFile))
	}
	return created, nil
}

// cleanFolder rejects folders that would land outside the working copy
func cleanFolder(folder string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimSpace(folder)))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid scaffold folder %q", folder)
	}
	return rel, nil
}
