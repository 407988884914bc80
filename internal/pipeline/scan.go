package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrDirNotFound reports a missing or unreadable input directory.
var ErrDirNotFound = errors.New("input directory not found")

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Scan lists the immediate children of inputDir and returns one Candidate per
// regular file whose extension is in the allow-set, matched case-insensitively.
// Subdirectories are skipped, not descended into. An empty result is a normal
// outcome, not an error.
func Scan(inputDir string) ([]Candidate, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, inputDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, inputDir)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirNotFound, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:     filepath.Join(inputDir, entry.Name()),
			FileName: entry.Name(),
		})
	}

	return candidates, nil
}
