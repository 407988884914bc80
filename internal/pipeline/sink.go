package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureOutputDir creates dir and any missing parents. Re-running against an
// existing directory is a no-op.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// WriteOutput stores data under outputDir using the source's file name,
// going through a temp file and rename so a failed write never leaves a
// truncated output behind.
func WriteOutput(outputDir, fileName string, data []byte) (string, error) {
	if err := EnsureOutputDir(outputDir); err != nil {
		return "", err
	}
	destPath := filepath.Join(outputDir, fileName)

	tmpFile, err := os.CreateTemp(outputDir, ".imgcrop-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return "", err
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", err
	}

	if err := replaceFile(tmpFile.Name(), destPath); err != nil {
		return "", err
	}

	return destPath, nil
}

func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
