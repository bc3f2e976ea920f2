package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GIFExtension is the only file type the picker accepts
const GIFExtension = ".gif"

// PicturesDirName is the conventional pictures folder inside the home directory
const PicturesDirName = "Pictures"

// ErrNotGIF is returned for paths without a .gif extension
var ErrNotGIF = errors.New("not a GIF file")

// IsGIFPath reports whether path has a .gif extension (case-insensitive)
func IsGIFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), GIFExtension)
}

// ValidateGIFPath checks that path names an existing regular .gif file
func ValidateGIFPath(path string) error {
	if path == "" {
		return fmt.Errorf("file path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}
	if !IsGIFPath(path) {
		return fmt.Errorf("%w: %s", ErrNotGIF, filepath.Base(path))
	}
	return nil
}

// GetHomePicturesDir returns the standard Pictures directory for the user.
// It falls back to the home directory when Pictures does not exist.
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	picturesDir := filepath.Join(homeDir, PicturesDirName)
	if info, err := os.Stat(picturesDir); err == nil && info.IsDir() {
		return picturesDir, nil
	}
	return homeDir, nil
}

// ExistingDir returns dir when it is an existing directory, otherwise ""
func ExistingDir(dir string) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}
