// Package image loads source images for palette extraction.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// StdinPath reads the image from standard input.
const StdinPath = "-"

// ErrUnsupportedFormat is returned when no registered decoder accepts the input.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Loader loads an image from a path.
type Loader interface {
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem, or stdin for "-".
type FileLoader struct {
	Stdin io.Reader
}

// NewFileLoader creates a FileLoader reading "-" from os.Stdin.
func NewFileLoader() *FileLoader {
	return &FileLoader{Stdin: os.Stdin}
}

// Load loads an image from path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}
	if path == StdinPath {
		return Decode(l.Stdin)
	}
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode decodes an image from r using any registered format, reading at
// most MaxImageBytes.
func Decode(r io.Reader) (image.Image, error) {
	return decodeLimit(r, MaxImageBytes)
}

func decodeLimit(r io.Reader, maxBytes int64) (image.Image, error) {
	if r == nil {
		return nil, fmt.Errorf("no image input")
	}
	img, _, err := image.Decode(newLimitedReader(r, maxBytes))
	if err != nil {
		switch {
		case errors.Is(err, ErrImageTooLarge):
			return nil, err
		case errors.Is(err, image.ErrFormat):
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ValidatePath checks that path names an existing regular file with a
// supported extension.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !IsImageFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return nil
}

// SupportedExtensions returns the recognised image file extensions.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// IsImageFile reports whether path has a supported image extension.
func IsImageFile(path string) bool {
	return slices.Contains(SupportedExtensions(), strings.ToLower(filepath.Ext(path)))
}
