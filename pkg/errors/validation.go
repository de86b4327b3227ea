package errors

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// ParseDimension parses a box dimension given on the command line.
// It accepts any decimal or scientific notation understood by
// strconv.ParseFloat and then applies [ValidateDimension].
func ParseDimension(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, New(ErrCodeInvalidDimension, "%s is missing", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, New(ErrCodeInvalidDimension, "%s must be a number, got %q", name, raw)
	}
	if err := ValidateDimension(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateDimension checks that v is a finite, strictly positive length.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be finite, got %g", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be greater than zero, got %g", name, v)
	}
	return nil
}

// ValidateOutputPath validates a destination file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}
	switch filepath.Base(path) {
	case ".", "..":
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
