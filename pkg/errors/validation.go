package errors

import (
	"strings"
	"unicode"
)

// ValidateItemID validates a gallery item identifier.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators (IDs are used in cache paths and output filenames)
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidItem, "item ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item ID contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidItem, "item ID cannot contain path separators")
	}

	return nil
}

// ValidateFilePath validates an image file reference from a manifest.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "file path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "file path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "file path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "file path cannot contain backslashes")
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename with a supported extension.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".toml") && !strings.HasSuffix(lower, ".json") {
		return New(ErrCodeInvalidManifest, "unsupported manifest format: %q (expected .toml or .json)", filename)
	}

	return nil
}
