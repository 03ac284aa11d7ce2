package errors

import (
	"strings"
	"unicode"
)

// ValidateColumnName validates a user-supplied column name override.
// It rejects names that could not have come from a CSV header.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidColumn, "column name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidColumn, "column name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColumn, "column name contains control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateListenAddr validates a host:port listen address for the preview
// server. An empty host (":8080") is allowed.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}

	i := strings.LastIndex(addr, ":")
	if i < 0 {
		return New(ErrCodeInvalidInput, "listen address must be host:port, got %q", addr)
	}

	port := addr[i+1:]
	if port == "" {
		return New(ErrCodeInvalidInput, "listen address missing port: %q", addr)
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidInput, "listen address has non-numeric port: %q", addr)
		}
	}

	return nil
}
