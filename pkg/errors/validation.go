package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateCoordinate validates a Maven "group:artifact" or
// "group:artifact:version" coordinate for safety and basic shape.
//
// The validation rules are intentionally conservative:
//   - No empty coordinates
//   - No control characters or null bytes
//   - No path traversal sequences (.., //, backslashes)
//   - Two or three colon-separated non-empty fields
//   - Maximum length of 256 characters
func ValidateCoordinate(coord string) error {
	if coord == "" {
		return New(ErrCodeInvalidCoordinate, "coordinate cannot be empty")
	}

	if len(coord) > 256 {
		return New(ErrCodeInvalidCoordinate, "coordinate too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range coord {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCoordinate, "coordinate contains invalid control characters")
		}
	}

	// Check for path traversal patterns; coordinates become cache paths
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
		"/",    // Separator
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(coord, pattern) {
			return New(ErrCodeInvalidCoordinate, "coordinate contains invalid characters: %q", pattern)
		}
	}

	parts := strings.Split(coord, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return New(ErrCodeInvalidCoordinate, "coordinate must have 2 or 3 colon-separated fields: %q", coord)
	}
	for _, p := range parts {
		if p == "" {
			return New(ErrCodeInvalidCoordinate, "coordinate has an empty field: %q", coord)
		}
	}

	return nil
}

// configurationNameRegex matches valid Gradle configuration names.
var configurationNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateConfigurationName validates a configuration name used as a filter.
func ValidateConfigurationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfiguration, "configuration name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidConfiguration, "configuration name too long (max 128 characters)")
	}

	if !configurationNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfiguration, "invalid configuration name: %q", name)
	}

	return nil
}

// ValidateProjectDir validates a project directory received over the API.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateProjectDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "project directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "project directory too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "project directory contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "project directory cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "project directory cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a repository URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
