package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// repositoryNameRegex matches repository names usable as config keys and
// --repo flag values.
var repositoryNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateRepositoryName validates a configured repository name.
func ValidateRepositoryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRepository, "repository name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidRepository, "repository name too long (max 64 characters)")
	}

	if !repositoryNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRepository, "invalid repository name: %q", name)
	}

	return nil
}

// ValidateURL validates a repository base URL.
// It ensures the URL has a safe scheme (http or https) and no control
// characters or whitespace.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidRepository, "URL cannot be empty")
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRepository, "URL contains invalid characters: %q", rawURL)
		}
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidRepository, "URL must use http or https scheme: %q", rawURL)
	}

	return nil
}
