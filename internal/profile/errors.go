package profile

import (
	"fmt"
	"strings"
)

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LanguageNotFoundError is returned when a profile bundle has no entry for the requested language
type LanguageNotFoundError struct {
	Language  string
	Available []string
}

func (e *LanguageNotFoundError) Error() string {
	return fmt.Sprintf("profile bundle has no %q entry (available: %s)", e.Language, strings.Join(e.Available, ", "))
}
