package lexicon

import "fmt"

// LoadError represents a failure to read or decode a lexicon table
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
