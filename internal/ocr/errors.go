package ocr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoImage reports that a request arrived without an image. It is checked
// before any pipeline stage runs.
var ErrNoImage = errors.New("no image provided")

// MissingLanguageError reports that one or more requested language
// identifiers have no installed Tesseract data. It is raised by the
// pre-invocation language check, never by the engine itself.
type MissingLanguageError struct {
	// Missing is the subset of requested identifiers with no installed data.
	Missing []string

	// Installed is the engine's full installed-language list, for guidance.
	Installed []string
}

func (e *MissingLanguageError) Error() string {
	return fmt.Sprintf("missing language data for %s (installed: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Installed, ", "))
}

// EngineError wraps a failure from the underlying Tesseract invocation.
// Engine failures are deterministic for a given input and configuration, so
// they are never retried.
type EngineError struct {
	// Op names the engine operation that failed ("set language", "text", ...).
	Op string

	// Err is the engine's error.
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("ocr engine: %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
