package domain

import "strings"

// Failure is one structured validation failure: which rule broke and the
// context a caller needs to report it.
type Failure struct {
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// Failures accumulates every failure found by an operation. A nil/empty
// Failures means success; fallible operations return (value, Failures).
type Failures []Failure

func fail(code string, details map[string]any) Failures {
	return Failures{{Code: code, Details: details}}
}

// Error makes Failures usable where an error is expected (logging, fiber).
func (f Failures) Error() string {
	codes := make([]string, len(f))
	for i, failure := range f {
		codes[i] = failure.Code
	}
	return strings.Join(codes, ", ")
}

// Has reports whether any accumulated failure carries the given code.
func (f Failures) Has(code string) bool {
	for _, failure := range f {
		if failure.Code == code {
			return true
		}
	}
	return false
}
