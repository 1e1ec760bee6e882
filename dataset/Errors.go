package dataset

import "fmt"

// LoadErrorKind enumerates the ways a dataset load can fail.
type LoadErrorKind int

const (
	// NotFound means the path could not be opened.
	NotFound LoadErrorKind = iota
	// BadHeader means the CSV header could not be parsed.
	BadHeader
	// MissingXColumn means no column named X was found.
	MissingXColumn
	// MissingTColumn means no column named T or timestamp was found.
	MissingTColumn
	// ParseRow means a data row could not be parsed against the header.
	ParseRow
	// EmptyData means the CSV had a header but zero data rows. Load does
	// not check the row count against MaxTimeDelay+FutureSpan+1.
	EmptyData
)

// LoadError reports why Load failed, following the teacher's
// *XxxError{Op, Err} shape.
type LoadError struct {
	Op   string
	Kind LoadErrorKind
	Err  error
}

// Error satisfies the error interface.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(op string, kind LoadErrorKind, err error) *LoadError {
	return &LoadError{Op: op, Kind: kind, Err: err}
}

// IsNotFound returns whether err reports a missing input file.
func IsNotFound(err error) bool {
	return kindOf(err) == NotFound
}

// IsBadHeader returns whether err reports a malformed CSV header.
func IsBadHeader(err error) bool {
	return kindOf(err) == BadHeader
}

// IsMissingXColumn returns whether err reports a missing X column.
func IsMissingXColumn(err error) bool {
	return kindOf(err) == MissingXColumn
}

// IsMissingTColumn returns whether err reports a missing T column.
func IsMissingTColumn(err error) bool {
	return kindOf(err) == MissingTColumn
}

func kindOf(err error) LoadErrorKind {
	if loadErr, ok := err.(*LoadError); ok {
		return loadErr.Kind
	}
	return -1
}
