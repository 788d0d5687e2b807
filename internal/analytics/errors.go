package analytics

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The typed errors below wrap
// these and carry the offending input so boundary layers can build a
// human-readable message.
var (
	ErrYearOutOfRange = errors.New("year out of supported range")
	ErrTagNotFound    = errors.New("tag not found")
)

// YearOutOfRangeError reports a query year outside the supported window.
type YearOutOfRangeError struct {
	Year int
	Min  int
	Max  int
}

func (e *YearOutOfRangeError) Error() string {
	return fmt.Sprintf("year %d out of supported range %d-%d", e.Year, e.Min, e.Max)
}

func (e *YearOutOfRangeError) Is(target error) bool {
	return target == ErrYearOutOfRange
}

// TagNotFoundError reports a tag with zero occurrences in the queried
// scope. Year is zero when the scope is the whole corpus.
type TagNotFoundError struct {
	Tag  string
	Year int
}

func (e *TagNotFoundError) Error() string {
	if e.Year != 0 {
		return fmt.Sprintf("tag %q has no occurrences in %d", e.Tag, e.Year)
	}
	return fmt.Sprintf("tag %q has no occurrences in the corpus", e.Tag)
}

func (e *TagNotFoundError) Is(target error) bool {
	return target == ErrTagNotFound
}
