package entries

import (
	"errors"
	"fmt"
)

var ErrNoEntriesFound = errors.New("no entries found")

// Pair holds two entries that add up to Target.
type Pair struct {
	Entry1 int64
	Entry2 int64
	Target int64
}

func (p Pair) Product() int64 {
	return p.Entry1 * p.Entry2
}

type NoEntriesFoundError struct {
	Target int64
}

func (e *NoEntriesFoundError) Error() string {
	return fmt.Sprintf("unable to find entries for target %d", e.Target)
}

func (e *NoEntriesFoundError) Unwrap() error {
	return ErrNoEntriesFound
}

// DecodeError reports the first line that could not be read or parsed.
// Line is 1-based; Text is empty when the reader itself failed.
type DecodeError struct {
	Line int
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
