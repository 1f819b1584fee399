package entries

import (
	"bufio"
	"io"
	"iter"
	"strconv"
)

// Decoder turns a line-oriented reader into a lazy sequence of int64 entries.
// Lines are only read as the sequence is pulled, so a consumer that stops
// early never sees failures further down the input.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
	err     error
	done    bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{scanner: bufio.NewScanner(r)}
}

// All yields parsed entries until the input is exhausted or a line fails.
// A failed decoder yields nothing on subsequent calls.
func (d *Decoder) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for !d.done {
			value, ok := d.next()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Err returns the first read or parse failure, if any.
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) next() (int64, bool) {
	if !d.scanner.Scan() {
		d.done = true
		if err := d.scanner.Err(); err != nil {
			d.err = &DecodeError{Line: d.line + 1, Err: err}
		}
		return 0, false
	}
	d.line++

	text := d.scanner.Text()
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		d.done = true
		d.err = &DecodeError{Line: d.line, Text: text, Err: err}
		return 0, false
	}
	return value, true
}
