package entries

import (
	"io"
	"iter"
)

// FindPair scans seq once and returns the first pair summing to target.
//
// Each entry x that is not already a wanted remainder registers target-x as
// wanted. The first entry found in that set completes the pair, so the result
// is (target-x, x). Scanning stops at that point.
func FindPair(seq iter.Seq[int64], target int64) (Pair, bool) {
	remainders := make(map[int64]struct{})

	for x := range seq {
		remainder := target - x
		if _, wanted := remainders[x]; wanted {
			return Pair{Entry1: remainder, Entry2: x, Target: target}, true
		}
		remainders[remainder] = struct{}{}
	}

	return Pair{}, false
}

// Process decodes r and searches it for a pair summing to target.
// A decode failure is returned only when no pair was found before it.
func Process(r io.Reader, target int64) (Pair, error) {
	decoder := NewDecoder(r)

	pair, found := FindPair(decoder.All(), target)
	if found {
		return pair, nil
	}
	if err := decoder.Err(); err != nil {
		return Pair{}, err
	}
	return Pair{}, &NoEntriesFoundError{Target: target}
}
