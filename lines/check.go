package lines

import (
	"io"
	"strconv"
)

// Check measures in and compares every record against the matching line of
// expected. It stops at the first difference, returning a [*MismatchError].
// Records are compared as text, so expected must hold plain decimal lines.
func (r *Reporter) Check(in, expected io.Reader) (Stats, error) {
	var stats Stats
	want := newLineSource(expected)
	for n, err := range r.Lengths(in) {
		if err != nil {
			return stats, err
		}
		stats.Lines++
		stats.Chars += n
		got := strconv.Itoa(n)
		w, ok, err := want.next()
		if err != nil {
			return stats, err
		}
		if !ok {
			return stats, &MismatchError{Line: stats.Lines, Got: &got}
		}
		if ws := string(w); ws != got {
			return stats, &MismatchError{Line: stats.Lines, Want: &ws, Got: &got}
		}
	}
	w, ok, err := want.next()
	if err != nil {
		return stats, err
	}
	if ok {
		ws := string(w)
		return stats, &MismatchError{Line: stats.Lines + 1, Want: &ws}
	}
	r.log.Debug("check passed", "lines", stats.Lines)
	return stats, nil
}
