// Package lines measures the length of every line of a text stream.
//
// Lengths are counted in Unicode code points after the line terminator has
// been removed. A [Reporter] streams one decimal record per input line, in
// input order, writing each record before the next line is read.
package lines

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// Reporter converts a stream of lines into a stream of line lengths. It holds
// no per-run state, so one Reporter may be reused for any number of runs.
type Reporter struct {
	policy Policy
	log    *slog.Logger
}

// Stats summarizes one run of a [Reporter].
type Stats struct {
	Lines int
	Chars int
}

func New(opts ...Option) *Reporter {
	r := &Reporter{
		policy: PolicyRaw,
		log:    slog.Default(),
	}
	for _, o := range opts {
		o.apply(r)
	}
	return r
}

// Measure returns the length of a single line that has already had its
// terminator removed.
func (r *Reporter) Measure(line []byte) (int, error) {
	if !utf8.Valid(line) {
		return 0, &InvalidEncodingError{Offset: invalidOffset(line)}
	}
	if r.policy == PolicyTrim {
		line = bytes.TrimSpace(line)
	}
	return utf8.RuneCount(line), nil
}

// Lengths yields the length of each line read from in. Iteration stops after
// the first error, which is yielded with a zero length.
func (r *Reporter) Lengths(in io.Reader) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		src := newLineSource(in)
		for {
			line, ok, err := src.next()
			if err != nil {
				yield(0, err)
				return
			}
			if !ok {
				return
			}
			n, err := r.Measure(line)
			if err != nil {
				yield(0, lineError(src.lineNo, err))
				return
			}
			if !yield(n, nil) {
				return
			}
		}
	}
}

// Report writes the length of every line of in to out, one decimal record
// per line. Each record is written before the next line is read.
func (r *Reporter) Report(in io.Reader, out io.Writer) (Stats, error) {
	var (
		stats Stats
		rec   []byte
	)
	for n, err := range r.Lengths(in) {
		if err != nil {
			return stats, err
		}
		rec = strconv.AppendInt(rec[:0], int64(n), 10)
		rec = append(rec, '\n')
		if _, err := out.Write(rec); err != nil {
			return stats, fmt.Errorf("writing record for line %d: %w", stats.Lines+1, err)
		}
		stats.Lines++
		stats.Chars += n
	}
	r.log.Debug("report complete",
		"lines", stats.Lines,
		"chars", stats.Chars,
		"policy", r.policy.String(),
	)
	return stats, nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		c, size := utf8.DecodeRune(b[i:])
		if c == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
