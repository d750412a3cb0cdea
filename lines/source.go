package lines

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

type sourceState int

const (
	stateReading sourceState = iota
	stateDone
)

func (s sourceState) String() string {
	switch s {
	case stateReading:
		return "READING"
	case stateDone:
		return "DONE"
	default:
		return fmt.Sprintf("sourceState(%d)", int(s))
	}
}

// lineSource splits a reader into lines with no length limit. The slice
// returned by next is only valid until the following call.
type lineSource struct {
	br     *bufio.Reader
	buf    []byte
	state  sourceState
	lineNo int
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{br: bufio.NewReader(r)}
}

// next returns the next line without its terminator. ok is false once the
// stream is exhausted or after an error, and the source stays done from then
// on.
func (s *lineSource) next() (line []byte, ok bool, err error) {
	if s.state == stateDone {
		return nil, false, nil
	}
	s.buf = s.buf[:0]
	for {
		chunk, err := s.br.ReadSlice('\n')
		s.buf = append(s.buf, chunk...)
		switch {
		case err == nil:
			s.lineNo++
			return dropTerminator(s.buf), true, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			s.state = stateDone
			if len(s.buf) == 0 {
				return nil, false, nil
			}
			// final line without a terminator
			s.lineNo++
			return s.buf, true, nil
		default:
			s.state = stateDone
			return nil, false, fmt.Errorf("reading line %d: %w", s.lineNo+1, err)
		}
	}
}

func dropTerminator(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}
