package lines

import (
	"errors"
	"fmt"
)

// ExitDataErr is the sysexits.h EX_DATAERR status, used for input that is
// not valid UTF-8.
const ExitDataErr = 65

type InvalidEncodingError struct {
	// Line is 1-based, zero when the error came from Measure directly.
	Line int
	// Offset of the first invalid byte within the line, terminator excluded.
	Offset int
}

func (e *InvalidEncodingError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
	}
	return fmt.Sprintf("line %d: invalid UTF-8 at byte %d", e.Line, e.Offset)
}

func (e *InvalidEncodingError) ExitCode() int {
	return ExitDataErr
}

func lineError(lineNo int, err error) error {
	var iee *InvalidEncodingError
	if errors.As(err, &iee) {
		iee.Line = lineNo
		return iee
	}
	return fmt.Errorf("line %d: %w", lineNo, err)
}

// MismatchError describes the first record that differs from the expected
// output. A nil Want or Got means that side ran out of lines first.
type MismatchError struct {
	Line int
	Want *string
	Got  *string
}

func (e *MismatchError) Error() string {
	switch {
	case e.Want == nil:
		return fmt.Sprintf("mismatch at line %d: got %q, expected end of output", e.Line, *e.Got)
	case e.Got == nil:
		return fmt.Sprintf("mismatch at line %d: got end of output, expected %q", e.Line, *e.Want)
	default:
		return fmt.Sprintf("mismatch at line %d: got %q, expected %q", e.Line, *e.Got, *e.Want)
	}
}
