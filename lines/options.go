package lines

import (
	"fmt"
	"log/slog"
)

// Policy selects how whitespace around a line is treated before measuring.
type Policy int

const (
	// PolicyRaw measures the line as read, minus its terminator.
	PolicyRaw Policy = iota
	// PolicyTrim also strips leading and trailing whitespace. A line of only
	// whitespace measures 0, it is still reported.
	PolicyTrim
)

func (p Policy) String() string {
	switch p {
	case PolicyRaw:
		return "raw"
	case PolicyTrim:
		return "trim"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "raw", "":
		return PolicyRaw, nil
	case "trim":
		return PolicyTrim, nil
	default:
		return PolicyRaw, fmt.Errorf("invalid policy %q, must be raw or trim", s)
	}
}

type Option interface {
	apply(*Reporter)
}

type optionFunc func(*Reporter)

func (f optionFunc) apply(r *Reporter) {
	f(r)
}

func WithPolicy(p Policy) Option {
	return optionFunc(func(r *Reporter) {
		r.policy = p
	})
}

// WithTrim is shorthand for WithPolicy(PolicyTrim) when trim is true, and
// WithPolicy(PolicyRaw) otherwise.
func WithTrim(trim bool) Option {
	if trim {
		return WithPolicy(PolicyTrim)
	}
	return WithPolicy(PolicyRaw)
}

// WithLogger sets the logger used for run diagnostics. Nil restores
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(r *Reporter) {
		if l == nil {
			l = slog.Default()
		}
		r.log = l
	})
}
