package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Main() {
	if err := Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(ExitCode(err))
	}
}

// ExitCodeErr is implemented by errors that want a specific process exit
// status.
type ExitCodeErr interface {
	ExitCode() int
}

// ExitCode maps an error returned from command execution to a process exit
// status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ece ExitCodeErr
	if errors.As(err, &ece) {
		return ece.ExitCode()
	}
	return 1
}
