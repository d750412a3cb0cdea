package main

import (
	"context"
	"fmt"
	"os"

	"fastcat.org/go/linelen/magefiles/shx"
)

func Test(ctx context.Context) error {
	fmt.Println("Test: go test -race")
	args := []string{"test", "-race", "-timeout", "30s"}
	if os.Getenv("VERBOSE") != "" || os.Getenv("CI") != "" {
		args = append(args, "-v")
	}
	args = append(args, "./...")
	return shx.Run(ctx, "go", args...)
}

// Sample pipes the sample input through the tool and compares it against the
// expected lengths.
func Sample(ctx context.Context) error {
	fmt.Println("Sample: linelen check")
	in, err := os.Open("testdata/sample.input")
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck
	return shx.Cmd(ctx, "go", "run", ".", "check", "--expected", "testdata/sample.expected").
		With(
			shx.WithStdin(in),
			shx.WithOutput(),
		).
		Run()
}

// Cases checks every input/output pair in testdata/cases.
func Cases(ctx context.Context) error {
	fmt.Println("Cases: linelen check --dir")
	return shx.Cmd(ctx, "go", "run", ".", "check", "--dir", "testdata/cases").
		With(shx.WithOutput()).
		Run()
}
