package main

import (
	"context"

	"github.com/magefile/mage/mg"
)

var (
	Default = All
	Aliases = map[string]any{
		"lint": LintDefault,
		"fmt":  Format,
		"e2e":  EndToEnd,
	}
)

// All lints, builds and tests, then runs the tool end to end on testdata.
func All(ctx context.Context) error {
	mg.CtxDeps(ctx, LintDefault, Compile, Test)
	mg.CtxDeps(ctx, EndToEnd)
	return nil
}

// EndToEnd checks the sample file and every case in testdata/cases with the
// real binary.
func EndToEnd(ctx context.Context) error {
	mg.SerialCtxDeps(ctx, Sample, Cases)
	return nil
}
