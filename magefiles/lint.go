package main

import (
	"context"
	"fmt"

	"github.com/magefile/mage/mg"

	"fastcat.org/go/linelen/magefiles/mgx"
	"fastcat.org/go/linelen/magefiles/shx"
)

var lintOther = []any{Lint{}.Govulncheck}

func LintDefault(ctx context.Context) error {
	mg.CtxDeps(ctx, append([]any{Lint{}.Golangci}, lintOther...)...)
	return nil
}

type Lint mg.Namespace

func (Lint) Golangci(ctx context.Context) error {
	fmt.Println("Lint: golangci-lint")
	return shx.Cmd(ctx, mgx.FindGCI(), "run", "./...").
		With(
			// getting told the linter failed without seeing why is useless
			shx.WithOutput(),
		).
		Run()
}

func (Lint) Govulncheck(ctx context.Context) error {
	fmt.Println("Lint: govulncheck")
	return shx.Cmd(ctx, "go", "tool", "-modfile=magefiles/go.mod", "govulncheck", "./...").Run()
}

func Format(ctx context.Context) error {
	fmt.Println("Format: golangci-lint")
	return shx.Run(ctx, mgx.FindGCI(), "fmt", "./...")
}

func Tidy(ctx context.Context) error {
	for _, dir := range []string{".", "magefiles"} {
		fmt.Printf("Tidy: %s\n", dir)
		if err := shx.Cmd(ctx, "go", "mod", "tidy", "-v").
			With(shx.WithCwd(dir)).
			Run(); err != nil {
			return fmt.Errorf("error tidying %s: %w", dir, err)
		}
	}
	return nil
}
