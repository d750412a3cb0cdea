package main

import (
	"context"
	"fmt"

	"github.com/magefile/mage/mg"

	"fastcat.org/go/linelen/magefiles/shx"
)

func Compile(ctx context.Context) error {
	fmt.Println("Compile: go build")
	return shx.Run(ctx, "go", "build", "-v", "./...")
}

type Build mg.Namespace

func (Build) Debug(ctx context.Context) error {
	fmt.Println("Build linelen debug binary")
	return shx.Cmd(
		ctx,
		"go", "build", "-gcflags=all=-N -l", "-v", "-o", "./linelen.debug", ".",
	).Run()
}

func (Build) Release(ctx context.Context) error {
	fmt.Println("Build linelen release binary")
	return shx.Cmd(
		ctx,
		"go", "build", "-ldflags=-s -w", "-v", "-o", "./linelen", ".",
	).With(
		shx.WithEnv(map[string]string{
			"CGO_ENABLED": "0",
		}),
	).Run()
}
