package main

import (
	"context"
	"fmt"

	"golang.org/x/mod/semver"

	"fastcat.org/go/linelen/magefiles/shx"
)

// Tag creates a lightweight release tag after checking it is a valid semver.
func Tag(ctx context.Context, newVersion string) error {
	if !semver.IsValid(newVersion) {
		return fmt.Errorf("invalid version: %q", newVersion)
	}
	if semver.Build(newVersion) != "" {
		return fmt.Errorf("build metadata is not allowed in release tags: %q", newVersion)
	}
	// force lightweight tags so that local runs match CI runs and don't prompt
	// for a message due to signing.
	return shx.Run(ctx, "git", "tag", "--no-sign", newVersion)
}
