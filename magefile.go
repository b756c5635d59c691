//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binPath = "bin/walcord"

// Build builds the walcord binary with version metadata stamped in.
func Build() error {
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/danrus1100/walcord/internal/version.CommitHash=%s "+
			"-X github.com/danrus1100/walcord/internal/version.BuildDate=%s",
		commit, time.Now().UTC().Format("2006-01-02"),
	)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/walcord")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// QA runs all quality assurance checks.
func QA() error {
	mg.Deps(Test)

	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("gofmt", "-l", "."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}
	// Staticcheck is optional tooling; skip quietly when absent.
	if _, err := sh.Output("staticcheck", "-version"); err == nil {
		if err := sh.RunV("staticcheck", "./..."); err != nil {
			return fmt.Errorf("staticcheck failed: %w", err)
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binPath)
}
