//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs tests in short mode.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Verify builds the binary and runs its brute-force cross-check at the
// largest supported size.
func (Test) Verify() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "verify", "--max-items", "12")
}
