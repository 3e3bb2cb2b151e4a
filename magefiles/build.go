//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the arrange project using Mage.
//
// Usage:
//
//	mage build          Compile arrange binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests in short mode
//	mage test:verify    Build, then cross-check the counter via the CLI
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install arrange to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "arrange"
	binaryDir  = "bin"
	cmdDir     = "./cmd/arrange"
)

// Build compiles the arrange binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install installs arrange to GOPATH/bin.
func Install() error {
	return sh.RunV(binGo, "install", cmdDir)
}
