//go:build stave

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
)

var Default = Build

var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
}

const (
	binaryName = "brack"
	mainPkg    = "./brack"
	binDir     = "bin"
)

// Build compiles the brack binary.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating bin directory: %w", err)
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, binaryName), mainPkg)
}

// Install copies brack into /usr/local/bin. Writing brightness usually needs
// root (or a udev rule granting the video group write access).
func Install() error {
	st.Deps(Build)
	return sh.Copy(filepath.Join("/usr/local/bin", binaryName), filepath.Join(binDir, binaryName))
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "-cover", "./...")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if st.Verbose() {
		fmt.Printf("Removing %s/\n", binDir)
	}
	return sh.Rm(binDir + "/")
}
