//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the squads binary into bin/
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/squads", "./cmd/squads")
}

// Test runs the test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Run builds and prints the squads
func Run() error {
	mg.Deps(Build)
	return sh.RunV("./bin/squads")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
