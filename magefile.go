//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "silabario"
	mainPath   = "./cmd/silabario"
)

// Default target to run when none is specified
var Default = Build

// Build builds the silabario binary
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, mainPath)
}

// Test runs the unit tests. Integration tests skip themselves without API
// keys or espeak-ng.
func Test() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// TestAll runs every test including the goruut model load
func TestAll() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the unit tests
func Check() {
	mg.Deps(Vet, Test)
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", mainPath)
}

// Clean removes the built binary
func Clean() error {
	return os.RemoveAll(binaryName)
}
