//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

const binary = "bin/poslight"

// Build compiles the demo into bin/.
func Build() error {
	if _, err := executeCmd("go", withArgs("build", "-o", binary, "./cmd/poslight"), withStream()); err != nil {
		return err
	}
	fmt.Println("built", binary)
	return nil
}

// Test runs the unit tests.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Vet runs go vet.
func Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Run builds and starts the demo with shader hot reload on the embedded
// shader sources.
func Run() error {
	mg.Deps(Build)
	_, err := executeCmd(binary, withArgs(
		"-vert", "internal/engine/shader/glsl/poslight.vert",
		"-frag", "internal/engine/shader/glsl/poslight.frag",
		"-watch",
	), withStream())
	return err
}
