//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs all test suites
func (t Test) All() error {
	mg.Deps(t.Unit, t.Race, t.Properties)
	return nil
}

// Runs the unit tests
func (Test) Unit() error {
	fmt.Println("running unit tests")
	return goTest([]string{"./..."}, "-timeout", "10m")
}

// Runs the unit tests with the race detector
func (Test) Race() error {
	fmt.Println("running unit tests with the race detector")
	return goTest([]string{"./..."}, "-race", "-timeout", "15m")
}

// Runs the property-based tests with more checks than the default
func (Test) Properties() error {
	fmt.Println("running property tests")
	return goTest([]string{"./pkg/propertyset/", "./pkg/schedule/"},
		"-run", "Property|RoundTrip|Preserved|Precedence|Identity|Idempotent|Agree",
		"-rapid.checks=10000",
		"-timeout", "15m")
}
