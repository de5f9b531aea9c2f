//go:build mage

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// goTest runs go test for the packages, with the flags placed before them.
func goTest(packages []string, flags ...string) error {
	args := append([]string{"test", "-failfast", "-count=1"}, flags...)
	return RunSh("go", WithV(), WithArgs(args...))(packages...)
}

// checkDocker fails unless a docker daemon answers.
func checkDocker() error {
	if _, err := exec.LookPath("docker"); err != nil {
		return fmt.Errorf("docker must be installed to lint markdown")
	}
	return sh.Run("docker", "ps")
}

type runOptions struct {
	args           []string
	dir            string
	stderr, stdout io.Writer
}

// RunOpt applies an option to a runOptions set.
type RunOpt func(*runOptions)

// WithV sends the command output to the standard streams.
func WithV() RunOpt {
	return func(options *runOptions) {
		options.stdout = os.Stdout
		options.stderr = os.Stderr
	}
}

// WithDir sets the working directory for the command.
func WithDir(dir string) RunOpt {
	return func(options *runOptions) {
		options.dir = dir
	}
}

// WithArgs prepends arguments to those given when the command runs.
func WithArgs(args ...string) RunOpt {
	return func(options *runOptions) {
		options.args = append(options.args, args...)
	}
}

// Tool runs the command from the magefiles module, where the tool
// directives live.
func Tool() RunOpt {
	return func(options *runOptions) {
		WithDir("magefiles")(options)
		WithV()(options)
	}
}

// RunSh returns a function running the command with the options applied. A
// command that ran and failed makes mage exit with the same code.
func RunSh(cmd string, options ...RunOpt) func(args ...string) error {
	var opts runOptions
	for _, o := range options {
		o(&opts)
	}
	if opts.stdout == nil && mg.Verbose() {
		opts.stdout = os.Stdout
	}

	return func(args ...string) error {
		finalArgs := append(append([]string{}, opts.args...), args...)

		c := exec.Command(cmd, finalArgs...)
		c.Dir = opts.dir
		c.Stdout = opts.stdout
		c.Stderr = opts.stderr
		c.Stdin = os.Stdin

		if mg.Verbose() {
			fmt.Println("exec:", cmd, strings.Join(finalArgs, " "))
		}
		err := c.Run()
		switch {
		case err == nil:
			return nil
		case sh.CmdRan(err):
			return mg.Fatalf(sh.ExitStatus(err), `running "%s %s" failed with exit code %d`, cmd, strings.Join(finalArgs, " "), sh.ExitStatus(err))
		default:
			return fmt.Errorf(`failed to run "%s %s": %w`, cmd, strings.Join(finalArgs, " "), err)
		}
	}
}
