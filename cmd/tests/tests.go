// Package tests contains helpers for the command line tests.
package tests

import (
	"fmt"
	"os"
	"testing"

	"go.uber.org/goleak"
)

// Main is a TestMain function that can be imported by other test packages
// that want to check for leaked goroutines after their tests are done.
func Main(m *testing.M) {
	exitCode := 1 // error out by default
	defer func() {
		os.Exit(exitCode)
	}()

	defer func() {
		// TODO: figure out why logrus' `Entry.WriterLevel` goroutine sticks
		// around and remove this exception.
		opt := goleak.IgnoreTopFunction("io.(*pipe).read")
		if err := goleak.Find(opt); err != nil {
			fmt.Println(err) //nolint:forbidigo
			exitCode = 3
		}
	}()

	exitCode = m.Run()
}
