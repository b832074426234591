// Package exitcodes contains the constants representing possible locatorgen
// exit error codes.
package exitcodes

// ExitCode is just a type representing a process exit code for locatorgen
type ExitCode uint8

// list of exit codes used by locatorgen
const (
	GoPanic         ExitCode = 103
	InvalidConfig   ExitCode = 104
	InvalidArgument ExitCode = 105
)
