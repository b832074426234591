// Package consts houses some constants needed across locatorgen
package consts

// Version contains the current semantic version of locatorgen.
const Version = "0.3.0"

// FullVersion returns the version prefixed the way the version command prints it.
func FullVersion() string {
	return "v" + Version
}
