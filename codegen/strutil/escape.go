// Package strutil contains helpers for embedding arbitrary text into
// generated source code.
package strutil

import "strings"

var quoteEscaper = strings.NewReplacer( //nolint:gochecknoglobals
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\u0085", `\u0085`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// EscapeStr makes s safe to place between the double quotes of a C# string
// literal. Every character C# treats as a line break is escaped, since a
// regular literal cannot span lines. Format placeholders such as {0} are left
// untouched.
func EscapeStr(s string) string {
	return quoteEscaper.Replace(s)
}
