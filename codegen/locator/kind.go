package locator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/serenize/snaker"
)

// Kind names a locator strategy of the generated client.
type Kind string

// Supported locator kinds.
const (
	KindLabel       Kind = "label"
	KindPlaceholder Kind = "placeholder"
	KindText        Kind = "text"
	KindAltText     Kind = "alt_text"
	KindTitle       Kind = "title"
	KindTestID      Kind = "test_id"
)

// ErrUnknownKind is returned for kind names that have no registered formatter.
var ErrUnknownKind = errors.New("unknown locator kind")

type entry struct {
	method string
	format Formatter
}

var (
	// registry and byName are never written after init, so they are safe
	// for concurrent reads.
	registry = map[Kind]entry{}  //nolint:gochecknoglobals
	byName   = map[string]Kind{} //nolint:gochecknoglobals
)

func init() { //nolint:gochecknoinits
	for _, e := range []entry{
		{"GetByLabel", Label},
		{"GetByPlaceholder", Placeholder},
		{"GetByText", Text},
		{"GetByAltText", AltText},
		{"GetByTitle", Title},
		{"GetByTestId", TestID},
	} {
		k := kindOf(e.method)
		registry[k] = e
		byName[foldKindName(string(k))] = k
	}
}

// kindOf derives the kind name from a page method, e.g. GetByAltText is alt_text.
func kindOf(method string) Kind {
	return Kind(snaker.CamelToSnake(strings.TrimPrefix(method, "GetBy")))
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Method returns the name of the page method the kind renders a call to, or
// an empty string for unknown kinds.
func (k Kind) Method() string {
	return registry[k].method
}

// ParseKind resolves a kind from its name. Matching ignores case as well as
// any '_' or '-' separators, so "alt_text", "AltText", "alt-text" and
// "ALTTEXT" are all KindAltText.
func ParseKind(name string) (Kind, error) {
	k, ok := byName[foldKindName(name)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
	return k, nil
}

var kindSeparators = strings.NewReplacer("_", "", "-", "") //nolint:gochecknoglobals

func foldKindName(name string) string {
	return kindSeparators.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Lookup returns the formatter registered for k.
func Lookup(k Kind) (Formatter, error) {
	e, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, string(k))
	}
	return e.format, nil
}

// Render formats p with the formatter registered for k.
func Render(k Kind, p TemplateParam) (string, error) {
	format, err := Lookup(k)
	if err != nil {
		return "", err
	}
	return format(p), nil
}

// Kinds returns all registered kinds sorted by name.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
