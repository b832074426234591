// Package locator renders C# expressions that build Playwright locators on the
// page object of a generated .NET client.
//
// Every formatter emits exactly one expression and never a trailing newline;
// the caller decides how to place it inside the generated method body.
package locator

import (
	"fmt"

	"github.com/liuxd6825/locatorgen/codegen/strutil"
)

// Receiver is the page object expression all generated locators are called on.
const Receiver = "this._page"

// TemplateParam describes a single locator to render.
type TemplateParam struct {
	// LocatorStr is the raw text to match, or a composite format string when
	// HasParams is set.
	LocatorStr string `json:"locatorStr"`

	// HasParams marks LocatorStr as containing placeholders that the
	// generated code fills from its `parameters` value at runtime.
	HasParams bool `json:"hasParams"`
}

// Formatter renders a TemplateParam into a C# expression.
type Formatter func(p TemplateParam) string

// getBy renders a call of one of the page's GetBy* locator constructors.
func getBy(method string, p TemplateParam) string {
	escaped := strutil.EscapeStr(p.LocatorStr)
	if p.HasParams {
		return fmt.Sprintf(`%s.%s(string.Format("%s", parameters))`, Receiver, method, escaped)
	}
	return fmt.Sprintf(`%s.%s("%s")`, Receiver, method, escaped)
}

// Label renders a locator that finds an element by its accessible label.
func Label(p TemplateParam) string {
	return getBy("GetByLabel", p)
}

// Placeholder renders a locator that finds an input by its placeholder text.
func Placeholder(p TemplateParam) string {
	return getBy("GetByPlaceholder", p)
}

// Text renders a locator that finds an element by the text it contains.
func Text(p TemplateParam) string {
	return getBy("GetByText", p)
}

// AltText renders a locator that finds an element, usually an image, by its
// alt attribute.
func AltText(p TemplateParam) string {
	return getBy("GetByAltText", p)
}

// Title renders a locator that finds an element by its title attribute.
func Title(p TemplateParam) string {
	return getBy("GetByTitle", p)
}

// TestID renders a locator that finds an element by its test id attribute.
func TestID(p TemplateParam) string {
	return getBy("GetByTestId", p)
}
