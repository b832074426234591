package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := map[string]Kind{
		"label":       KindLabel,
		"Label":       KindLabel,
		"LABEL":       KindLabel,
		" label ":     KindLabel,
		"placeholder": KindPlaceholder,
		"text":        KindText,
		"alt_text":    KindAltText,
		"alt-text":    KindAltText,
		"AltText":     KindAltText,
		"altText":     KindAltText,
		"ALT_TEXT":    KindAltText,
		"title":       KindTitle,
		"test_id":     KindTestID,
		"TestId":      KindTestID,
		"TestID":      KindTestID,
		"placeHolder": KindPlaceholder,
		"PLACEHOLDER": KindPlaceholder,
		"testid":      KindTestID,
		"test-id":     KindTestID,
		"ALTTEXT":     KindAltText,
		"alttext":     KindAltText,
		"Alt_Text":    KindAltText,
	}

	for name, expected := range tests {
		name, expected := name, expected
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			k, err := ParseKind(name)
			require.NoError(t, err)
			assert.Equal(t, expected, k)
		})
	}
}

func TestParseKindUnknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "role", "css", "label2", "alt text", "_"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseKind(name)
			require.ErrorIs(t, err, ErrUnknownKind)
			assert.Contains(t, err.Error(), `"`+name+`"`)
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	format, err := Lookup(KindLabel)
	require.NoError(t, err)
	assert.Equal(t, `this._page.GetByLabel("Username")`, format(TemplateParam{LocatorStr: "Username"}))

	_, err = Lookup(Kind("nope"))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Render(KindTestID, TemplateParam{LocatorStr: "submit-{0}", HasParams: true})
	require.NoError(t, err)
	assert.Equal(t, `this._page.GetByTestId(string.Format("submit-{0}", parameters))`, out)

	out, err = Render(Kind("role"), TemplateParam{LocatorStr: "x"})
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Empty(t, out)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Kind{
		KindAltText, KindLabel, KindPlaceholder, KindTestID, KindText, KindTitle,
	}, Kinds())

	for _, k := range Kinds() {
		assert.NotEmpty(t, k.Method(), k)
	}
	assert.Equal(t, "GetByLabel", KindLabel.Method())
	assert.Empty(t, Kind("role").Method())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		assert.Equal(t, k, kindOf(k.Method()))
	}
	assert.Equal(t, KindTestID, kindOf("GetByTestId"))
	assert.Equal(t, KindAltText, kindOf("GetByAltText"))
}
