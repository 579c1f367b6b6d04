package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_TagInventory(t *testing.T) {
	m := NewMarkupInspector()

	inv := m.Inspect("<p>Intro text</p><ul><li>a</li><li>b</li></ul>")

	assert.Equal(t, []string{"p", "ul", "li", "li"}, inv.Tags)
	assert.Equal(t, 2, inv.ListItemCount)
	assert.Empty(t, inv.DisallowedTags)
	// p is not on the allow list
	assert.Equal(t, []string{"p"}, inv.NonWhitelistedTags)
}

func TestInspect_StructuralWrappersExcluded(t *testing.T) {
	m := NewMarkupInspector()

	inv := m.Inspect("<b>bold</b>")

	assert.Equal(t, []string{"b"}, inv.Tags)
	assert.Empty(t, inv.NonWhitelistedTags)
	assert.Empty(t, inv.DisallowedTags)
}

func TestInspect_FirstBlockText(t *testing.T) {
	m := NewMarkupInspector()

	tests := []struct {
		name     string
		fragment string
		wantLen  int
	}{
		{"plain paragraph", "<p>Hello world</p>", len("Hello world")},
		{"whitespace normalized", "<p>  Hello \n  world </p>", len("Hello world")},
		{"nested markup joined", "<p>Hello <b>bold</b> world</p>", len("Hello bold world")},
		{"first paragraph only", "<p>short</p><p>a much longer second paragraph</p>", len("short")},
		{"no paragraph", "<ul><li>a</li></ul>", 0},
		{"empty fragment", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := m.Inspect(tt.fragment)
			assert.Equal(t, tt.wantLen, inv.FirstBlockTextLen)
		})
	}
}

func TestInspect_DisallowedTags(t *testing.T) {
	m := NewMarkupInspector()

	inv := m.Inspect(`<p>hi</p><script>alert(1)</script><iframe src="x"></iframe>`)

	assert.Equal(t, []string{"iframe", "script"}, inv.DisallowedTags)
	// disallowed tags are also off the allow list
	assert.Contains(t, inv.NonWhitelistedTags, "script")
	assert.Contains(t, inv.NonWhitelistedTags, "iframe")
}

func TestInspect_UppercaseTagNames(t *testing.T) {
	m := NewMarkupInspector()

	inv := m.Inspect("<P>lead</P><SCRIPT>x</SCRIPT>")

	assert.Equal(t, []string{"script"}, inv.DisallowedTags)
	assert.Contains(t, inv.Tags, "p")
}

func TestInspect_MalformedFragment(t *testing.T) {
	m := NewMarkupInspector()

	// Must degrade, never panic: unclosed and garbage markup.
	for _, fragment := range []string{"<<<<", "<p><ul></p></li>", "<b", "plain text only"} {
		inv := m.Inspect(fragment)
		require.NotNil(t, inv.Tags)
		require.NotNil(t, inv.DisallowedTags)
		require.NotNil(t, inv.NonWhitelistedTags)
	}
}

func TestInspect_TableTagsAllowed(t *testing.T) {
	m := NewMarkupInspector()

	inv := m.Inspect("<table><thead><tr><th>Spec</th></tr></thead><tbody><tr><td>Value</td></tr></tbody></table>")

	assert.Empty(t, inv.NonWhitelistedTags)
	assert.Empty(t, inv.DisallowedTags)
}

func TestContainsExternalLink(t *testing.T) {
	m := NewMarkupInspector()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"http url", "visit http://example.com now", true},
		{"https url", "see HTTPS://shop.example.com", true},
		{"email", "contact sales@example.com today", true},
		{"bare domain", "example.com has more", false},
		{"clean text", "Durable bottle with straw lid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ContainsExternalLink(tt.in))
		})
	}
}
