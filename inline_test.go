package mdhtml

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.inline")
	defer teardown()
	//
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Nothing to see here.", "Nothing to see here."},
		{"bold", "This is **bold** text.", "This is <strong>bold</strong> text."},
		{"italic", "This is *italic* text.", "This is <i>italic</i> text."},
		{"bold and italic", "This is **bold** and *italic*.", "This is <strong>bold</strong> and <i>italic</i>."},
		{"link", "A [link](https://example.com) here.", `A <a href="https://example.com">link</a> here.`},
		{
			"mixed",
			"This is **bold**, *italic*, and [a link](https://example.com).",
			`This is <strong>bold</strong>, <i>italic</i>, and <a href="https://example.com">a link</a>.`,
		},
		{"several bold", "**a** b **c**", "<strong>a</strong> b <strong>c</strong>"},
		{"several links", "[a](x) [b](y)", `<a href="x">a</a> <a href="y">b</a>`},
		{"nested link text", "see [text [nested]](url) now", `see <a href="url">text [nested]</a> now`},
		{"bold link text", "[**go**](https://go.dev)", `<a href="https://go.dev"><strong>go</strong></a>`},
		{"empty bold becomes italic", "****", "<i>*</i>*"},
		{"unclosed bold", "This is **bold text.", "This is **bold text."},
		{"unclosed italic", "This is *italic text.", "This is *italic text."},
		{"link missing paren", "A [link](https://example.com here.", "A [link](https://example.com here."},
		{"link missing bracket", "A link](https://example.com) here.", "A link](https://example.com) here."},
		{"link with parens in url", "[a](b(c))", "[a](b(c))"},
		{
			"misnested",
			"This is *italic and **bold*** text**.",
			"This is <i>italic and <strong>bold</strong></i> text**.",
		},
		{"garbage", "!@#$%^&*()", "!@#$%^&*()"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Transform(tc.in))
		})
	}
}

func TestTransformInlineCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"basic", "This is `code`.", "This is <code>code</code>."},
		{"special chars", "Use `x = y + z;` in your code.", "Use <code>x = y + z;</code> in your code."},
		{"unclosed", "This is `not closed.", "This is `not closed."},
		{"first only", "`a` and `b` are variables.", "<code>a</code> and `b` are variables."},
		{"empty span", "a `` b", "a `` b"},
		{"greedy open run", "`` then `x`", "<code>` then </code>x`"},
		{"longer close", "`a``", "<code>a`</code>"},
		{"longer open", "```a` b", "<code>``a</code> b"},
		{
			"inner backtick",
			"Here is a ``code with `backtick` inside`` example.",
			"Here is a <code>`code with </code>backtick` inside`` example.",
		},
		{"after bold", "**b** `c`", "<strong>b</strong> <code>c</code>"},
		{"stars in code", "`*x*`", "<code><i>x</i></code>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Transform(tc.in))
		})
	}
}

func TestTransformIsIdentityWithoutMarkup(t *testing.T) {
	for _, s := range []string{"", " ", "plain words", "1 + 2 = 3", "a_b_c", "# not at line start? #"} {
		assert.Equal(t, s, Transform(s), "input %q", s)
	}
}
