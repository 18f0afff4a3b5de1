package mdhtml

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
)

const nestedIndent = 2

// Dump writes a human-readable listing of tokens to w, one token per line.
// Nested quote content is indented below its parent. When width is positive,
// each line is truncated to width cells.
func Dump(w io.Writer, tokens []Token, width int) error {
	var b strings.Builder
	for _, tok := range tokens {
		dumpToken(&b, tok, width)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpToken(b *strings.Builder, tok Token, width int) {
	line := tok.Kind.String()
	switch tok.Kind {
	case KindHeader:
		line += fmt.Sprintf("(%d) %q", tok.Level, tok.Text)
	case KindParagraph, KindUnorderedListItem, KindOrderedListItem, KindSimpleText, KindQuote:
		line += fmt.Sprintf(" %q", tok.Text)
	}
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	b.WriteString(line)
	b.WriteByte('\n')
	if tok.Kind == KindQuote && tok.Nested != nil && tok.Nested.Kind != KindEmpty {
		var nested strings.Builder
		nestedWidth := width
		if width > nestedIndent {
			nestedWidth = width - nestedIndent
		}
		dumpToken(&nested, *tok.Nested, nestedWidth)
		b.WriteString(indent.String(nested.String(), nestedIndent))
	}
}
