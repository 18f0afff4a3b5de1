package mdhtml

import "strconv"

// RenderToken returns the HTML form of a single token.
func RenderToken(t Token) string {
	switch t.Kind {
	case KindHeader:
		level := strconv.Itoa(t.Level)
		return "<h" + level + ">" + t.Text + "</h" + level + ">"
	case KindParagraph:
		return "<p>" + t.Text + "</p>"
	case KindUnorderedListItem, KindOrderedListItem:
		return "<li>" + t.Text + "</li>"
	case KindOrderedListStart:
		return "<ol>"
	case KindOrderedListEnd:
		return "</ol>"
	case KindQuote:
		nested := ""
		if t.Nested != nil {
			nested = RenderToken(*t.Nested)
		}
		return "<q>" + t.Text + nested + "</q>"
	case KindCodeFenceStart:
		return "<pre><code>"
	case KindCodeFenceEnd:
		return "</code></pre>"
	case KindSimpleText:
		return t.Text
	case KindHorizontalRule:
		return "<hr>"
	case KindLineBreak:
		return "<br/>"
	case KindEmpty, KindCodeFence:
		return ""
	default:
		blockTracer().Errorf("render: unknown token kind %s", t.Kind)
		return ""
	}
}

// Convert turns the lines of one document into lines of HTML.
func Convert(lines []string) []string {
	tokens := Group(Tokenize(lines), lines)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = RenderToken(tok)
	}
	blockTracer().Debugf("convert: %d lines -> %d tokens", len(lines), len(tokens))
	return out
}
