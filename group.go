package mdhtml

type fenceState uint8

const (
	fenceNormal fenceState = iota
	fenceOpen
)

// Group brackets runs of ordered list items and fenced code blocks in a
// single pass over tokens. raw holds the source lines the tokens were
// classified from; lines inside a fence are emitted from raw, untransformed.
// List brackets follow the classified kind, so a numbered line inside a
// fence still opens and closes an ordered list around its raw text.
//
// An ordered list still open at the end of input is closed. A fence still
// open at the end of input is left open.
func Group(tokens []Token, raw []string) []Token {
	out := make([]Token, 0, len(tokens)+4)
	prev := KindEmpty
	fence := fenceNormal
	for i, tok := range tokens {
		if prev == KindOrderedListItem && tok.Kind != KindOrderedListItem {
			out = append(out, Marker(KindOrderedListEnd))
		}
		if tok.Kind == KindOrderedListItem && prev != KindOrderedListItem {
			out = append(out, Marker(KindOrderedListStart))
		}
		switch {
		case tok.Kind == KindCodeFence && fence == fenceNormal:
			blockTracer().Debugf("group: line %d opens code fence", i+1)
			out = append(out, Marker(KindCodeFenceStart))
			fence = fenceOpen
		case tok.Kind == KindCodeFence:
			blockTracer().Debugf("group: line %d closes code fence", i+1)
			out = append(out, Marker(KindCodeFenceEnd))
			fence = fenceNormal
		case fence == fenceOpen:
			out = append(out, SimpleText(rawLine(raw, i, tok)))
		default:
			out = append(out, tok)
		}
		prev = tok.Kind
	}
	if prev == KindOrderedListItem {
		out = append(out, Marker(KindOrderedListEnd))
	}
	if fence == fenceOpen {
		blockTracer().Infof("group: code fence not closed at end of input")
	}
	return out
}

// rawLine falls back to the token text when raw is shorter than tokens.
func rawLine(raw []string, i int, tok Token) string {
	if i < len(raw) {
		return raw[i]
	}
	return tok.Text
}
