package mdhtml

import "strconv"

// Token is one classified unit of document structure or a synthetic marker
// inserted by the grouping pass.
type Token struct {
	Kind   Kind
	Level  int
	Text   string
	Nested *Token
}

// Kind identifies the variant of a Token.
type Kind uint8

const (
	// KindEmpty is the sentinel token; it renders as nothing.
	KindEmpty Kind = iota
	// KindHeader is a heading with Level and Text.
	KindHeader
	// KindParagraph is an ordinary text line.
	KindParagraph
	// KindUnorderedListItem is one bullet item.
	KindUnorderedListItem
	// KindOrderedListStart opens a run of ordered items.
	KindOrderedListStart
	// KindOrderedListEnd closes a run of ordered items.
	KindOrderedListEnd
	// KindOrderedListItem is one numbered item.
	KindOrderedListItem
	// KindSimpleText is a raw line emitted verbatim.
	KindSimpleText
	// KindQuote is a block quote with an optional nested token.
	KindQuote
	// KindCodeFence is a fence delimiter line before grouping decides
	// whether it opens or closes a block.
	KindCodeFence
	// KindCodeFenceStart opens a literal code block.
	KindCodeFenceStart
	// KindCodeFenceEnd closes a literal code block.
	KindCodeFenceEnd
	// KindHorizontalRule is a rule line.
	KindHorizontalRule
	// KindLineBreak is a blank line.
	KindLineBreak
)

var kindNames = [...]string{
	KindEmpty:             "Empty",
	KindHeader:            "Header",
	KindParagraph:         "Paragraph",
	KindUnorderedListItem: "UnorderedListItem",
	KindOrderedListStart:  "OrderedListStart",
	KindOrderedListEnd:    "OrderedListEnd",
	KindOrderedListItem:   "OrderedListItem",
	KindSimpleText:        "SimpleText",
	KindQuote:             "Quote",
	KindCodeFence:         "CodeFence",
	KindCodeFenceStart:    "CodeFenceStart",
	KindCodeFenceEnd:      "CodeFenceEnd",
	KindHorizontalRule:    "HorizontalRule",
	KindLineBreak:         "LineBreak",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// String renders the token as HTML.
func (t Token) String() string {
	return RenderToken(t)
}

// Header returns a heading token.
func Header(level int, text string) Token {
	return Token{Kind: KindHeader, Level: level, Text: text}
}

// Paragraph returns a paragraph token.
func Paragraph(text string) Token {
	return Token{Kind: KindParagraph, Text: text}
}

// UnorderedListItem returns a bullet item token.
func UnorderedListItem(text string) Token {
	return Token{Kind: KindUnorderedListItem, Text: text}
}

// OrderedListItem returns a numbered item token.
func OrderedListItem(text string) Token {
	return Token{Kind: KindOrderedListItem, Text: text}
}

// SimpleText returns a token rendered verbatim.
func SimpleText(text string) Token {
	return Token{Kind: KindSimpleText, Text: text}
}

// Quote returns a block quote token owning a copy of nested.
func Quote(text string, nested Token) Token {
	n := nested
	return Token{Kind: KindQuote, Text: text, Nested: &n}
}

// Marker returns a payload-free token of kind k.
func Marker(k Kind) Token {
	return Token{Kind: k}
}
