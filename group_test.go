package mdhtml

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func groupLines(lines ...string) []Token {
	return Group(Tokenize(lines), lines)
}

func TestGroupOrderedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.block")
	defer teardown()
	//
	got := groupLines("intro", "1. a", "2. b", "outro")
	assert.Equal(t, []Kind{
		KindParagraph,
		KindOrderedListStart,
		KindOrderedListItem,
		KindOrderedListItem,
		KindOrderedListEnd,
		KindParagraph,
	}, kindsOf(got))
}

func TestGroupClosesOrderedListAtEnd(t *testing.T) {
	got := groupLines("1. a", "2. b")
	assert.Equal(t, []Kind{
		KindOrderedListStart,
		KindOrderedListItem,
		KindOrderedListItem,
		KindOrderedListEnd,
	}, kindsOf(got))
}

func TestGroupSeparateOrderedRuns(t *testing.T) {
	got := groupLines("1. a", "", "1. b")
	assert.Equal(t, []Kind{
		KindOrderedListStart,
		KindOrderedListItem,
		KindOrderedListEnd,
		KindLineBreak,
		KindOrderedListStart,
		KindOrderedListItem,
		KindOrderedListEnd,
	}, kindsOf(got))
}

func TestGroupCodeFence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.block")
	defer teardown()
	//
	lines := []string{"```", "**raw** line", "# not a header", "```", "*after*"}
	got := Group(Tokenize(lines), lines)
	assert.Equal(t, []Token{
		Marker(KindCodeFenceStart),
		SimpleText("**raw** line"),
		SimpleText("# not a header"),
		Marker(KindCodeFenceEnd),
		Paragraph("<i>after</i>"),
	}, got)
}

func TestGroupUnterminatedFence(t *testing.T) {
	got := groupLines("```", "code but never ends")
	assert.Equal(t, []Token{
		Marker(KindCodeFenceStart),
		SimpleText("code but never ends"),
	}, got)
}

func TestGroupOrderedItemsInsideFenceKeepListBrackets(t *testing.T) {
	got := groupLines("```", "1. a", "```")
	assert.Equal(t, []Token{
		Marker(KindCodeFenceStart),
		Marker(KindOrderedListStart),
		SimpleText("1. a"),
		Marker(KindOrderedListEnd),
		Marker(KindCodeFenceEnd),
	}, got)

	got = groupLines("```", "1. **raw**", "2. still raw", "plain", "```")
	assert.Equal(t, []Token{
		Marker(KindCodeFenceStart),
		Marker(KindOrderedListStart),
		SimpleText("1. **raw**"),
		SimpleText("2. still raw"),
		Marker(KindOrderedListEnd),
		SimpleText("plain"),
		Marker(KindCodeFenceEnd),
	}, got)
}

func TestGroupOrderedRunSpanningFenceOpen(t *testing.T) {
	got := groupLines("```", "1. inside")
	assert.Equal(t, []Token{
		Marker(KindCodeFenceStart),
		Marker(KindOrderedListStart),
		SimpleText("1. inside"),
		Marker(KindOrderedListEnd),
	}, got)
}

func TestGroupFenceAfterOrderedList(t *testing.T) {
	got := groupLines("1. a", "```", "x", "```")
	assert.Equal(t, []Kind{
		KindOrderedListStart,
		KindOrderedListItem,
		KindOrderedListEnd,
		KindCodeFenceStart,
		KindSimpleText,
		KindCodeFenceEnd,
	}, kindsOf(got))
}

func TestGroupPreservesOrderAndCount(t *testing.T) {
	lines := []string{"# h", "p", "- u", "---", "", "> q"}
	tokens := Tokenize(lines)
	got := Group(tokens, lines)
	assert.Equal(t, tokens, got)
}

func TestGroupShortRawFallsBackToTokenText(t *testing.T) {
	tokens := []Token{Marker(KindCodeFence), Paragraph("kept")}
	got := Group(tokens, nil)
	assert.Equal(t, []Token{Marker(KindCodeFenceStart), SimpleText("kept")}, got)
}

func TestGroupEmpty(t *testing.T) {
	assert.Empty(t, Group(nil, nil))
}
