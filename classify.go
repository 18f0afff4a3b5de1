package mdhtml

import (
	"regexp"
	"strings"
)

const (
	codeFenceMarker = "```"
	// quotePlaceholder is the text of a quote whose content is not a paragraph.
	quotePlaceholder = "[DEBUG]"
)

var orderedPrefix = regexp.MustCompile(`^\d+\.\s`)

// Classify maps one line to its block token. Rules are tried in a fixed
// order and the first match wins; anything unrecognized is a Paragraph.
func Classify(line string) Token {
	if level, rest, ok := headerPrefix(line); ok {
		return Header(level, Transform(rest))
	}

	if rest, ok := strings.CutPrefix(line, "> "); ok {
		nested := Classify(Transform(rest))
		if nested.Kind == KindParagraph {
			return Quote(nested.Text, Marker(KindEmpty))
		}
		return Quote(quotePlaceholder, nested)
	}

	if strings.TrimSpace(line) == "---" {
		return Marker(KindHorizontalRule)
	}

	if len(line) >= 2 && isBullet(line[0]) && line[1] == ' ' {
		return UnorderedListItem(Transform(line[2:]))
	}

	if strings.HasPrefix(line, codeFenceMarker) {
		return Marker(KindCodeFence)
	}

	if loc := orderedPrefix.FindStringIndex(line); loc != nil {
		return OrderedListItem(Transform(line[loc[1]:]))
	}

	if strings.TrimSpace(line) == "" {
		return Marker(KindLineBreak)
	}

	return Paragraph(Transform(line))
}

// Tokenize classifies every line, yielding exactly one token per line.
func Tokenize(lines []string) []Token {
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tokens[i] = Classify(line)
	}
	return tokens
}

// headerPrefix reports the level of a heading line and its text after the
// mandatory single space.
func headerPrefix(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level == len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, line[level+1:], true
}

func isBullet(c byte) bool {
	return c == '-' || c == '*' || c == '+'
}
