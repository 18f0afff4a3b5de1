package mdhtml

import (
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	// Link text may hold one level of nested brackets; the URL holds no parentheses.
	linkPattern = regexp.MustCompile(`\[([^\[\]]*(?:\[[^\[\]]*\][^\[\]]*)*)\]\(([^()]*)\)`)
	codePattern = regexp.MustCompile("(`+)([^`]*)(`+)")
)

// Transform rewrites the inline spans of a single line: bold, then italic,
// then links, then the first inline code span. Each stage sees the output of
// the previous one. Unterminated or malformed spans are left untouched.
func Transform(line string) string {
	line = rewriteAll(line, boldPattern, func(m []string) string {
		return "<strong>" + m[1] + "</strong>"
	})
	line = rewriteAll(line, italicPattern, func(m []string) string {
		return "<i>" + m[1] + "</i>"
	})
	line = rewriteAll(line, linkPattern, func(m []string) string {
		return `<a href="` + m[2] + `">` + m[1] + "</a>"
	})
	return rewriteCode(line)
}

// rewriteAll replaces matches of re from left to right. Scanning resumes
// after each replaced span, so replacement output is never rescanned.
func rewriteAll(line string, re *regexp.Regexp, repl func(m []string) string) string {
	loc := re.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + 16)
	rest := line
	for loc != nil {
		m := submatches(rest, loc)
		out := repl(m)
		inlineTracer().Debugf("inline: %q -> %q", m[0], out)
		b.WriteString(rest[:loc[0]])
		b.WriteString(out)
		rest = rest[loc[1]:]
		loc = re.FindStringSubmatchIndex(rest)
	}
	b.WriteString(rest)
	return b.String()
}

// rewriteCode converts the first backtick-delimited span. When the opening
// and closing runs differ in length, the shorter run delimits the span and
// the surplus backticks become part of the code content.
func rewriteCode(line string) string {
	loc := codePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	m := submatches(line, loc)
	open, code, close := m[1], m[2], m[3]
	if code == "" {
		return line
	}
	switch {
	case len(open) < len(close):
		code += close[:len(close)-len(open)]
	case len(open) > len(close):
		code = open[:len(open)-len(close)] + code
	}
	inlineTracer().Debugf("inline: %q -> code %q", m[0], code)
	return line[:loc[0]] + "<code>" + code + "</code>" + line[loc[1]:]
}

func submatches(s string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}
