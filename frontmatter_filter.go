package mdhtml

import "strings"

const maxFrontMatterProbeLines = 1024

// stripFrontMatter removes a leading front matter block. The block must
// open with ---, +++ or ;;; on the first line, continue with a line that
// looks like metadata, and close with the same delimiter. Otherwise lines
// are returned unchanged.
func stripFrontMatter(lines []string) []string {
	if len(lines) < 2 {
		return lines
	}
	delim, ok := openingFrontMatterDelimiter(lines[0])
	if !ok || !frontMatterMetadataLikely(lines[1]) {
		return lines
	}
	limit := min(len(lines), maxFrontMatterProbeLines)
	for i := 2; i < limit; i++ {
		if strings.TrimSpace(lines[i]) == delim {
			ioTracer().Debugf("front matter: skipped %d lines", i+1)
			return lines[i+1:]
		}
	}
	return lines
}

func openingFrontMatterDelimiter(line string) (string, bool) {
	switch trimmed := strings.TrimSpace(strings.TrimPrefix(line, byteOrderMark)); trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
