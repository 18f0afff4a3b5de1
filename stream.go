package mdhtml

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const byteOrderMark = "\uFEFF"

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Options []RenderOption
}

// Render reads one Markdown document from Reader and writes its HTML lines,
// each terminated by a newline, to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	lines, err := readDocument(req.Reader, newRenderConfig(req.Options))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	n, err := WriteLines(req.Writer, Convert(lines))
	if err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	ioTracer().Infof("render: %d lines in, written %d bytes", len(lines), n)
	return nil
}

// Parse reads one Markdown document and returns its grouped token stream,
// the same tokens Render would turn into HTML.
func Parse(req ParseRequest) ([]Token, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	lines, err := readDocument(req.Reader, newRenderConfig(req.Options))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Group(Tokenize(lines), lines), nil
}

func readDocument(r io.Reader, cfg renderConfig) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if cfg.validate {
		if err := ValidateInput(src); err != nil {
			return nil, err
		}
	}
	lines, err := ReadLines(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		lines[0] = strings.TrimPrefix(lines[0], byteOrderMark)
	}
	ioTracer().Debugf("read %d bytes, %d lines", len(src), len(lines))
	if cfg.frontMatter {
		lines = stripFrontMatter(lines)
	}
	return lines, nil
}

// ReadLines splits r into lines without their terminators. A trailing
// carriage return is removed from each line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReaderSize(r, 4096)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, trimCR(strings.TrimSuffix(line, "\n")))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("read lines: %w", err)
		}
	}
}

// WriteLines writes each line followed by a newline and returns the number
// of bytes written.
func WriteLines(w io.Writer, lines []string) (int, error) {
	bw := bufio.NewWriter(w)
	total := 0
	for _, line := range lines {
		n, err := bw.WriteString(line)
		total += n
		if err != nil {
			return total, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}
	return total, bw.Flush()
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
