// Package mdhtml converts line-oriented Markdown to HTML.
//
// Conversion works on one document at a time. Every input line is classified
// into a block token, inline spans (bold, italic, links, inline code) are
// rewritten within the line text, and a single grouping pass brackets ordered
// lists and fenced code blocks. Malformed markup is never an error: anything
// the converter does not recognize is passed through as literal text.
//
// Core properties:
//   - One output line per token, no trailing newlines in the core
//   - No shared mutable state; concurrent conversions are safe
//   - Fenced code content is emitted verbatim
//
// Example:
//
//	out := mdhtml.Convert([]string{"# Hello", "Markdown in, *HTML* out."})
//	// out == []string{"<h1>Hello</h1>", "<p>Markdown in, <i>HTML</i> out.</p>"}
//
// Render and HTTPRender wrap Convert with line reading and writing.
package mdhtml

import "github.com/npillmayer/schuko/tracing"

// inlineTracer traces with key 'mdhtml.inline'.
func inlineTracer() tracing.Trace {
	return tracing.Select("mdhtml.inline")
}

// blockTracer traces with key 'mdhtml.block'.
func blockTracer() tracing.Trace {
	return tracing.Select("mdhtml.block")
}

// ioTracer traces with key 'mdhtml.io'.
func ioTracer() tracing.Trace {
	return tracing.Select("mdhtml.io")
}
