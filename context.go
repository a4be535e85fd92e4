// Copyright 2024-2026 The Sourcemark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sourcemark

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Context is a snippet of source text with the highlights attached to it.
//
// A context optionally carries the path of the file the snippet came from and
// the 1-based line number of its first line. A StartLine of zero means the
// snippet has no line numbers and renders with a blank gutter.
//
// Contexts are immutable values: the With* and Highlight methods return
// modified copies, and the merge and layout engines never mutate their
// inputs.
type Context struct {
	file      string
	startLine int
	// Columns trimmed off the front of the first line. A nonzero offset
	// renders an ellipsis before the first line and shifts its markers right
	// by one cell.
	firstLineOffset int
	lines           []string
	highlights      Highlights
}

// Show constructs a context that displays bare text with no file, line
// numbers, or highlights. Useful for pointing at things that have no source
// position, such as a missing file's path.
func Show(text string) Context {
	return Context{lines: splitLines(text)}
}

// FullLine constructs a context for a whole faulty line when no narrower
// position can be given.
func FullLine(line int, text string) Context {
	return Context{startLine: line, lines: splitLines(text)}
}

// Line constructs a context highlighting spans on a single numbered line.
func Line(line int, text string, spans ...Span) Context {
	c := Context{startLine: line, lines: splitLines(text)}
	return c.Highlight(0, spans...)
}

// WithFile returns a copy of this context associated with the given file
// path. The path appears in the context's border tag.
func (c Context) WithFile(path string) Context {
	c.file = path
	return c
}

// WithStartLine returns a copy of this context whose first line carries the
// given 1-based line number. Zero disables line numbers.
func (c Context) WithStartLine(line int) Context {
	c.startLine = line
	return c
}

// WithLines returns a copy of this context showing the given text, whose
// first line starts firstLineOffset columns into the original source line.
// A nonzero offset renders a leading ellipsis on the first line.
func (c Context) WithLines(firstLineOffset int, text string) Context {
	c.firstLineOffset = firstLineOffset
	c.lines = splitLines(text)
	return c
}

// Highlight returns a copy of this context with the given spans appended to
// the given line, after any spans already present on it.
func (c Context) Highlight(line int, spans ...Span) Context {
	if len(spans) == 0 {
		return c
	}
	highlights := c.highlights.clone()
	if highlights == nil {
		highlights = make(Highlights)
	}
	highlights.Add(line, spans...)
	c.highlights = highlights
	return c
}

// File returns the file path associated with this context, if any.
func (c Context) File() string { return c.file }

// StartLine returns the 1-based line number of the first line, or zero if
// the context has no line numbers.
func (c Context) StartLine() int { return c.startLine }

// Lines returns the snippet's lines. The returned slice must not be
// modified.
func (c Context) Lines() []string { return c.lines }

// Highlights returns the spans attached to this context's lines. The
// returned group must not be modified.
func (c Context) Highlights() Highlights { return c.highlights }

// IsEmpty reports whether this context has no lines to show.
func (c Context) IsEmpty() bool { return len(c.lines) == 0 }

// numbered reports whether this context shows line numbers.
func (c Context) numbered() bool { return c.startLine > 0 }

// lastLine returns the largest displayed line number, or zero when the
// context is unnumbered.
func (c Context) lastLine() int {
	if !c.numbered() {
		return 0
	}
	return c.startLine + max(len(c.lines), 1) - 1
}

// key returns the merge identity of this context. Two contexts showing the
// same text of the same file at the same position are the same occurrence;
// their highlights are unioned rather than stacked.
func (c Context) key() string {
	var sb strings.Builder
	sb.WriteString(c.file)
	sb.WriteByte(0)
	sb.WriteString(strconv.Itoa(c.startLine))
	sb.WriteByte(0)
	sb.WriteString(strconv.Itoa(c.firstLineOffset))
	for _, line := range c.lines {
		sb.WriteByte(0)
		sb.WriteString(line)
	}
	return sb.String()
}

// equal reports full equality, highlights included.
func (c Context) equal(other Context) bool {
	return c.key() == other.key() &&
		maps.EqualFunc(c.highlights, other.highlights, slices.Equal)
}

// splitLines splits text on newlines, dropping a single trailing newline so
// that "foo\n" is one line, not two.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
