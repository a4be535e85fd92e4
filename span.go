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
	"fmt"
	"maps"
	"slices"
)

// Span is a half-open column range [Start, End) on a single source line,
// optionally annotated with a comment and a tag.
//
// Columns are 0-based character offsets into the line. A zero-width span
// (Start == End) marks an insertion point and renders as a point marker
// rather than an underline.
//
// Spans are immutable values; the With* methods return modified copies.
type Span struct {
	start, end int
	comment    string
	tag        string
}

// NewSpan constructs a span covering columns [start, end).
//
// Returns an error if the range is inverted or negative; malformed spans are
// rejected here so that the layout engine never sees one.
func NewSpan(start, end int) (Span, error) {
	if start < 0 || end < start {
		return Span{}, fmt.Errorf("sourcemark: invalid span columns [%d, %d)", start, end)
	}
	return Span{start: start, end: end}, nil
}

// MustSpan is like [NewSpan] but panics on a malformed range.
//
// Intended for spans with constant columns, such as in tests.
func MustSpan(start, end int) Span {
	s, err := NewSpan(start, end)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// WithComment returns a copy of this span carrying the given comment.
//
// The comment renders on its own row beneath the span's underline, attached
// by a connector glyph.
func (s Span) WithComment(comment string) Span {
	s.comment = comment
	return s
}

// WithTag returns a copy of this span carrying the given tag.
//
// Tags render right-aligned on the span's comment row, and key the color
// selection in ANSI output.
func (s Span) WithTag(tag string) Span {
	s.tag = tag
	return s
}

// Start returns the first column covered by this span.
func (s Span) Start() int { return s.start }

// End returns the first column past this span.
func (s Span) End() int { return s.end }

// Len returns the number of columns this span covers.
func (s Span) Len() int { return s.end - s.start }

// Comment returns the comment attached to this span, if any.
func (s Span) Comment() string { return s.comment }

// Tag returns the tag attached to this span, if any.
func (s Span) Tag() string { return s.tag }

// String implements [fmt.Stringer].
func (s Span) String() string {
	text := fmt.Sprintf("[%d, %d)", s.start, s.end)
	if s.comment != "" {
		text += fmt.Sprintf(" %q", s.comment)
	}
	if s.tag != "" {
		text += fmt.Sprintf(" #%s", s.tag)
	}
	return text
}

// annotated reports whether this span needs a comment row.
func (s Span) annotated() bool {
	return s.comment != "" || s.tag != ""
}

// Highlights maps a line index within a [Context] to the ordered spans
// attached to that line. Insertion order is the priority order the layout
// engine uses when packing overlapping spans into rows.
//
// The zero value is an empty group; use [Highlights.Add] or plain map
// assignment to populate it.
type Highlights map[int][]Span

// Add appends spans to the given line, preserving insertion order.
func (h Highlights) Add(line int, spans ...Span) {
	h[line] = append(h[line], spans...)
}

// Lines returns the annotated line indices in ascending order.
func (h Highlights) Lines() []int {
	return slices.Sorted(maps.Keys(h))
}

// clone returns a deep copy of this group.
func (h Highlights) clone() Highlights {
	if h == nil {
		return nil
	}
	out := make(Highlights, len(h))
	for line, spans := range h {
		out[line] = slices.Clone(spans)
	}
	return out
}

// union merges other into a copy of this group, line by line. Spans equal in
// columns, comment, and tag to one already present on the line are dropped;
// everything else is appended in input order.
func (h Highlights) union(other Highlights) Highlights {
	if len(other) == 0 {
		return h
	}
	out := h.clone()
	if out == nil {
		out = make(Highlights, len(other))
	}
	for _, line := range other.Lines() {
		for _, span := range other[line] {
			if !slices.Contains(out[line], span) {
				out[line] = append(out[line], span)
			}
		}
	}
	return out
}
