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

// Plan is the abstract, encoding-independent result of laying out one or
// more contexts: an ordered sequence of rows with every column already
// computed in display cells. Backends serialize a Plan verbatim and make no
// layout decisions of their own, which is what keeps the four output modes
// structurally identical row for row.
type Plan struct {
	// Gutter is the width in cells of the line-number column, constant
	// across all rows. Zero when no context shows line numbers.
	Gutter int
	// Width is the widest source-row content in cells, used to right-align
	// span tags.
	Width int
	Rows  []Row
}

// Row is one row of a [Plan]. The concrete types are [BorderRow],
// [SourceRow], [UnderlineRow], and [CommentRow].
type Row interface {
	isRow()
}

// BorderKind distinguishes the three border rows of a plan.
type BorderKind int8

const (
	// BorderTop opens the first context of a plan.
	BorderTop BorderKind = 1 + iota
	// BorderMiddle separates one context from the next.
	BorderMiddle
	// BorderBottom closes the plan.
	BorderBottom
)

// BorderRow is a horizontal border. Tag is the file/line label embedded in
// the border, such as "file.txt:42", or empty for a bare border glyph.
type BorderRow struct {
	Kind BorderKind
	Tag  string
}

// SourceRow is one line of source text. Number is the displayed line number,
// or zero for a blank gutter. Trimmed marks a line whose front was cut off
// and is rendered behind an ellipsis.
type SourceRow struct {
	Number  int
	Trimmed bool
	Text    string
}

// UnderlineRow carries the markers stacked directly under a source row.
// Markers are ordered by ascending column and never overlap within one row.
type UnderlineRow struct {
	Markers []Marker
}

// CommentRow attaches one span's comment and/or tag beneath its underline.
//
// Connectors are the point markers linking pending comments to their spans;
// the last connector belongs to this row's text. TextCol and TagCol are the
// starting cells of the comment text and the right-aligned tag; a negative
// column means the part is absent.
type CommentRow struct {
	Connectors []Marker
	TextCol    int
	Text       string
	Tag        string
	TagCol     int
}

func (BorderRow) isRow()    {}
func (SourceRow) isRow()    {}
func (UnderlineRow) isRow() {}
func (CommentRow) isRow()   {}

// GlyphClass is the category of a marker, independent of the character set
// that ultimately draws it.
type GlyphClass int8

const (
	// GlyphPoint marks a zero-width span: a pure insertion point.
	GlyphPoint GlyphClass = 1 + iota
	// GlyphShort underlines a single column.
	GlyphShort
	// GlyphLong underlines two or more columns.
	GlyphLong
	// GlyphConnector ties a comment row to its span's start column.
	GlyphConnector
)

// Marker is a single glyph run within an underline or comment row.
//
// Col and Width are in display cells relative to the start of the source
// content. Stack is the index of the marker's underline row within its
// source line's stack, and Tag its span's tag; the color backend keys its
// palette on Tag when present, Stack otherwise.
type Marker struct {
	Col   int
	Width int
	Class GlyphClass
	Stack int
	Tag   string
}

// classify returns the glyph class for a span covering width columns.
func classify(width int) GlyphClass {
	switch width {
	case 0:
		return GlyphPoint
	case 1:
		return GlyphShort
	default:
		return GlyphLong
	}
}
