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
	"slices"
	"strconv"
)

// Layout computes the render plan for an ordered list of contexts, typically
// the output of [Merge].
//
// The first context opens with a top border, later contexts with a middle
// separator, and the plan closes with a single bottom border. Contexts that
// carry a file embed a "file:line" tag in their border. All contexts share
// one gutter sized for the largest line number in the plan.
//
// Layout is pure and total: malformed spans are rejected at construction
// time, and spans that reach past the end of their line are clamped to it
// rather than reported, since byte-offset spans and line splitting can
// legitimately disagree near line ends.
func Layout(contexts []Context) *Plan {
	p := new(Plan)
	for _, ctx := range contexts {
		if ctx.numbered() {
			p.Gutter = max(p.Gutter, digits(ctx.lastLine()))
		}
		for i, line := range ctx.lines {
			w := cellCount(line)
			if i == 0 && ctx.firstLineOffset > 0 {
				w++
			}
			p.Width = max(p.Width, w)
		}
	}

	for i, ctx := range contexts {
		kind := BorderTop
		if i > 0 {
			kind = BorderMiddle
		}
		p.Rows = append(p.Rows, BorderRow{Kind: kind, Tag: borderTag(ctx)})
		layoutContext(p, ctx)
	}
	if len(contexts) == 0 {
		p.Rows = append(p.Rows, BorderRow{Kind: BorderTop})
	}
	p.Rows = append(p.Rows, BorderRow{Kind: BorderBottom})
	return p
}

// borderTag builds the file/line label for a context's opening border.
//
// The tag is "file", "file:line", or "file:line:col"; the column form is
// only used when the context highlights exactly one span, on its first
// line, so the label is never ambiguous.
func borderTag(ctx Context) string {
	if ctx.file == "" {
		return ""
	}
	tag := ctx.file
	if !ctx.numbered() {
		return tag
	}
	tag += ":" + strconv.Itoa(ctx.startLine)

	var total int
	for _, spans := range ctx.highlights {
		total += len(spans)
	}
	if total == 1 && len(ctx.highlights[0]) == 1 {
		span := ctx.highlights[0][0]
		tag += ":" + strconv.Itoa(ctx.firstLineOffset+span.Start()+1)
	}
	return tag
}

// annotation is a span placed on an underline row, with its columns already
// resolved to display cells.
type annotation struct {
	marker Marker
	span   Span
}

// layoutContext appends the source, underline, and comment rows for a single
// context.
func layoutContext(p *Plan, ctx Context) {
	for i, line := range ctx.lines {
		var number int
		if ctx.numbered() {
			number = ctx.startLine + i
		}
		trimmed := i == 0 && ctx.firstLineOffset > 0
		p.Rows = append(p.Rows, SourceRow{Number: number, Trimmed: trimmed, Text: line})

		for _, stack := range packSpans(line, trimmed, ctx.highlights[i]) {
			markers := make([]Marker, len(stack))
			for j, a := range stack {
				markers[j] = a.marker
			}
			p.Rows = append(p.Rows, UnderlineRow{Markers: markers})
			appendCommentRows(p, stack)
		}
	}
}

// packSpans resolves a line's spans to display cells and packs them onto
// underline rows: each span lands on the first row where it overlaps nothing
// already placed, so non-overlapping spans share a row and overlapping ones
// stack in insertion order. Rows come back sorted by ascending column.
func packSpans(line string, trimmed bool, spans []Span) [][]annotation {
	var shift int
	if trimmed {
		shift = 1
	}

	var rows [][]annotation
	for _, span := range spans {
		start := clampCol(line, span.Start())
		end := clampCol(line, span.End())
		marker := Marker{
			Col:   shift + cellsBefore(line, start),
			Width: cellSpan(line, start, end),
			Class: classify(end - start),
			Tag:   span.Tag(),
		}

		at := slices.IndexFunc(rows, func(row []annotation) bool {
			return !slices.ContainsFunc(row, func(a annotation) bool {
				return marker.Col < a.marker.Col+cells(a.marker) &&
					a.marker.Col < marker.Col+cells(marker)
			})
		})
		if at == -1 {
			at = len(rows)
			rows = append(rows, nil)
		}
		marker.Stack = at
		rows[at] = append(rows[at], annotation{marker: marker, span: span})
	}

	for _, row := range rows {
		slices.SortStableFunc(row, func(a, b annotation) int {
			return a.marker.Col - b.marker.Col
		})
	}
	return rows
}

// cells returns the number of cells a marker occupies; a point marker draws
// a single glyph even though its span is zero columns wide.
func cells(m Marker) int {
	return max(1, m.Width)
}

// appendCommentRows emits one comment row per annotated span of an underline
// row, rightmost span first. Every row repeats a connector for each comment
// still pending, so connectors chain down from the underline to their text
// without ever colliding with it.
func appendCommentRows(p *Plan, stack []annotation) {
	var pending []annotation
	for _, a := range stack {
		if a.span.annotated() {
			pending = append(pending, a)
		}
	}
	// Rightmost text renders first; equal columns keep insertion order and
	// stack beneath a shared connector.
	slices.SortStableFunc(pending, func(a, b annotation) int {
		return b.marker.Col - a.marker.Col
	})

	for i, a := range pending {
		row := CommentRow{TextCol: -1, TagCol: -1}
		for _, rest := range pending[i:] {
			connector := Marker{
				Col:   rest.marker.Col,
				Width: 1,
				Class: GlyphConnector,
				Stack: rest.marker.Stack,
				Tag:   rest.marker.Tag,
			}
			if slices.ContainsFunc(row.Connectors, func(m Marker) bool { return m.Col == connector.Col }) {
				continue
			}
			row.Connectors = append(row.Connectors, connector)
		}
		slices.SortFunc(row.Connectors, func(a, b Marker) int { return a.Col - b.Col })

		after := a.marker.Col + 1
		if comment := a.span.Comment(); comment != "" {
			row.TextCol = a.marker.Col + 2
			row.Text = comment
			after = row.TextCol + cellCount(comment)
		}
		if tag := a.span.Tag(); tag != "" {
			row.Tag = tag
			row.TagCol = max(p.Width-cellCount(tag), after+1)
		}
		p.Rows = append(p.Rows, row)
	}
}
