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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func diffPlan(want, got *Plan) string {
	return cmp.Diff(want, got)
}

func TestLayoutGutter(t *testing.T) {
	t.Parallel()

	plan := Layout([]Context{
		FullLine(98, "a\nb\nc"), // last line 100
		Show("unnumbered"),
		FullLine(7, "d"),
	})
	assert.Equal(t, 3, plan.Gutter)

	assert.Equal(t, 0, Layout([]Context{Show("x")}).Gutter)
	assert.Equal(t, 0, Layout(nil).Gutter)
}

func TestLayoutSingleLine(t *testing.T) {
	t.Parallel()

	got := Layout([]Context{
		Line(42, "Hello world", MustSpan(6, 7), MustSpan(8, 9)).WithFile("file.txt"),
	})

	want := &Plan{
		Gutter: 2,
		Width:  11,
		Rows: []Row{
			BorderRow{Kind: BorderTop, Tag: "file.txt:42"},
			SourceRow{Number: 42, Text: "Hello world"},
			UnderlineRow{Markers: []Marker{
				{Col: 6, Width: 1, Class: GlyphShort},
				{Col: 8, Width: 1, Class: GlyphShort},
			}},
			BorderRow{Kind: BorderBottom},
		},
	}
	if diff := diffPlan(want, got); diff != "" {
		t.Fatalf("unexpected plan (-want +got):\n%s", diff)
	}
}

func TestLayoutBorderTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"no file", Line(3, "text", MustSpan(0, 1)), ""},
		{"file only", Show("text").WithFile("f.txt"), "f.txt"},
		{"file and line", FullLine(9, "text").WithFile("f.txt"), "f.txt:9"},
		{
			"single span adds column",
			Line(42, "Hello world", MustSpan(6, 7)).WithFile("f.txt"),
			"f.txt:42:7",
		},
		{
			"two spans suppress column",
			Line(42, "Hello world", MustSpan(6, 7), MustSpan(8, 9)).WithFile("f.txt"),
			"f.txt:42",
		},
		{
			"offset shifts column",
			FullLine(3, "").WithFile("f.txt").WithLines(2, "llo").Highlight(0, MustSpan(1, 2)),
			"f.txt:3:4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, borderTag(tt.ctx))
		})
	}
}

func TestLayoutOverlapStacking(t *testing.T) {
	t.Parallel()

	got := Layout([]Context{
		Line(1, "Hello world",
			MustSpan(0, 5),
			MustSpan(3, 8),
			MustSpan(9, 10),
		),
	})

	want := &Plan{
		Gutter: 1,
		Width:  11,
		Rows: []Row{
			BorderRow{Kind: BorderTop},
			SourceRow{Number: 1, Text: "Hello world"},
			// The third span does not overlap the first and shares its row;
			// the second overlaps and stacks onto a row of its own.
			UnderlineRow{Markers: []Marker{
				{Col: 0, Width: 5, Class: GlyphLong},
				{Col: 9, Width: 1, Class: GlyphShort},
			}},
			UnderlineRow{Markers: []Marker{
				{Col: 3, Width: 5, Class: GlyphLong, Stack: 1},
			}},
			BorderRow{Kind: BorderBottom},
		},
	}
	if diff := diffPlan(want, got); diff != "" {
		t.Fatalf("unexpected plan (-want +got):\n%s", diff)
	}
}

func TestLayoutCommentRows(t *testing.T) {
	t.Parallel()

	got := Layout([]Context{
		Line(1, "Hello world",
			MustSpan(0, 5).WithComment("greeting"),
			MustSpan(6, 11).WithComment("subject").WithTag("2"),
		),
	})

	want := &Plan{
		Gutter: 1,
		Width:  11,
		Rows: []Row{
			BorderRow{Kind: BorderTop},
			SourceRow{Number: 1, Text: "Hello world"},
			UnderlineRow{Markers: []Marker{
				{Col: 0, Width: 5, Class: GlyphLong},
				{Col: 6, Width: 5, Class: GlyphLong, Tag: "2"},
			}},
			// Rightmost comment first; the connector for the left comment
			// repeats until its own row.
			CommentRow{
				Connectors: []Marker{
					{Col: 0, Width: 1, Class: GlyphConnector},
					{Col: 6, Width: 1, Class: GlyphConnector, Tag: "2"},
				},
				TextCol: 8, Text: "subject",
				Tag: "2", TagCol: 16,
			},
			CommentRow{
				Connectors: []Marker{
					{Col: 0, Width: 1, Class: GlyphConnector},
				},
				TextCol: 2, Text: "greeting",
				TagCol: -1,
			},
			BorderRow{Kind: BorderBottom},
		},
	}
	if diff := diffPlan(want, got); diff != "" {
		t.Fatalf("unexpected plan (-want +got):\n%s", diff)
	}
}

func TestLayoutClamping(t *testing.T) {
	t.Parallel()

	// "Hello world" is 11 characters; the span reaches far past it and is
	// clamped to the line end.
	got := Layout([]Context{Line(1, "Hello world", MustSpan(5, 999))})

	var underline UnderlineRow
	for _, row := range got.Rows {
		if u, ok := row.(UnderlineRow); ok {
			underline = u
		}
	}
	assert.Equal(t, []Marker{{Col: 5, Width: 6, Class: GlyphLong}}, underline.Markers)
	assert.LessOrEqual(t, underline.Markers[0].Col+underline.Markers[0].Width, got.Width)
}

func TestLayoutTrimmedLine(t *testing.T) {
	t.Parallel()

	got := Layout([]Context{
		FullLine(3, "").
			WithFile("path/file.txt").
			WithLines(1, "ello world").
			Highlight(0, MustSpan(1, 3), MustSpan(6, 11).WithComment("Rest")),
	})

	want := &Plan{
		Gutter: 1,
		Width:  11, // 10 cells of text plus the ellipsis
		Rows: []Row{
			BorderRow{Kind: BorderTop, Tag: "path/file.txt:3"},
			SourceRow{Number: 3, Trimmed: true, Text: "ello world"},
			// Columns shift right by one cell for the ellipsis.
			UnderlineRow{Markers: []Marker{
				{Col: 2, Width: 2, Class: GlyphLong},
				{Col: 7, Width: 4, Class: GlyphLong},
			}},
			CommentRow{
				Connectors: []Marker{{Col: 7, Width: 1, Class: GlyphConnector}},
				TextCol:    9, Text: "Rest",
				TagCol: -1,
			},
			BorderRow{Kind: BorderBottom},
		},
	}
	if diff := diffPlan(want, got); diff != "" {
		t.Fatalf("unexpected plan (-want +got):\n%s", diff)
	}
}

func TestLayoutWideCharacters(t *testing.T) {
	t.Parallel()

	// Each kana is two cells wide; marker columns and widths are measured
	// in cells, not characters.
	got := Layout([]Context{Line(1, "aあい", MustSpan(1, 3))})

	want := []Marker{{Col: 1, Width: 4, Class: GlyphLong}}
	var underline UnderlineRow
	for _, row := range got.Rows {
		if u, ok := row.(UnderlineRow); ok {
			underline = u
		}
	}
	assert.Equal(t, want, underline.Markers)
	assert.Equal(t, 5, got.Width)
}

func TestLayoutMultipleContexts(t *testing.T) {
	t.Parallel()

	got := Layout([]Context{
		Line(3, "first", MustSpan(0, 5)).WithFile("a.txt"),
		Line(7, "second", MustSpan(0, 6)).WithFile("b.txt"),
	})

	var borders []BorderRow
	for _, row := range got.Rows {
		if b, ok := row.(BorderRow); ok {
			borders = append(borders, b)
		}
	}
	want := []BorderRow{
		{Kind: BorderTop, Tag: "a.txt:3:1"},
		{Kind: BorderMiddle, Tag: "b.txt:7:1"},
		{Kind: BorderBottom},
	}
	assert.Equal(t, want, borders)
}

func TestLayoutEmpty(t *testing.T) {
	t.Parallel()

	got := Layout(nil)
	want := []Row{
		BorderRow{Kind: BorderTop},
		BorderRow{Kind: BorderBottom},
	}
	assert.Equal(t, want, got.Rows)
}
