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
	"io"
	"strconv"
	"strings"
)

// Mode selects the output encoding of a [Renderer].
type Mode int8

const (
	// Plain renders with Unicode box-drawing glyphs and no styling.
	Plain Mode = 1 + iota
	// ASCII renders the same rows using only single-byte characters.
	ASCII
	// Color renders like Plain with ANSI SGR styling on markers, keyed by
	// span tag or by stacking index.
	Color
	// HTML renders an escaped markup fragment: one element per row, one
	// inline span per marker.
	HTML
)

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case ASCII:
		return "ascii"
	case Color:
		return "color"
	case HTML:
		return "html"
	default:
		return fmt.Sprintf("Mode(%d)", int8(m))
	}
}

// Renderer serializes render plans for one output mode.
//
// The zero value renders Plain. Renderers are stateless and may be shared
// freely across goroutines.
type Renderer struct {
	Mode Mode
}

// rowKind names a row category for backends that mark up whole rows.
type rowKind string

const (
	rowBorder    rowKind = "border"
	rowSource    rowKind = "source"
	rowUnderline rowKind = "underline"
	rowComment   rowKind = "comment"
)

// backend is the capability set one output mode supplies: a glyph table plus
// escaping and styling hooks. Backends perform no layout; every column was
// already fixed by [Layout].
type backend interface {
	vocab() *vocab
	// escape rewrites user text (source lines, comments, tags) for the
	// target encoding.
	escape(text string) string
	// control substitutes a single-cell stand-in for a control character.
	control(r rune) string
	// border, gutter, and marker style the corresponding output runs.
	border(text string) string
	gutter(text string) string
	marker(m Marker, glyph string) string
	// row wraps a completed row's content.
	row(kind rowKind, content string) string
}

func (r Renderer) backend(plan *Plan) backend {
	switch r.Mode {
	case ASCII:
		return monoBackend{v: &asciiVocab, ctrl: asciiControl}
	case Color:
		return newColorBackend(plan)
	case HTML:
		return htmlBackend{}
	default:
		return monoBackend{v: &plainVocab, ctrl: controlPicture}
	}
}

// Render serializes the plan to out, one line per row, with no trailing
// newline after the final row.
func (r Renderer) Render(plan *Plan, out io.Writer) error {
	b := r.backend(plan)
	w := &writer{out: out}
	for i, row := range plan.Rows {
		if i > 0 {
			w.Newline()
		}
		renderRow(w, b, plan.Gutter, row)
	}
	return w.Flush()
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(plan *Plan) string {
	var sb strings.Builder
	_ = r.Render(plan, &sb)
	return sb.String()
}

func renderRow(w *writer, b backend, gutter int, row Row) {
	v := b.vocab()
	switch row := row.(type) {
	case BorderRow:
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", gutter))
		sb.WriteByte(' ')
		switch {
		case row.Kind == BorderBottom:
			sb.WriteString(v.bottom)
		case row.Tag == "" && row.Kind == BorderTop:
			sb.WriteString(v.topStem)
		case row.Tag == "":
			sb.WriteString(v.midStem)
		default:
			if row.Kind == BorderTop {
				sb.WriteString(v.topCorner)
			} else {
				sb.WriteString(v.midStem)
			}
			sb.WriteString(v.arm)
			sb.WriteString("[")
			sb.WriteString(b.escape(row.Tag))
			sb.WriteString("]")
		}
		w.WriteString(b.row(rowBorder, b.border(sb.String())))

	case SourceRow:
		var number string
		if row.Number > 0 {
			number = strconv.Itoa(row.Number)
		}
		prefix := fmt.Sprintf("%-*s %s ", gutter, number, v.bar)

		content := b.escape(sanitize(row.Text, b.control))
		if row.Trimmed {
			content = v.ellipsis + content
		}
		w.WriteString(b.row(rowSource, b.gutter(prefix)+content))

	case UnderlineRow:
		var sb strings.Builder
		col := 0
		for _, m := range row.Markers {
			sb.WriteString(strings.Repeat(" ", m.Col-col))
			sb.WriteString(b.marker(m, v.underline(m.Class, cells(m))))
			col = m.Col + cells(m)
		}
		w.WriteString(b.row(rowUnderline, b.gutter(markerPrefix(v, gutter))+sb.String()))

	case CommentRow:
		var sb strings.Builder
		col := 0
		for _, m := range row.Connectors {
			sb.WriteString(strings.Repeat(" ", m.Col-col))
			sb.WriteString(b.marker(m, v.connector))
			col = m.Col + 1
		}
		if row.TextCol >= 0 {
			sb.WriteString(strings.Repeat(" ", row.TextCol-col))
			sb.WriteString(b.escape(row.Text))
			col = row.TextCol + cellCount(row.Text)
		}
		if row.TagCol >= 0 {
			sb.WriteString(strings.Repeat(" ", row.TagCol-col))
			sb.WriteString(b.escape(row.Tag))
		}
		w.WriteString(b.row(rowComment, b.gutter(markerPrefix(v, gutter))+sb.String()))
	}
}

// markerPrefix is the blank gutter shared by underline and comment rows.
func markerPrefix(v *vocab, gutter int) string {
	return strings.Repeat(" ", gutter) + " " + v.dashedBar + " "
}
