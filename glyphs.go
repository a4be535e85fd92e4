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

import "strings"

// vocab is the glyph table of one output mode: the literal text that draws
// each element of the abstract row vocabulary. Every entry is exactly one
// display cell wide, which is what keeps all modes column-identical.
type vocab struct {
	topStem   string // bare top border
	topCorner string // top border carrying a tag
	midStem   string // bare context separator
	bottom    string // bottom border
	arm       string // horizontal lead-in to a border tag
	bar       string // gutter bar on source rows
	dashedBar string // gutter bar on underline/comment rows
	ellipsis  string // front-trimmed line prefix
	point     string // zero-width span marker
	dash      string // underline body
	capL      string // long underline left cap
	capR      string // long underline right cap
	connector string // comment connector
}

var plainVocab = vocab{
	topStem:   "╷",
	topCorner: "╭",
	midStem:   "╎",
	bottom:    "╵",
	arm:       "─",
	bar:       "│",
	dashedBar: "╎",
	ellipsis:  "…",
	point:     "⁃",
	dash:      "─",
	capL:      "╶",
	capR:      "╴",
	connector: "╵",
}

var asciiVocab = vocab{
	topStem:   "+",
	topCorner: "+",
	midStem:   "+",
	bottom:    "+",
	arm:       "-",
	bar:       "|",
	dashedBar: "|",
	ellipsis:  "<",
	point:     "^",
	dash:      "~",
	capL:      "~",
	capR:      "~",
	connector: "|",
}

// underline draws the marker body for the given class over the given number
// of cells. Cells may disagree with the span's column count when the span
// covers double-width characters or was clamped, so the glyph run is sized
// by cells alone.
func (v *vocab) underline(class GlyphClass, cells int) string {
	switch {
	case class == GlyphPoint:
		return v.point
	case class == GlyphConnector:
		return v.connector
	case class == GlyphShort || cells == 1:
		return strings.Repeat(v.dash, cells)
	case cells == 2:
		return v.capL + v.capR
	default:
		return v.capL + strings.Repeat(v.dash, cells-2) + v.capR
	}
}

// controlPicture substitutes Unicode control pictures for control
// characters, so that tabs, carriage returns, and stray NULs occupy exactly
// one cell instead of derailing the column math.
func controlPicture(r rune) string {
	if r == 0x7F {
		return "␡"
	}
	return string(rune(0x2400 + r))
}

// sanitize rewrites control characters in a source line using the given
// substitution.
func sanitize(text string, control func(rune) string) string {
	if !strings.ContainsFunc(text, nonPrint) {
		return text
	}
	var sb strings.Builder
	for _, r := range text {
		if nonPrint(r) {
			sb.WriteString(control(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// asciiControl is the single-cell ASCII stand-in for a control character.
func asciiControl(rune) string { return "?" }

// monoBackend renders the Plain and ASCII modes: a bare glyph table with no
// styling and no escaping.
type monoBackend struct {
	v    *vocab
	ctrl func(rune) string
}

func (b monoBackend) vocab() *vocab { return b.v }

func (b monoBackend) escape(text string) string { return text }

func (b monoBackend) control(r rune) string { return b.ctrl(r) }

func (b monoBackend) border(text string) string { return text }

func (b monoBackend) gutter(text string) string { return text }

func (b monoBackend) marker(_ Marker, glyph string) string { return glyph }

func (b monoBackend) row(_ rowKind, content string) string { return content }
