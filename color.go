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

// styleSheet carries the raw SGR escapes for ANSI output. Keeping the codes
// as plain strings keeps the hot path down to concatenation.
type styleSheet struct {
	reset   string
	accent  string
	red     string
	yellow  string
	green   string
	blue    string
	palette []string
}

var colors = styleSheet{
	reset:  "\033[0m",
	accent: "\033[0;34m",
	red:    "\033[0;31m",
	yellow: "\033[0;33m",
	green:  "\033[0;32m",
	blue:   "\033[0;34m",
	palette: []string{
		"\033[0;31m", // red
		"\033[0;33m", // yellow
		"\033[0;35m", // magenta
		"\033[0;32m", // green
		"\033[0;36m", // cyan
		"\033[0;34m", // blue
	},
}

// colorBackend renders Color mode. Borders and gutters take the accent
// color; markers take a palette color chosen by tag, falling back to the
// stacking index for untagged spans. Tag colors are assigned in order of
// first appearance in the plan, so a tag keeps its color across rows and
// contexts.
type colorBackend struct {
	tags map[string]int
}

func newColorBackend(plan *Plan) colorBackend {
	b := colorBackend{tags: make(map[string]int)}
	for _, row := range plan.Rows {
		switch row := row.(type) {
		case UnderlineRow:
			for _, m := range row.Markers {
				b.assign(m.Tag)
			}
		case CommentRow:
			b.assign(row.Tag)
		}
	}
	return b
}

func (b colorBackend) assign(tag string) {
	if tag == "" {
		return
	}
	if _, ok := b.tags[tag]; !ok {
		b.tags[tag] = len(b.tags)
	}
}

func (b colorBackend) style(m Marker) string {
	idx := m.Stack
	if m.Tag != "" {
		idx = b.tags[m.Tag]
	}
	return colors.palette[idx%len(colors.palette)]
}

func (b colorBackend) vocab() *vocab { return &plainVocab }

func (b colorBackend) escape(text string) string { return text }

func (b colorBackend) control(r rune) string { return controlPicture(r) }

func (b colorBackend) border(text string) string {
	return colors.accent + text + colors.reset
}

func (b colorBackend) gutter(text string) string {
	return colors.accent + text + colors.reset
}

func (b colorBackend) marker(m Marker, glyph string) string {
	return b.style(m) + glyph + colors.reset
}

func (b colorBackend) row(_ rowKind, content string) string { return content }
