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

import "html"

// htmlBackend renders HTML mode: the Plain glyph vocabulary wrapped in
// class-annotated elements, suitable for styling with an external
// stylesheet. Each row becomes one <div class="row KIND">; gutters, borders,
// and markers become <span> runs inside it.
type htmlBackend struct{}

func (htmlBackend) vocab() *vocab { return &plainVocab }

func (htmlBackend) escape(text string) string { return html.EscapeString(text) }

func (htmlBackend) control(r rune) string { return controlPicture(r) }

func (htmlBackend) border(text string) string {
	return `<span class="border">` + text + `</span>`
}

func (htmlBackend) gutter(text string) string {
	return `<span class="gutter">` + text + `</span>`
}

func (htmlBackend) marker(m Marker, glyph string) string {
	attr := ""
	if m.Tag != "" {
		attr = ` data-tag="` + html.EscapeString(m.Tag) + `"`
	}
	return `<span class="mark ` + glyphClassName(m.Class) + `"` + attr + `>` + glyph + `</span>`
}

func (htmlBackend) row(kind rowKind, content string) string {
	return `<div class="row ` + string(kind) + `">` + content + `</div>`
}

func glyphClassName(class GlyphClass) string {
	switch class {
	case GlyphPoint:
		return "point"
	case GlyphShort:
		return "short"
	case GlyphConnector:
		return "connector"
	default:
		return "long"
	}
}
