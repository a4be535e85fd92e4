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
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Marker columns must land exactly under the characters they point at, so
// all layout math is done in display cells rather than bytes or runes.
// Control characters count as one cell because every backend substitutes
// them with a single-cell placeholder (a control picture in Unicode modes).

// nonPrint reports whether a rune is rendered as a substitute glyph instead
// of itself.
func nonPrint(r rune) bool {
	return r < 0x20 || r == 0x7F
}

// cellWidth returns the display width of a single rune.
func cellWidth(r rune) int {
	if nonPrint(r) {
		return 1
	}
	return uniseg.StringWidth(string(r))
}

// cellCount returns the display width of text.
func cellCount(text string) int {
	var cells int
	for _, r := range text {
		cells += cellWidth(r)
	}
	return cells
}

// cellsBefore returns the display width of the first col characters of line.
// Columns past the end of the line are clamped to its full width.
func cellsBefore(line string, col int) int {
	var cells int
	for _, r := range line {
		if col == 0 {
			break
		}
		col--
		cells += cellWidth(r)
	}
	return cells
}

// cellSpan returns the display width of characters [start, end) of line,
// with both bounds clamped to the line's length.
func cellSpan(line string, start, end int) int {
	return cellsBefore(line, end) - cellsBefore(line, start)
}

// clampCol clamps a character column to the number of characters in line.
func clampCol(line string, col int) int {
	if n := utf8.RuneCountInString(line); col > n {
		return n
	}
	return col
}

// digits returns the number of decimal digits in n.
func digits(n int) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
