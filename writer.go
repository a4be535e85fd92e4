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
	"bytes"
	"io"
	"strings"
	"unicode"
)

// writer implements low-level writing helpers, including a custom buffering
// routine to avoid printing trailing whitespace to the output.
type writer struct {
	out io.Writer
	buf []byte // Never contains a '\n' byte.
	err error
}

func (w *writer) WriteString(data string) {
	for line := range strings.Lines(data) {
		rest, newline := strings.CutSuffix(line, "\n")
		w.buf = append(w.buf, rest...)
		if newline {
			w.flush(true)
		}
	}
}

// Newline terminates the current line, discarding trailing whitespace.
func (w *writer) Newline() {
	w.flush(true)
}

// Flush flushes the buffer to the writer's output.
func (w *writer) Flush() error {
	defer func() { w.err = nil }()
	return w.flush(false)
}

// flush is like [writer.Flush], but instead retains the error to be returned
// out of Flush later, so that the rendering code does not have to thread an
// error through every write.
//
// If withNewline is set, appends a newline to the data being written.
func (w *writer) flush(withNewline bool) error {
	if w.err != nil {
		return w.err
	}

	w.buf = bytes.TrimRightFunc(w.buf, unicode.IsSpace)
	if withNewline {
		w.buf = append(w.buf, '\n')
	}

	if len(w.buf) > 0 {
		_, w.err = w.out.Write(w.buf)
	}
	w.buf = w.buf[:0]
	return w.err
}
