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
	"html"
	"io"
	"slices"
	"strings"
)

// Level classifies a [Diagnostic].
type Level int8

const (
	// LevelError is the default level.
	LevelError Level = iota
	// LevelWarning marks a diagnostic the caller does not treat as fatal.
	LevelWarning
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	if l == LevelWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic assembles one complete user-facing message: a leveled title,
// any number of source contexts, and optional trailing help, suggestion,
// version, and underlying-error sections.
//
// Diagnostic defines no error identity of its own; deduplication within one
// diagnostic happens per context via [Merge] when rendering, while folding
// whole diagnostics together is the caller's call through [Combine].
//
// Diagnostic implements error, rendering in [Plain] mode.
type Diagnostic struct {
	Level       Level
	Message     string
	Help        string
	Suggestions []string
	Version     string
	Contexts    []Context
	Underlying  []*Diagnostic
}

// Error implements error.
func (d *Diagnostic) Error() string {
	return d.RenderString(Plain)
}

// CouldMerge reports whether other describes the same problem as d, i.e.
// everything except the contexts matches. Mergeable diagnostics differ only
// in where they occurred.
func (d *Diagnostic) CouldMerge(other *Diagnostic) bool {
	return d.Level == other.Level &&
		d.Message == other.Message &&
		d.Help == other.Help &&
		slices.Equal(d.Suggestions, other.Suggestions) &&
		d.Version == other.Version &&
		slices.EqualFunc(d.Underlying, other.Underlying, (*Diagnostic).equal)
}

func (d *Diagnostic) equal(other *Diagnostic) bool {
	return d.CouldMerge(other) && slices.EqualFunc(d.Contexts, other.Contexts, Context.equal)
}

// Combine folds next into existing. If some diagnostic in existing could
// merge with next, next's contexts are appended to it; otherwise next is
// appended as a new entry. Returns the updated slice.
//
// Duplicate contexts introduced by folding collapse later, when rendering
// runs the contexts through [Merge].
func Combine(existing []*Diagnostic, next *Diagnostic) []*Diagnostic {
	for _, d := range existing {
		if d.CouldMerge(next) {
			d.Contexts = append(d.Contexts, next.Contexts...)
			return existing
		}
	}
	return append(existing, next)
}

// merged runs the diagnostic's contexts through [Merge] and drops the empty
// ones.
func (d *Diagnostic) merged() []Context {
	occs := make([]Occurrence, len(d.Contexts))
	for i, ctx := range d.Contexts {
		occs[i] = Occurrence{Context: ctx}
	}
	return slices.DeleteFunc(Merge(occs), Context.IsEmpty)
}

// Render writes the full diagnostic to out in the given mode. Unlike
// [Renderer.Render], the output ends with a newline.
func (d *Diagnostic) Render(mode Mode, out io.Writer) error {
	if mode == HTML {
		var sb strings.Builder
		d.writeHTML(&sb)
		_, err := io.WriteString(out, sb.String())
		return err
	}
	w := &writer{out: out}
	d.renderText(w, mode)
	return w.Flush()
}

// RenderString is a helper for calling [Diagnostic.Render] with a
// [strings.Builder].
func (d *Diagnostic) RenderString(mode Mode) string {
	var sb strings.Builder
	_ = d.Render(mode, &sb)
	return sb.String()
}

func (d *Diagnostic) renderText(w *writer, mode Mode) {
	color := mode == Color
	level := colored(color, levelColor(d.Level), d.Level.String())
	w.WriteString(level + ": " + d.Message)
	w.Newline()

	if contexts := d.merged(); len(contexts) > 0 {
		w.WriteString(Renderer{Mode: mode}.RenderString(Layout(contexts)))
		w.Newline()
	}

	if d.Help != "" {
		w.WriteString(d.Help)
		w.Newline()
	}
	switch len(d.Suggestions) {
	case 0:
	case 1:
		w.WriteString(colored(color, colors.blue, "Did you mean") + ": " + d.Suggestions[0] + "?")
		w.Newline()
	default:
		w.WriteString(colored(color, colors.blue, "Did you mean any of") + ": " + strings.Join(d.Suggestions, ", ") + "?")
		w.Newline()
	}
	if d.Version != "" {
		w.WriteString(colored(color, colors.green, "Version") + ": " + d.Version)
		w.Newline()
	}
	if len(d.Underlying) > 0 {
		label := "Underlying error"
		if len(d.Underlying) > 1 {
			label += "s"
		}
		w.WriteString(colored(color, colors.yellow, label) + ":")
		w.Newline()
		for i, u := range d.Underlying {
			if i > 0 {
				w.Newline()
			}
			u.renderText(w, mode)
		}
	}
}

func (d *Diagnostic) writeHTML(sb *strings.Builder) {
	fmt.Fprintf(sb, `<div class="%s">`, d.Level)
	sb.WriteString(`<p class="title">` + html.EscapeString(d.Message) + `</p>`)

	sb.WriteString(`<div class="contexts">`)
	if contexts := d.merged(); len(contexts) > 0 {
		sb.WriteString(Renderer{Mode: HTML}.RenderString(Layout(contexts)))
	}
	sb.WriteString(`</div>`)

	if d.Help != "" {
		sb.WriteString(`<p class="description">` + html.EscapeString(d.Help) + `</p>`)
	}
	if len(d.Suggestions) > 0 {
		anyOf := ""
		if len(d.Suggestions) > 1 {
			anyOf = " any of"
		}
		fmt.Fprintf(sb, `<p>Did you mean%s?</p><ul>`, anyOf)
		for _, s := range d.Suggestions {
			sb.WriteString(`<li class="suggestion">` + html.EscapeString(s) + `</li>`)
		}
		sb.WriteString(`</ul>`)
	}
	if d.Version != "" {
		sb.WriteString(`<p class="version">Version: <span class="version-text">` +
			html.EscapeString(d.Version) + `</span></p>`)
	}
	if len(d.Underlying) > 0 {
		label := "Underlying error"
		if len(d.Underlying) > 1 {
			label += "s"
		}
		fmt.Fprintf(sb, `<label><input type="checkbox"> %s</label><ul>`, label)
		for _, u := range d.Underlying {
			sb.WriteString(`<li class="underlying-error">`)
			u.writeHTML(sb)
			sb.WriteString(`</li>`)
		}
		sb.WriteString(`</ul>`)
	}
	sb.WriteString(`</div>`)
}

func levelColor(l Level) string {
	if l == LevelWarning {
		return colors.yellow
	}
	return colors.red
}

func colored(enabled bool, code, text string) string {
	if !enabled {
		return text
	}
	return code + text + colors.reset
}
