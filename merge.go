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

// Occurrence is one sighting of a logical error: a context plus any extra
// highlights to union into it. Extra may be nil when the context already
// carries all of its highlights.
type Occurrence struct {
	Context Context
	Extra   Highlights
}

// Merge folds occurrences of the same logical error into a deduplicated
// list of contexts.
//
// Contexts are keyed by (file, start line, lines): the first occurrence of a
// key fixes that context's position in the output, and every repeat sighting
// unions its highlights into the existing entry, line by line. Spans that are
// equal in columns, comment, and tag to one already on a line are dropped;
// distinct spans are appended in input order. This is what collapses "the
// same error at three call sites in one file" into a single block with three
// underlines.
//
// Merge never reorders: output order is first-seen order, so a caller that
// wants contexts sorted by line number sorts the occurrences before calling.
// Grouping occurrences by logical error is also the caller's job; Merge does
// not inspect messages.
//
// Merge is pure. Inputs are not mutated, and merging a merged result with
// itself yields the same contexts.
func Merge(occurrences []Occurrence) []Context {
	var out []Context
	index := make(map[string]int, len(occurrences))

	for _, occ := range occurrences {
		key := occ.Context.key()
		at, seen := index[key]
		if !seen {
			ctx := occ.Context
			ctx.highlights = ctx.highlights.union(occ.Extra)
			index[key] = len(out)
			out = append(out, ctx)
			continue
		}
		merged := out[at].highlights.union(occ.Context.highlights).union(occ.Extra)
		out[at].highlights = merged
	}
	return out
}
