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

// Package sourcemark renders annotated source snippets in the style of a
// modern compiler: line-numbered excerpts framed by box-drawing borders,
// with underlines, comments, and tags pointing into the text.
//
// The pipeline has three stages. [Merge] deduplicates occurrences of the
// same snippet and unions their highlights. [Layout] turns the merged
// contexts into a [Plan], an encoding-independent sequence of rows whose
// columns are measured in display cells. A [Renderer] serializes the plan
// in one of four modes: Unicode text, pure ASCII, ANSI colored text, or an
// HTML fragment. All four modes produce the same rows at the same columns;
// only the glyph vocabulary differs.
//
// [Diagnostic] sits on top of the pipeline and assembles complete error
// messages with help text, suggestion, version, and underlying-error
// footers.
package sourcemark
