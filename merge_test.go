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

// diffContexts compares contexts including their unexported fields.
func diffContexts(want, got []Context) string {
	return cmp.Diff(want, got, cmp.AllowUnexported(Context{}, Span{}))
}

func TestMergeOrderPreservation(t *testing.T) {
	t.Parallel()

	ctxA := Line(3, "first line", MustSpan(0, 5)).WithFile("f")
	ctxB := Line(9, "second line", MustSpan(0, 6)).WithFile("f")
	ctxARepeat := Line(3, "first line", MustSpan(6, 10)).WithFile("f")

	got := Merge([]Occurrence{
		{Context: ctxA},
		{Context: ctxB},
		{Context: ctxARepeat},
	})

	want := []Context{
		Line(3, "first line", MustSpan(0, 5), MustSpan(6, 10)).WithFile("f"),
		ctxB,
	}
	if diff := diffContexts(want, got); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}
}

func TestMergeDeduplicatesSpans(t *testing.T) {
	t.Parallel()

	ctx := Line(1, "text", MustSpan(0, 2).WithComment("c"))

	got := Merge([]Occurrence{
		{Context: ctx},
		{Context: ctx},
		{Context: ctx, Extra: Highlights{0: {MustSpan(0, 2).WithComment("c")}}},
		{Context: ctx, Extra: Highlights{0: {MustSpan(0, 2).WithComment("other")}}},
	})

	want := []Context{
		Line(1, "text",
			MustSpan(0, 2).WithComment("c"),
			MustSpan(0, 2).WithComment("other"),
		),
	}
	if diff := diffContexts(want, got); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}
}

func TestMergeIdempotence(t *testing.T) {
	t.Parallel()

	occs := []Occurrence{
		{Context: Line(1, "alpha", MustSpan(0, 1))},
		{Context: Line(2, "beta").WithFile("f"), Extra: Highlights{0: {MustSpan(1, 3)}}},
		{Context: Line(1, "alpha", MustSpan(2, 4))},
	}

	once := Merge(occs)
	again := make([]Occurrence, 0, len(once)*2)
	for range 2 {
		for _, ctx := range once {
			again = append(again, Occurrence{Context: ctx})
		}
	}

	if diff := diffContexts(once, Merge(again)); diff != "" {
		t.Fatalf("merge is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestMergeInputsUntouched(t *testing.T) {
	t.Parallel()

	ctx := Line(5, "some line", MustSpan(0, 4))
	Merge([]Occurrence{
		{Context: ctx},
		{Context: ctx, Extra: Highlights{0: {MustSpan(5, 9)}}},
	})

	assert.Equal(t, []Span{MustSpan(0, 4)}, ctx.Highlights()[0])
}

func TestMergeEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Merge(nil))
}
