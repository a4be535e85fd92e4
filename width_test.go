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

	"github.com/stretchr/testify/assert"
)

func TestCellCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cellCount(""))
	assert.Equal(t, 5, cellCount("hello"))
	assert.Equal(t, 4, cellCount("あい"))
	// Control characters render as one-cell substitutes.
	assert.Equal(t, 3, cellCount("a\tb"))
	assert.Equal(t, 1, cellCount("\x7f"))
}

func TestCellsBefore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cellsBefore("hello", 0))
	assert.Equal(t, 3, cellsBefore("hello", 3))
	assert.Equal(t, 5, cellsBefore("hello", 99))
	assert.Equal(t, 3, cellsBefore("aあい", 2))
}

func TestCellSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, cellSpan("hello", 1, 3))
	assert.Equal(t, 4, cellSpan("aあい", 1, 3))
	assert.Equal(t, 0, cellSpan("hello", 4, 4))
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, digits(0))
	assert.Equal(t, 1, digits(9))
	assert.Equal(t, 2, digits(10))
	assert.Equal(t, 3, digits(100))
}
