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

// Package corpora runs file-system test corpora: table-driven tests whose
// table is a directory of test-case files, each with golden output files
// next to it.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test corpus: a directory of case files plus the golden
// outputs each case is expected to produce.
type Corpus struct {
	// The root of the corpus directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob of test names whose golden
	// outputs should be rewritten instead of compared.
	Refresh string

	// The file extension (without a dot) of files that define a test case,
	// e.g. "yaml".
	Extension string

	// The outputs each test case produces. A missing golden file is treated
	// as an expected empty output.
	Outputs []Output

	// Test runs one case and returns its outputs, one per element of
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output names one golden output of a test case. Its file is the case file's
// name suffixed with "." and Extension, so with a case extension of "yaml"
// and an output extension of "plain", case foo.yaml is compared against
// foo.yaml.plain.
type Output struct {
	Extension string

	// Compare compares a rendered output against the golden file. May be
	// nil, in which case the values are compared byte for byte with a
	// unified diff on mismatch.
	Compare Compare
}

// Compare is a comparison function between strings. It returns an empty
// string when the values match and an error message otherwise.
type Compare func(got, want string) string

// Run discovers and executes every case under the corpus root as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking corpus root:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in $%s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		// A refreshed run must not pass, so stale goldens cannot sneak
		// through CI.
		t.Logf("corpora: refreshing golden outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, casePath := range cases {
		name, _ := filepath.Rel(testDir, casePath)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("corpora: error while loading case file %q: %v", casePath, err)
			}

			results := c.Test(t, name, string(text))
			refreshing, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				goldenPath := fmt.Sprint(casePath, ".", output.Extension)
				if refreshing {
					c.refresh(t, goldenPath, results[i])
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading golden file %q: %v", goldenPath, err)
					continue
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = diffCompare
				}
				if msg := cmp(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", goldenPath, msg)
				}
			}
		})
	}
}

func (c Corpus) refresh(t *testing.T, goldenPath, result string) {
	if result == "" {
		err := os.Remove(goldenPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting golden file %q: %v", goldenPath, err)
		}
		return
	}
	if err := os.WriteFile(goldenPath, []byte(result), 0o660); err != nil {
		t.Errorf("corpora: error while writing golden file %q: %v", goldenPath, err)
	}
}

func diffCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize added and removed lines so the diff is easier to read.
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		if strings.HasPrefix(s, "+") {
			lines[i] = "\033[1;92m" + s + "\033[0m"
		} else if strings.HasPrefix(s, "-") {
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
