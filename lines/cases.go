package lines

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Case is one input file paired with the file holding its expected lengths.
// Pairs are found by name: "input3" goes with "output3".
type Case struct {
	Name     string
	Input    string
	Expected string
}

// CaseResult is the outcome of checking one [Case]. Err is nil when the case
// passed, a [*MismatchError] when the lengths differ, and any other error when
// the case could not be checked at all.
type CaseResult struct {
	Case  Case
	Stats Stats
	Err   error
}

// LoadCases lists the input/output pairs in dir, sorted by input name. Inputs
// without a matching output are skipped.
func LoadCases(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading cases: %w", err)
	}
	files := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files[e.Name()] = true
		}
	}
	var cases []Case
	for name := range files {
		if !strings.Contains(name, "input") {
			continue
		}
		out := strings.Replace(name, "input", "output", 1)
		if !files[out] {
			continue
		}
		cases = append(cases, Case{
			Name:     name,
			Input:    filepath.Join(dir, name),
			Expected: filepath.Join(dir, out),
		})
	}
	slices.SortFunc(cases, func(a, b Case) int {
		return strings.Compare(a.Name, b.Name)
	})
	return cases, nil
}

// CheckDir runs [Reporter.Check] on every case in dir, one after another. The
// error is only for failing to list the cases; per-case failures are in the
// results.
func (r *Reporter) CheckDir(dir string) ([]CaseResult, error) {
	cases, err := LoadCases(dir)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no input/output pairs in %q", dir)
	}
	results := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		stats, err := r.checkCase(c)
		if err != nil {
			r.log.Info("case failed", "case", c.Name, "err", err)
		}
		results = append(results, CaseResult{c, stats, err})
	}
	return results, nil
}

func (r *Reporter) checkCase(c Case) (Stats, error) {
	in, err := os.Open(c.Input)
	if err != nil {
		return Stats{}, err
	}
	defer in.Close() //nolint:errcheck
	expected, err := os.Open(c.Expected)
	if err != nil {
		return Stats{}, err
	}
	defer expected.Close() //nolint:errcheck
	return r.Check(in, expected)
}
