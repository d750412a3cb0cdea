package lines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCases(t *testing.T) {
	t.Parallel()
	cases, err := LoadCases("../testdata/cases")
	require.NoError(t, err)
	names := make([]string, 0, len(cases))
	for _, c := range cases {
		names = append(names, c.Name)
	}
	// input9 has no output, README is not an input
	assert.Equal(t, []string{"input1", "input2", "input3"}, names)
	assert.Equal(t, filepath.Join("../testdata/cases", "output2"), cases[1].Expected)
}

func TestLoadCases_missingDir(t *testing.T) {
	t.Parallel()
	_, err := LoadCases(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "reading cases")
}

func writeCases(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}
	return dir
}

func TestReporter_CheckDir(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		files   map[string]string
		policy  Policy
		want    map[string]bool // case name -> passed
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "all pass",
			files: map[string]string{
				"input1": "abc\n", "output1": "3\n",
				"input2": "hello\nhi", "output2": "5\n2\n",
			},
			want:    map[string]bool{"input1": true, "input2": true},
			wantErr: assert.NoError,
		},
		{
			name: "one mismatch",
			files: map[string]string{
				"input1": "abc\n", "output1": "3\n",
				"input2": "abc\n", "output2": "4\n",
			},
			want:    map[string]bool{"input1": true, "input2": false},
			wantErr: assert.NoError,
		},
		{
			name: "first input replaced only",
			files: map[string]string{
				"input.input": "ab\n", "output.input": "2\n",
			},
			want:    map[string]bool{"input.input": true},
			wantErr: assert.NoError,
		},
		{
			name: "trim policy applies to every case",
			files: map[string]string{
				"a.input": "  x  \n", "a.output": "1\n",
			},
			policy:  PolicyTrim,
			want:    map[string]bool{"a.input": true},
			wantErr: assert.NoError,
		},
		{
			name: "invalid encoding fails the case",
			files: map[string]string{
				"input1": "\xff\n", "output1": "1\n",
			},
			want:    map[string]bool{"input1": false},
			wantErr: assert.NoError,
		},
		{
			name:  "no pairs",
			files: map[string]string{"input1": "abc\n"},
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "no input/output pairs", msgAndArgs...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := writeCases(t, tt.files)
			results, err := New(WithPolicy(tt.policy)).CheckDir(dir)
			if !tt.wantErr(t, err) || err != nil {
				return
			}
			got := make(map[string]bool, len(results))
			for _, res := range results {
				got[res.Case.Name] = res.Err == nil
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_CheckDir_mismatchDetails(t *testing.T) {
	t.Parallel()
	dir := writeCases(t, map[string]string{
		"input1": "abc\nhello\n", "output1": "3\n4\n",
	})
	results, err := New().CheckDir(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	var me *MismatchError
	require.ErrorAs(t, results[0].Err, &me)
	assert.Equal(t, 2, me.Line)
	assert.Equal(t, 2, results[0].Stats.Lines)
}

func TestReporter_CheckDir_sampleCases(t *testing.T) {
	t.Parallel()
	results, err := New().CheckDir("../testdata/cases")
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.NoError(t, res.Err, res.Case.Name)
	}
}
