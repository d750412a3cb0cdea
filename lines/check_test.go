package lines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Check(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       string
		expected string
		policy   Policy
		wantErr  assert.ErrorAssertionFunc
		wantLine int
	}{
		{
			name:     "pass",
			in:       "hello\nhi\n",
			expected: "5\n2\n",
		},
		{
			name:     "pass crlf expected",
			in:       "hello\nhi",
			expected: "5\r\n2\r\n",
		},
		{
			name:     "pass empty",
			in:       "",
			expected: "",
		},
		{
			name:     "pass trim",
			in:       "  hi  \n",
			expected: "2\n",
			policy:   PolicyTrim,
		},
		{
			name:     "wrong value",
			in:       "hi\nhello\n",
			expected: "2\n4\n",
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.EqualError(t, err, `mismatch at line 2: got "5", expected "4"`, msgAndArgs...)
			},
			wantLine: 2,
		},
		{
			name:     "extra output",
			in:       "a\nb\n",
			expected: "1\n",
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "expected end of output", msgAndArgs...)
			},
			wantLine: 2,
		},
		{
			name:     "missing output",
			in:       "a\n",
			expected: "1\n7\n",
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, `got end of output, expected "7"`, msgAndArgs...)
			},
			wantLine: 2,
		},
		{
			name:     "whitespace in expected is significant",
			in:       "abc\n",
			expected: " 3\n",
			wantErr: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "mismatch at line 1", msgAndArgs...)
			},
			wantLine: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := New(WithPolicy(tt.policy))
			_, err := r.Check(strings.NewReader(tt.in), strings.NewReader(tt.expected))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if tt.wantErr(t, err) {
				var me *MismatchError
				require.ErrorAs(t, err, &me)
				assert.Equal(t, tt.wantLine, me.Line)
			}
		})
	}
}

func TestReporter_Check_invalidInput(t *testing.T) {
	t.Parallel()
	_, err := New().Check(strings.NewReader("\xff\n"), strings.NewReader("1\n"))
	var iee *InvalidEncodingError
	require.ErrorAs(t, err, &iee)
	assert.Equal(t, 1, iee.Line)
}
