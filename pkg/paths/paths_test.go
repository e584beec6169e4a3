package paths

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/instl/pkg/errors"
)

func TestParent(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "no directory component", path: "dst.txt", want: ""},
		{name: "relative parent", path: "a/b", want: "a"},
		{name: "dot-relative parent", path: "./a/b", want: "./a"},
		{name: "root child", path: "/x", want: "/"},
		{name: "absolute nested", path: "/a/b/c", want: "/a/b"},
		{name: "trailing segment only", path: "out/dst.txt", want: "out"},
		{name: "empty path", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parent(tt.path))
		})
	}
}

func TestStaging(t *testing.T) {
	assert.Equal(t, "dst.txt.tmp", Staging("dst.txt"))
	assert.Equal(t, "/a/b/c.tmp", Staging("/a/b/c"))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    fs.FileMode
		wantErr bool
	}{
		{name: "typical mode", input: "644", want: 0o644},
		{name: "zero", input: "0", want: 0},
		{name: "full mode with setuid bits", input: "7777", want: 0o7777},
		{name: "executable mode", input: "755", want: 0o755},
		{name: "leading zero", input: "0644", want: 0o644},
		{name: "non-octal digits", input: "999", wantErr: true},
		{name: "out of range", input: "77777", wantErr: true},
		{name: "not a number", input: "rw-r--r--", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-644", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
