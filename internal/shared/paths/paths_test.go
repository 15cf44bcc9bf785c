package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "absolute path", path: "/tmp/file.txt", wantErr: false},
		{name: "root", path: "/", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "relative", path: "tmp/file.txt", wantErr: true},
		{name: "dot relative", path: "./file.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "deep path",
			path: "/tmp/x/y/z",
			want: []string{"/tmp", "/tmp/x", "/tmp/x/y", "/tmp/x/y/z"},
		},
		{
			name: "single segment",
			path: "/tmp",
			want: []string{"/tmp"},
		},
		{
			name: "root",
			path: "/",
			want: nil,
		},
		{
			name: "trailing slash",
			path: "/tmp/x/",
			want: []string{"/tmp", "/tmp/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segments(tt.path))
		})
	}
}

func TestJoinUnder(t *testing.T) {
	assert.Equal(t, "/dest/file.txt", JoinUnder("/dest", "/src/file.txt"))
	assert.Equal(t, "/dest/sub", JoinUnder("/dest", "/src/sub"))
}

func TestIsWithin(t *testing.T) {
	assert.True(t, IsWithin("/a/b", "/a/b/c"))
	assert.True(t, IsWithin("/a/b", "/a/b/c/d.txt"))
	assert.False(t, IsWithin("/a/b", "/a/b"))
	assert.False(t, IsWithin("/a/b", "/a/bc"))
	assert.False(t, IsWithin("/a/b", "/a"))
}

func TestRebase(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		oldPre string
		newPre string
		want   string
		ok     bool
	}{
		{name: "exact match", path: "/a/b", oldPre: "/a/b", newPre: "/x/y", want: "/x/y", ok: true},
		{name: "descendant", path: "/a/b/c/d.txt", oldPre: "/a/b", newPre: "/x", want: "/x/c/d.txt", ok: true},
		{name: "sibling prefix", path: "/a/bc", oldPre: "/a/b", newPre: "/x", want: "/a/bc", ok: false},
		{name: "unrelated", path: "/q/r", oldPre: "/a/b", newPre: "/x", want: "/q/r", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Rebase(tt.path, tt.oldPre, tt.newPre)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
