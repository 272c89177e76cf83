package meta

import (
	"io/fs"
	"testing"
)

func TestClassifyMode(t *testing.T) {
	cases := []struct {
		mode fs.FileMode
		want FileType
	}{
		{0, File},
		{fs.ModeDir, Directory},
		{fs.ModeSymlink, Symlink},
		{fs.ModeNamedPipe, Other},
	}
	for _, c := range cases {
		if got := ClassifyMode(c.mode); got != c.want {
			t.Errorf("ClassifyMode(%v) = %v, want %v", c.mode, got, c.want)
		}
	}
}

func TestJoinPath(t *testing.T) {
	cases := []struct{ dir, name, want string }{
		{"", "a", "a"},
		{"/", "a", "/a"},
		{"/tmp", "a", "/tmp/a"},
	}
	for _, c := range cases {
		if got := JoinPath(c.dir, c.name); got != c.want {
			t.Errorf("JoinPath(%q, %q) = %q, want %q", c.dir, c.name, got, c.want)
		}
	}
}

func TestFileTypeString(t *testing.T) {
	cases := map[FileType]string{
		File:      "file",
		Directory: "directory",
		Symlink:   "symlink",
		Other:     "other",
	}
	for ft, want := range cases {
		if got := ft.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", ft, got, want)
		}
	}
}
