// Package meta implements the single-entry metadata collaborators:
// file-type classification, symlink resolution for the
// follow_links feature, and the platform-tuned default worker count.
package meta

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileType classifies a directory entry by its kind.
type FileType int

const (
	File FileType = iota
	Directory
	Symlink
	Other
)

func (t FileType) String() string {
	switch t {
	case File:
		return "file"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	default:
		return "other"
	}
}

// ClassifyMode maps a raw fs.FileMode to a FileType.
func ClassifyMode(mode fs.FileMode) FileType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode.IsDir():
		return Directory
	case mode.IsRegular():
		return File
	default:
		return Other
	}
}

// ResolveSymlink follows the symlink at path through its whole chain
// of links, returning the final target's classified type, its fully
// resolved real path (used for
// ancestor-chain cycle detection), and the target's FileInfo.
func ResolveSymlink(path string) (FileType, string, fs.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Other, "", nil, err
	}
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return Other, "", nil, err
	}
	return ClassifyMode(fi.Mode()), real, fi, nil
}

// JoinPath builds a child path, special-casing the "/" root so the
// result isn't doubled up.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.PathSeparator == '/' && dir == "/" {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
