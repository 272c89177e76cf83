package core

import (
	"os"
	"path/filepath"

	"github.com/go-pwalk/pwalk/internal/meta"
	"github.com/go-pwalk/pwalk/internal/walkerr"
)

// NewRoot synthesizes the root DirEntry and runs the root's
// "virtual parent" callback invocation. rootState seeds
// the user state seen by that first callback call.
func NewRoot[C any, S any](path string, cfg *Config[C, S], rootState S) *pendingFrame[C, S] {
	fi, err := os.Lstat(path)
	if err != nil {
		return oneResultFrame[C, S](rootState, []Result[C]{
			{Err: walkerr.NewPathError(0, path, err)},
		})
	}

	entry := DirEntry[C]{
		Depth:      0,
		FileName:   filepath.Base(path),
		ParentPath: NewParentPath(filepath.Dir(path)),
		meta:       &metadataCache{},
	}

	typ := meta.ClassifyMode(fi.Mode())
	if typ == Symlink {
		// The root is followed unconditionally so the walk has a
		// concrete starting directory, but FileType still reflects
		// the configured follow_links setting.
		targetType, real, _, rerr := meta.ResolveSymlink(path)
		if rerr != nil {
			return oneResultFrame[C, S](rootState, []Result[C]{
				{Err: walkerr.NewPathError(0, path, rerr)},
			})
		}
		if cfg.FollowLinks {
			entry.FileType = targetType
			entry.FollowLinkAncestors = entry.FollowLinkAncestors.Extend(real)
		} else {
			entry.FileType = Symlink
		}
		if targetType == Directory {
			entry.ReadChildrenPath = path
		}
	} else {
		entry.FileType = typ
		if typ == Directory {
			entry.ReadChildrenPath = path
		}
	}

	batch := ReadDirBatch[C, S]{ReadDirState: rootState, Results: []Result[C]{{Entry: entry}}}
	if cfg.Process != nil {
		// depth == nil marks the root's virtual-parent invocation,
		// distinguishable from every non-root call. The dirPath passed
		// here is the root's parent, not the root itself — this call
		// represents reading the entry for path out of its parent
		// directory, the same shape as every other ProcessReadDir call.
		cfg.Process(nil, filepath.Dir(path), &batch.ReadDirState, &batch)
	}
	return oneResultFrame[C, S](batch.ReadDirState, batch.Results)
}
