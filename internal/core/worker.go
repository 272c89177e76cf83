package core

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-pwalk/pwalk/internal/hidden"
	"github.com/go-pwalk/pwalk/internal/meta"
	"github.com/go-pwalk/pwalk/internal/walkerr"
)

// RunReadDir materializes one ReadDirSpec into a ReadDirBatch. It
// performs no concurrency control of its own — it is meant to be
// called from inside a Pool task.
func RunReadDir[C any, S any](spec ReadDirSpec[S], cfg *Config[C, S]) ReadDirBatch[C, S] {
	if spec.Depth+1 > cfg.MaxDepth {
		// Parallelism is useless below the leaves the consumer will
		// accept, and opening a directory has a cost.
		return ReadDirBatch[C, S]{ReadDirState: spec.ReadDirState}
	}

	ancestors := spec.FollowLinkAncestors
	if cfg.FollowLinks {
		// The chain holds real paths, the same form ResolveSymlink
		// reports for a link target.
		real := spec.Path
		if r, rerr := filepath.EvalSymlinks(spec.Path); rerr == nil {
			real = r
		}
		ancestors = ancestors.Extend(real)
	}

	rawEntries, err := os.ReadDir(spec.Path)
	if err != nil {
		return ReadDirBatch[C, S]{
			ReadDirState: spec.ReadDirState,
			Results: []Result[C]{
				{Err: walkerr.NewPathError(spec.Depth, spec.Path, err)},
			},
		}
	}

	parent := NewParentPath(spec.Path)
	batch := ReadDirBatch[C, S]{ReadDirState: spec.ReadDirState}

	for _, raw := range rawEntries {
		name := raw.Name()
		if cfg.SkipHidden && hidden.IsHidden(name) {
			continue
		}

		childPath := meta.JoinPath(spec.Path, name)
		entry := DirEntry[C]{
			Depth:               spec.Depth + 1,
			FileName:            name,
			ParentPath:          parent,
			FileType:            meta.ClassifyMode(raw.Type()),
			FollowLinkAncestors: ancestors,
			meta:                &metadataCache{},
		}

		if entry.FileType == Directory {
			entry.ReadChildrenPath = childPath
		}

		if entry.FileType == Symlink && cfg.FollowLinks {
			targetType, real, _, rerr := meta.ResolveSymlink(childPath)
			if rerr != nil {
				batch.Results = append(batch.Results, Result[C]{
					Err: walkerr.NewPathError(entry.Depth, childPath, rerr),
				})
				continue
			}
			entry.FileType = targetType
			if targetType == Directory {
				if ancestors.Contains(real) {
					batch.Results = append(batch.Results, Result[C]{
						Err: walkerr.NewLoopError(childPath, real),
					})
					continue
				}
				entry.ReadChildrenPath = childPath
			}
		}

		batch.Results = append(batch.Results, Result[C]{Entry: entry})
	}

	if cfg.Sort {
		sort.SliceStable(batch.Results, func(i, j int) bool {
			ri, rj := batch.Results[i], batch.Results[j]
			switch {
			case ri.Err == nil && rj.Err == nil:
				return ri.Entry.FileName < rj.Entry.FileName
			case ri.Err == nil && rj.Err != nil:
				return true
			case ri.Err != nil && rj.Err == nil:
				return false
			default:
				// Both Err: preserve enumeration order.
				return false
			}
		})
	}

	if cfg.Process != nil {
		depth := spec.Depth
		cfg.Process(&depth, spec.Path, &batch.ReadDirState, &batch)
	}

	return batch
}
