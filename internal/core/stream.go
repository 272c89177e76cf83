package core

// pendingFrame is one suspended level of the depth-first cursor:
// either a batch already drained from the bus, or a placeholder for a
// spec already Submitted whose batch hasn't arrived yet.
type pendingFrame[C any, S any] struct {
	resolved bool
	terminal bool // true once a busy error has been loaded into this frame
	state    S
	results  []Result[C]
	idx      int
}

func oneResultFrame[C any, S any](state S, results []Result[C]) *pendingFrame[C, S] {
	return &pendingFrame[C, S]{resolved: true, state: state, results: results}
}

// Stream is a lazy, single-consumer, non-restartable sequence of
// (DirEntry, error) results in strict depth-first pre-order.
type Stream[C any, S any] struct {
	bus  *Bus[C, S]
	cfg  *Config[C, S]
	stack []*pendingFrame[C, S]
	done bool
}

// NewStream wires a bus to an already-resolved root frame.
func NewStream[C any, S any](bus *Bus[C, S], cfg *Config[C, S], root *pendingFrame[C, S]) *Stream[C, S] {
	return &Stream[C, S]{bus: bus, cfg: cfg, stack: []*pendingFrame[C, S]{root}}
}

// Next pulls, expands and filters until it has one entry to yield, or
// the stream is exhausted. ok is false at end of stream and on every
// later call.
func (s *Stream[C, S]) Next() (DirEntry[C], error, bool) {
	for {
		if s.done {
			return DirEntry[C]{}, nil, false
		}
		if len(s.stack) == 0 {
			s.done = true
			return DirEntry[C]{}, nil, false
		}

		top := s.stack[len(s.stack)-1]
		if !top.resolved {
			batch, err, has := s.bus.Pull()
			if !has {
				s.stack = s.stack[:len(s.stack)-1]
				continue
			}
			top.resolved = true
			top.state = batch.ReadDirState
			if err != nil {
				top.results = []Result[C]{{Err: err}}
				top.terminal = true
			} else {
				top.results = batch.Results
			}
		}

		if top.idx >= len(top.results) {
			s.stack = s.stack[:len(s.stack)-1]
			if top.terminal {
				s.done = true
			}
			continue
		}

		res := top.results[top.idx]
		top.idx++

		if res.Err != nil {
			if top.terminal {
				s.done = true
			}
			return DirEntry[C]{}, res.Err, true
		}

		entry := res.Entry
		if entry.ReadChildrenPath != "" {
			spec := ReadDirSpec[S]{
				Path:                entry.ReadChildrenPath,
				Depth:               entry.Depth,
				ReadDirState:        top.state, // cloned by value for this child
				FollowLinkAncestors: entry.FollowLinkAncestors,
			}
			s.bus.Submit(spec)
			s.stack = append(s.stack, &pendingFrame[C, S]{})
		}

		if entry.Depth < s.cfg.MinDepth {
			continue
		}
		return entry, nil, true
	}
}
