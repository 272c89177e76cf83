// Package pwalk is a parallel, streaming, recursive directory walker.
// read_dir and stat work is fanned out across a worker pool while the
// single consumer observes entries in strict depth-first pre-order,
// with per-directory sort/filter/prune/state handled by an optional
// callback applied to each directory's children as a batch.
//
// The zero-value-friendly entry point is Walk, which defaults both the
// per-entry client state and the inherited read_dir state to
// struct{}:
//
//	s := pwalk.Walk("/some/dir", pwalk.Sort[struct{}, struct{}](true))
//	for {
//		entry, err, ok := s.Next()
//		if !ok {
//			break
//		}
//		if err != nil {
//			log.Print(err)
//			continue
//		}
//		fmt.Println(entry.Path())
//	}
//
// New is the generic form, letting callers thread their own
// per-entry annotation type and their own inherited per-directory
// state type through ProcessReadDir.
package pwalk
