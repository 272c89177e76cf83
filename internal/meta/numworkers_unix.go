//go:build unix

package meta

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// DefaultNumWorkers picks enough parallelism to hide read_dir/stat
// latency, clamped against both a fixed ceiling and the process's
// open-file-descriptor budget so a deep, wide walk can't exhaust
// RLIMIT_NOFILE.
func DefaultNumWorkers() int {
	n := runtime.GOMAXPROCS(-1)
	if n < 4 {
		n = 4
	}
	if n > 32 {
		n = 32
	}

	var rlimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlimit); err == nil {
		if budget := int(rlimit.Cur) / 4; budget > 0 && budget < n {
			n = budget
		}
	}
	return n
}
