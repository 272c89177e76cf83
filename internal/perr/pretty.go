// Package perr pretty-prints DirEntry trees and error chains for the
// cmd/pwalk -debug flag.
package perr

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"

	"github.com/go-pwalk/pwalk"
)

var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DumpEntry renders a single DirEntry for -debug output.
func DumpEntry[C any](e pwalk.DirEntry[C]) string {
	return strings.TrimSpace(dumpConfig.Sdump(struct {
		Depth    int
		Path     string
		FileType pwalk.FileType
	}{e.Depth, e.Path(), e.FileType}))
}

// DumpError renders an error chain (PathError/LoopError/BusyError,
// or any wrapped cause) for -debug output.
func DumpError(err error) string {
	return fmt.Sprintf("%# v", pretty.Formatter(err))
}
