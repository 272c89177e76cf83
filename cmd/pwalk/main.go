// Command pwalk walks one or more directory trees in parallel and
// prints or reports what it finds. See "pwalk --help" for more
// details.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-pwalk/pwalk"
	"github.com/go-pwalk/pwalk/internal/perr"
)

// multiFlag collects a repeatable -exclude flag into a slice.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, `usage: pwalk [flags] root [root...]

pwalk walks each root in parallel, printing one path per line, or
writing a -report for later -diff comparison.
`)
	fs.PrintDefaults()
}

func main() {
	log.SetPrefix("pwalk: ")
	log.SetFlags(0) // don't print timestamps

	fs := flag.NewFlagSet("pwalk", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }

	var (
		sortFlag     = fs.Bool("sort", false, "sort each directory's entries by name")
		skipHidden   = fs.Bool("skip-hidden", true, "skip dot-files")
		followLinks  = fs.Bool("follow-links", false, "follow symlinks, detecting cycles")
		minDepth     = fs.Int("min-depth", 0, "suppress output above this depth")
		maxDepth     = fs.Int("max-depth", 0, "do not descend past this depth (0 = unbounded)")
		workers      = fs.Int("workers", 0, "worker pool size (0 = default, sized to the host)")
		busyTimeout  = fs.Duration("busy-timeout", time.Second, "pool submission/pull timeout")
		configPath   = fs.String("config", "", "TOML or YAML file of defaults, overridden by flags")
		reportPath   = fs.String("report", "", "write a machine-readable report to this path")
		reportFormat = fs.String("report-format", "", "report format: json or toml (default: by -report extension)")
		debug        = fs.Bool("debug", false, "pretty-print each entry and error to stderr as it's found")
		diffOld      = fs.String("diff", "", "diff this saved report against -diff-new and exit")
		diffNew      = fs.String("diff-new", "", "the newer report to diff against -diff")
	)
	var exclude multiFlag
	fs.Var(&exclude, "exclude", "doublestar glob to prune from the walk (repeatable)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal("Try -help for more information.")
	}

	if *diffOld != "" {
		if *diffNew == "" {
			log.Fatal("-diff requires -diff-new")
		}
		if err := runDiff(*diffOld, *diffNew); err != nil {
			log.Fatal(err)
		}
		return
	}

	roots := fs.Args()
	if len(roots) == 0 {
		usage(fs)
		os.Exit(1)
	}

	var cfg fileConfig
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = *loaded
	}
	opts := resolveOptions(&cfg, *sortFlag, *skipHidden, *followLinks, *minDepth, *maxDepth, *workers, *busyTimeout, exclude)

	var eg errgroup.Group
	for _, root := range roots {
		root := root
		eg.Go(func() error {
			return runRoot(root, opts, *reportPath, *reportFormat, *debug)
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
}

// resolvedOptions is the flag/config-merged set of knobs runRoot needs
// to build a pwalk.Walk call.
type resolvedOptions struct {
	sort        bool
	skipHidden  bool
	followLinks bool
	minDepth    int
	maxDepth    int
	workers     int
	busyTimeout time.Duration
	exclude     []string
}

// resolveOptions merges -config defaults under explicit flags. The
// flag values carry no "was it set" bit, so config decides a knob
// exactly when its flag still holds the flag's default value; a flag
// moved off its default always wins.
func resolveOptions(cfg *fileConfig, sortFlag, skipHidden, followLinks bool, minDepth, maxDepth, workers int, busyTimeout time.Duration, exclude multiFlag) resolvedOptions {
	o := resolvedOptions{
		sort:        sortFlag,
		skipHidden:  skipHidden,
		followLinks: followLinks,
		minDepth:    minDepth,
		maxDepth:    maxDepth,
		workers:     workers,
		busyTimeout: busyTimeout,
		exclude:     exclude,
	}
	if cfg == nil {
		return o
	}
	if cfg.Sort != nil && !sortFlag {
		o.sort = *cfg.Sort
	}
	if cfg.SkipHidden != nil && skipHidden {
		o.skipHidden = *cfg.SkipHidden
	}
	if cfg.FollowLinks != nil && !followLinks {
		o.followLinks = *cfg.FollowLinks
	}
	if cfg.MinDepth != nil && minDepth == 0 {
		o.minDepth = *cfg.MinDepth
	}
	if cfg.MaxDepth != nil && maxDepth == 0 {
		o.maxDepth = *cfg.MaxDepth
	}
	if cfg.Workers != nil && workers == 0 {
		o.workers = *cfg.Workers
	}
	if busyTimeout == time.Second {
		o.busyTimeout = busyTimeoutOf(cfg, busyTimeout)
	}
	if len(cfg.Exclude) > 0 {
		o.exclude = append(o.exclude, cfg.Exclude...)
	}
	return o
}

func buildPool(o resolvedOptions) pwalk.Pool {
	if o.maxDepth != 0 && o.maxDepth < 2 {
		return pwalk.SerialPool()
	}
	if o.workers > 0 {
		return pwalk.ExistingPool(pwalk.NewWorkerPool(o.workers), o.busyTimeout)
	}
	return pwalk.DefaultPoolWith(o.busyTimeout)
}

// runRoot drives one Walk call to completion: it streams results,
// optionally dumping each to stderr via internal/perr, and assembles a
// Report for -report. A terminal BusyError is reported but does not
// fail the whole multi-root run by itself.
func runRoot(root string, o resolvedOptions, reportPath, reportFormat string, debug bool) error {
	opts := []pwalk.Option[struct{}, struct{}]{
		pwalk.Sort[struct{}, struct{}](o.sort),
		pwalk.SkipHidden[struct{}, struct{}](o.skipHidden),
		pwalk.FollowLinks[struct{}, struct{}](o.followLinks),
		pwalk.MinDepth[struct{}, struct{}](o.minDepth),
		pwalk.WithPool[struct{}, struct{}](buildPool(o)),
	}
	if o.maxDepth > 0 {
		opts = append(opts, pwalk.MaxDepth[struct{}, struct{}](o.maxDepth))
	}
	if len(o.exclude) > 0 {
		opts = append(opts, pwalk.ProcessReadDir[struct{}, struct{}](newExcludeFilter(o.exclude)))
	}

	s := pwalk.Walk(root, opts...)
	report := &Report{Root: root}
	for {
		entry, err, ok := s.Next()
		if !ok {
			break
		}
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			if debug {
				fmt.Fprintln(os.Stderr, perr.DumpError(err))
			} else {
				log.Print(err)
			}
			continue
		}
		if debug {
			fmt.Fprintln(os.Stderr, perr.DumpEntry(entry))
		} else {
			fmt.Println(entry.Path())
		}
		report.Entries = append(report.Entries, ReportEntry{
			Path:  entry.Path(),
			Depth: entry.Depth,
			Type:  entry.FileType.String(),
		})
	}

	if reportPath != "" {
		if err := writeReport(reportPath, reportFormat, report); err != nil {
			return err
		}
	}
	return nil
}

func runDiff(oldPath, newPath string) error {
	oldReport, err := readReport(oldPath)
	if err != nil {
		return err
	}
	newReport, err := readReport(newPath)
	if err != nil {
		return err
	}
	out, err := diffReports(oldReport, newReport)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
