/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2023 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package natives

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/flslang/fls/pkg/value"
	"github.com/flslang/fls/pkg/vm"
)

// analyzeTotals is the one file/line/byte accumulator that every worker in
// the pool adds into directly, protected by its mutex; there are no
// per-worker partial totals to sum afterwards.
type analyzeTotals struct {
	mu    sync.Mutex
	files int64
	lines int64
	chars int64
}

func (t *analyzeTotals) add(lines, chars int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.files++
	t.lines += lines
	t.chars += chars
}

// registerAnalyze installs `analyze`, grounded on src/vm.c's analyzeNative:
// a parallel line/byte counter over a directory tree, restricted to a set
// of extensions and skipping excluded subtrees. The reference interpreter
// hand-rolls a pthread task queue and worker pool; here an errgroup.Group
// bounded by SetLimit plays the same role, fed by a directory walk that
// submits one task per matching file.
func registerAnalyze(v *vm.VM) {
	def(v, "analyze", func(argc int, args []value.Value) (value.Value, bool) {
		if argc < 2 || argc > 4 {
			return fault("analyze() takes 2-4 arguments (root_dir, extensions, [log_level], [excluded_dirs]).")
		}
		if !args[0].IsString() {
			return fault("First argument must be a string (root_dir).")
		}
		extensions, ok := asList(args[1])
		if !ok {
			return fault("Second argument must be a list (extensions_list).")
		}

		logVerbose, logMinimal := false, true
		if argc >= 3 {
			if !args[2].IsString() {
				return fault("Third argument (log_level) must be a string.")
			}
			switch args[2].AsString().Chars {
			case "none":
				logMinimal = false
			case "minimal":
				// default
			case "verbose":
				logVerbose = true
			default:
				return fault("Invalid log level. Use 'none', 'minimal', or 'verbose'.")
			}
		}

		var excluded []string
		if argc == 4 {
			excludedList, ok := asList(args[3])
			if !ok {
				return fault("Fourth argument (excluded_dirs) must be a list.")
			}
			for _, e := range excludedList.Items {
				if e.IsString() {
					excluded = append(excluded, e.AsString().Chars)
				}
			}
		}

		if v.Preflight() {
			result := v.NewList()
			result.Append(value.Number(0))
			result.Append(value.Number(0))
			result.Append(value.Number(0))
			return value.FromObject(result), true
		}

		exts := make([]string, 0, len(extensions.Items))
		for _, e := range extensions.Items {
			if e.IsString() {
				exts = append(exts, e.AsString().Chars)
			}
		}

		totals := &analyzeTotals{}
		var logMu sync.Mutex
		g := new(errgroup.Group)
		limit := runtime.NumCPU()
		if limit < 1 {
			limit = 1
		}
		g.SetLimit(limit)

		root := args[0].AsString().Chars
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if isExcluded(path, excluded) {
					if logMinimal {
						logMu.Lock()
						fmt.Fprintf(v.Out(), "   -> Skipping excluded directory: %s\n", path)
						logMu.Unlock()
					}
					return filepath.SkipDir
				}
				if logMinimal {
					logMu.Lock()
					fmt.Fprintf(v.Out(), "-> Scanning %s...\n", path)
					logMu.Unlock()
				}
				return nil
			}
			if !hasValidExtension(path, exts) {
				return nil
			}
			g.Go(func() error {
				if logVerbose {
					logMu.Lock()
					fmt.Fprintf(v.Out(), "    -> Analyzing: %s\n", path)
					logMu.Unlock()
				}
				lines, chars, ok := analyzeFile(path)
				if ok {
					totals.add(lines, chars)
				}
				return nil
			})
			return nil
		})
		_ = g.Wait()

		result := v.NewList()
		result.Append(value.Number(float64(totals.files)))
		result.Append(value.Number(float64(totals.lines)))
		result.Append(value.Number(float64(totals.chars)))
		return value.FromObject(result), true
	})
}

func isExcluded(path string, excluded []string) bool {
	for _, ex := range excluded {
		if path == ex || strings.HasPrefix(path, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func hasValidExtension(filename string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(filename)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// analyzeFile counts lines and bytes in path, matching
// analyzeFileForWorker's "last line without a trailing newline still
// counts, a final blank line after a trailing newline doesn't" rule.
func analyzeFile(path string) (lines, chars int64, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var lastByte byte
	sawAny := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			break
		}
		sawAny = true
		chars++
		if b == '\n' {
			lines++
		}
		lastByte = b
	}
	if sawAny && lastByte != '\n' {
		lines++
	}
	return lines, chars, true
}
