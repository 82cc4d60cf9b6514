// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command parsercfc extracts the ordered list of function definitions from
// every *.c file under a directory tree, writing fc.json and null_fc.json.
// It drives the core text-level scanner in cfc/{macro,scan,merge,collector}
// and reconciles each file's result against an external collaborator
// parser binary; if no collaborator binary can be found it exits with
// status 2 before processing any file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cfcscan/parsercfc/cfc/collector"
	"github.com/cfcscan/parsercfc/internal/cliutil"
	"github.com/cfcscan/parsercfc/internal/collab"
	"github.com/cfcscan/parsercfc/internal/report"
	"github.com/cfcscan/parsercfc/internal/walk"
	"github.com/cfcscan/parsercfc/internal/worker"
)

type config struct {
	dir        string
	workers    int
	outputFC   string
	outputNull string
	verbose    bool
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.workers, "w", cliutil.DefaultWorkers(), "number of worker goroutines")
	flag.IntVar(&cfg.workers, "workers", cliutil.DefaultWorkers(), "number of worker goroutines")
	flag.StringVar(&cfg.outputFC, "o-fc", "fc.json", "output path for fc.json")
	flag.StringVar(&cfg.outputNull, "o-null_fc", "null_fc.json", "output path for null_fc.json")
	flag.BoolVar(&cfg.verbose, "v", cliutil.VerboseDefault(), "verbose per-file logging (default from CFC_VERBOSE)")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Println("error: missing required argument: dir")
		os.Exit(2)
	}
	cfg.dir = flag.Arg(0)
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// outcome is one file's processed result, including any error text kept
// only for the terminal summary, never persisted in the JSON output.
type outcome struct {
	path string
	fc   []string
	err  string
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := parseFlags()

	info, err := os.Stat(cfg.dir)
	if err != nil || !info.IsDir() {
		log.Printf("error: dir not found: %s", cfg.dir)
		return 2
	}

	toolRoot, err := cliutil.ToolRoot()
	if err != nil {
		log.Printf("error: could not resolve tool root: %v", err)
		return 2
	}
	parserBin, err := collab.ResolveBinary(toolRoot)
	if err != nil {
		log.Printf("error: %v", err)
		return 2
	}
	client := collab.Client{BinPath: parserBin}

	files, err := walk.FindCFiles(cfg.dir)
	if err != nil {
		log.Printf("error: failed to scan directory: %v", err)
		return 2
	}
	total := len(files)

	fmt.Printf("Scan dir: %s\n", cfg.dir)
	fmt.Printf("Workers: %d\n", cfg.workers)
	fmt.Printf("Found %d .c files\n", total)
	fmt.Printf("Output fc.json: %s\n", cfg.outputFC)
	fmt.Printf("Output null_fc.json: %s\n", cfg.outputNull)

	if total == 0 {
		rep := report.New(nil)
		if err := rep.WriteFC(cfg.outputFC); err != nil {
			log.Printf("error: failed to write %s: %v", cfg.outputFC, err)
			return 2
		}
		if err := rep.WriteNullFC(cfg.outputNull); err != nil {
			log.Printf("error: failed to write %s: %v", cfg.outputNull, err)
			return 2
		}
		fmt.Println("No .c files found, outputs created.")
		return 0
	}

	batchSize := cliutil.ResolveBatchSize(total, cfg.workers)

	var results []collector.FileResult
	var errs []string
	progress := report.NewProgress(os.Stdout, total)

	handle := func(o outcome) {
		results = append(results, collector.FileResult{Path: o.path, FC: o.fc})
		if o.err != "" {
			errs = append(errs, fmt.Sprintf("%s: %s", o.path, o.err))
			if cfg.verbose {
				log.Printf("%s: %s", o.path, o.err)
			}
		}
		progress.Advance(1)
	}

	if batchSize <= 1 {
		worker.Pool(files, cfg.workers, func(path string) outcome {
			return processFile(client, path)
		}, handle)
	} else {
		batches := chunk(files, batchSize)
		worker.Pool(batches, cfg.workers, func(b []string) []outcome {
			return processBatch(client, b)
		}, func(outcomes []outcome) {
			for _, o := range outcomes {
				handle(o)
			}
		})
	}

	rep := report.New(results)
	if err := rep.WriteFC(cfg.outputFC); err != nil {
		log.Printf("error: failed to write %s: %v", cfg.outputFC, err)
		return 2
	}
	if err := rep.WriteNullFC(cfg.outputNull); err != nil {
		log.Printf("error: failed to write %s: %v", cfg.outputNull, err)
		return 2
	}

	totalFunctions := 0
	for _, r := range results {
		totalFunctions += len(r.FC)
	}
	fmt.Println("Done.")
	fmt.Printf("Total files: %d\n", total)
	fmt.Printf("Total functions: %d\n", totalFunctions)
	fmt.Printf("Files with no functions: %d\n", len(rep.NullFC))
	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "Parser errors: %d\n", len(errs))
	}
	return 0
}

// processFile handles a single file in per-file collaborator mode. A
// collaborator failure (spawn, nonzero exit, or invalid output) always
// yields fc = []: there is nothing trustworthy to merge the scan against,
// so the scanner's own candidates are discarded rather than surfaced
// unreconciled. Only when the collaborator succeeds but the local file
// can't be read does fc fall back to the collaborator's own list.
func processFile(client collab.Client, path string) outcome {
	parserNames, perr := client.ParseFile(path)
	var errParts []string
	if perr != nil {
		errParts = append(errParts, perr.Error())
	}

	source, rerr := os.ReadFile(path)
	if rerr != nil {
		errParts = append(errParts, fmt.Sprintf("read error: %v", rerr))
	}

	var fc []string
	switch {
	case perr != nil:
		fc = []string{}
	case rerr != nil:
		fc = parserNames
		if fc == nil {
			fc = []string{}
		}
	default:
		fc = collector.Collect(path, string(source), parserNames).FC
	}
	return outcome{path: path, fc: fc, err: strings.Join(errParts, "; ")}
}

// processBatch handles one chunk of files via the collaborator's batch
// mode. Per path, a batch-wide parse error or a missing entry in the
// collaborator's output both force fc = [] (nothing to merge against),
// the same as a per-file collaborator failure; the collaborator's stderr
// text (if any) is always appended after whichever error applies. A local
// read failure only falls back to the collaborator's own list, since the
// collaborator already succeeded for that path.
func processBatch(client collab.Client, paths []string) []outcome {
	batch := client.ParseBatch(paths)

	out := make([]outcome, 0, len(paths))
	for _, path := range paths {
		names, present := batch.FC[path]
		collaboratorFailed := batch.ParseErr != "" || !present

		var errMsg string
		switch {
		case batch.ParseErr != "":
			errMsg = batch.ParseErr
		case !present:
			errMsg = "missing batch output"
		}
		if batch.StderrMsg != "" {
			if errMsg != "" {
				errMsg = errMsg + "; " + batch.StderrMsg
			} else {
				errMsg = batch.StderrMsg
			}
		}

		source, rerr := os.ReadFile(path)
		if rerr != nil {
			if errMsg != "" {
				errMsg += "; "
			}
			errMsg += fmt.Sprintf("read error: %v", rerr)
		}

		var fc []string
		switch {
		case collaboratorFailed:
			fc = []string{}
		case rerr != nil:
			fc = names
			if fc == nil {
				fc = []string{}
			}
		default:
			fc = collector.Collect(path, string(source), names).FC
		}
		out = append(out, outcome{path: path, fc: fc, err: errMsg})
	}
	return out
}

func chunk(items []string, size int) [][]string {
	var out [][]string
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[i:end])
	}
	return out
}
