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

// Package worker implements a small bounded worker pool: a fixed number of
// workers drain a work channel, a single coordinator goroutine collects
// their results in completion order and hands them to a caller-supplied
// handler. Workers share nothing mutable; aggregation always happens on the
// one coordinator goroutine.
package worker

import "golang.org/x/sync/errgroup"

// Pool runs fn over every item in items using up to workers concurrent
// goroutines, and calls handle with each result as it completes (in
// completion order, which is non-deterministic run to run). handle is
// always invoked on the calling goroutine, never concurrently.
func Pool[T, R any](items []T, workers int, fn func(T) R, handle func(R)) {
	if workers < 1 {
		workers = 1
	}
	if len(items) == 0 {
		return
	}
	if workers > len(items) {
		workers = len(items)
	}

	work := make(chan T)
	results := make(chan R)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for item := range work {
				results <- fn(item)
			}
			return nil
		})
	}

	go func() {
		for _, item := range items {
			work <- item
		}
		close(work)
		g.Wait()
		close(results)
	}()

	for r := range results {
		handle(r)
	}
}
