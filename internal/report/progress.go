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

package report

import (
	"fmt"
	"io"
	"time"
)

// Progress reports "[processed/total] pct% elapsed Ns" lines at roughly 5%
// intervals, matching the original script's `report_every = max(1, total //
// 20)` cadence.
type Progress struct {
	out       io.Writer
	total     int
	every     int
	start     time.Time
	processed int
}

// NewProgress creates a Progress reporter for total items, writing to out.
func NewProgress(out io.Writer, total int) *Progress {
	every := total / 20
	if every < 1 {
		every = 1
	}
	return &Progress{out: out, total: total, every: every, start: time.Now()}
}

// Advance records n more completed items and, if this crosses a reporting
// boundary (or all items are done), prints a progress line.
func (p *Progress) Advance(n int) {
	p.processed += n
	if p.processed%p.every == 0 || p.processed == p.total {
		pct := 100 * float64(p.processed) / float64(p.total)
		elapsed := time.Since(p.start).Seconds()
		fmt.Fprintf(p.out, "[%d/%d] %.1f%% elapsed %.1fs\n", p.processed, p.total, pct, elapsed)
	}
}
