// Copyright (c) 2024 The Crate Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"sync/atomic"

	"github.com/codevlabs/crate/search"
)

// State is the collector's mutable scan state. killed is the only field
// written from outside the scan goroutine; it is an atomic.Bool so Kill
// can be called concurrently and idempotently while the scan observes it
// with at-least-eventual visibility.
type State struct {
	killed atomic.Bool

	rowCount       int
	producedRows   bool
	failed         bool
	currentSegment search.Segment
	visitorEnabled bool
}

// Kill sets killed to true. Idempotent and safe to call from any
// goroutine.
func (s *State) Kill() { s.killed.Store(true) }

// Killed reports the current kill flag.
func (s *State) Killed() bool { return s.killed.Load() }

// RowCount is the number of rows delivered so far.
func (s *State) RowCount() int { return s.rowCount }

// ProducedRows reports whether any row has been delivered.
func (s *State) ProducedRows() bool { return s.producedRows }

// Failed reports whether the scan took the error path, distinguishing it
// from the early-stop path.
func (s *State) Failed() bool { return s.failed }

// CurrentSegment is the last segment handed to the collector.
func (s *State) CurrentSegment() search.Segment { return s.currentSegment }
