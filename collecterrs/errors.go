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

// Package collecterrs defines the error kinds a shard scan can terminate
// with. An error raised while scanning reaches the downstream sink's Fail
// method as one of these; an error returned by the shard context's
// Acquire, Release or Close is passed to Fail as returned. EarlyStop is
// not among them because it is not an error, see search.ControlSignal.
package collecterrs

import "fmt"

// Cancelled is returned when the scan observes the kill flag set mid-scan.
// It is terminal: no further row is delivered and finish() is not called.
var Cancelled = fmt.Errorf("collector: cancelled")

// BreakerTripped is returned when the memory-accounting context reports
// tripped() before a row is delivered.
type BreakerTripped struct {
	ContextID string
	Limit     int64
}

func (e *BreakerTripped) Error() string {
	return fmt.Sprintf("collector: memory breaker tripped for context %q (limit %d)", e.ContextID, e.Limit)
}

// IndexError wraps a failure surfaced by the searcher or a stored-field
// fetch.
type IndexError struct {
	Err error
}

func (e *IndexError) Error() string { return fmt.Sprintf("collector: index error: %v", e.Err) }
func (e *IndexError) Unwrap() error { return e.Err }

// DownstreamError wraps a failure raised by the downstream sink's
// DeliverRow.
type DownstreamError struct {
	Err error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("collector: downstream error: %v", e.Err)
}
func (e *DownstreamError) Unwrap() error { return e.Err }
