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

// Package breaker defines the memory-accounting context the collector
// polls once per document: a cooperative gate that trips when cumulative
// allocation for a scan crosses a threshold.
package breaker

// Context is the memory-accounting context the collector consults before
// delivering each document. Tripped, ContextID, and Limit must be safe to
// call from the scan goroutine without blocking.
type Context interface {
	Tripped() bool
	ContextID() string
	Limit() int64
}

// Noop never trips; useful for scans that run without a memory budget.
type Noop struct {
	ID  string
	Max int64
}

func (n Noop) Tripped() bool    { return false }
func (n Noop) ContextID() string { return n.ID }
func (n Noop) Limit() int64      { return n.Max }
