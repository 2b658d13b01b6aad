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

// Package shardctx defines the shard context and searcher-stage
// contracts the lifecycle guard acquires exactly once and releases
// exactly once per scan, on every exit path.
package shardctx

// Context is exclusively owned by one scan from Acquire to Release.
// Close additionally tears down whatever Acquire opened; Release and
// Close are invoked in that order by the lifecycle guard, after the
// searcher stage has been finished.
type Context interface {
	Acquire() error
	Release() error
	Close() error
	JobSearchContextID() string
}

// Stage marks the searcher entering and leaving a scan phase — "main
// query" for the duration of this collector's scan — so the index
// engine's own instrumentation and internal buffering can bracket it.
type Stage interface {
	EnterMainQuery()
	Finish()
}
