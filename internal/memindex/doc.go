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

// Package memindex is a minimal in-memory reference implementation of
// search.Searcher. A real inverted-index engine's on-disk segments, term
// dictionaries, and scoring internals live elsewhere; memindex exists
// only so the collector's contracts have a concrete, testable
// implementation to drive, and so cmd/shardscan has something to demo
// against.
package memindex
