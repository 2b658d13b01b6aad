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

// Package collector orchestrates one shard scan: it wires column
// expressions to the searcher, enforces the limit, checks the kill flag
// and memory breaker on every document, forwards rows downstream, and
// guarantees the shard context is released on every exit path. It
// implements both the unordered collection path and the ordered,
// paginated path behind one entry point, Collector.DoCollect.
package collector

// DefaultPageSize is used when a request does not specify one.
const DefaultPageSize = 1000
