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

// Package crate wires a per-shard document collector: given a compiled
// query plan fragment targeting one shard, it streams matching
// documents — optionally sorted and limited — through a downstream row
// consumer, honoring cancellation, memory budgets, and cooperative
// backpressure.
//
// The hard part lives in search/collector; this package is the thin glue
// that turns a ShardScanRequest into a wired search/collector.Collector,
// plus the kill handle and multi-shard fan-out that sit one layer above a
// single scan.
package crate
