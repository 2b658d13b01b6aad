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

// Package search defines the contracts the collector consumes from the
// inverted-index engine: an opaque query, a searcher capable of unordered
// scan and sorted top-k/search-after retrieval, and the sort-order and
// value types used to compare and continue sorted streams.
//
// The index engine itself — document-id enumeration, scoring, term
// dictionaries, on-disk segment formats — is out of scope; this package
// only names the shape the collector drives it through.
package search
