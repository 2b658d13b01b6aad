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
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/expr"
)

// Request is the immutable-for-the-scan shard scan request: the query,
// the ordered column expressions that define the row schema, an
// optional sort spec, an optional limit, and the page size used when
// the sort spec is set.
type Request struct {
	Query       search.Query
	Expressions []expr.Expression
	SortOrder   search.SortOrder
	Limit       int
	PageSize    int

	// SourceField is the designated stored-field name that always
	// reports as needed from the fields visitor.
	SourceField string
}

// effectivePageSize returns PageSize, defaulting to DefaultPageSize.
func (r Request) effectivePageSize() int {
	if r.PageSize > 0 {
		return r.PageSize
	}
	return DefaultPageSize
}

// Ordered reports whether this request streams in sort order.
func (r Request) Ordered() bool { return len(r.SortOrder) > 0 }
