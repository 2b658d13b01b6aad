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

package search

// SortField is one column of an order-by clause: its symbol (column
// reference), sort direction, and null placement.
type SortField struct {
	Symbol     string
	Reverse    bool
	NullsFirst bool

	// Computed marks a sort column that is not a direct field reference
	// (e.g. a computed expression). The ordered paginator's exclusion
	// filter omits such columns, since there is no indexable clause to
	// build for them.
	Computed bool
}

// SortOrder is an ordered list of sort columns, most significant first.
type SortOrder []SortField

// Fields returns the column symbols this order touches, in order.
func (so SortOrder) Fields() []string {
	rv := make([]string, len(so))
	for i, f := range so {
		rv[i] = f.Symbol
	}
	return rv
}

// Compare orders two field vectors (aligned positionally with so) by
// applying each column's direction and null placement in turn, the last
// column acting as the final tie-breaker.
func (so SortOrder) Compare(a, b []Value) int {
	for i, f := range so {
		av, bv := a[i], b[i]

		if av.Null() || bv.Null() {
			if av.Null() && bv.Null() {
				continue
			}
			// whichever side is null sorts first or last per NullsFirst,
			// irrespective of Reverse: null placement is a presentation
			// choice independent of the non-null comparison direction.
			if av.Null() {
				if f.NullsFirst {
					return -1
				}
				return 1
			}
			if f.NullsFirst {
				return 1
			}
			return -1
		}

		cmp := Compare(av, bv)
		if f.Reverse {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp
		}
	}
	return 0
}
