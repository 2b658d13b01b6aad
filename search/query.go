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

// Query is an index query. The collector only builds and combines
// queries through the helpers below, never interprets them; a concrete
// index engine interprets Conjunction/Negation/Range (or any of its own
// query kinds behind the same interface) to actually evaluate a match.
// These types exist so the ordered paginator can construct its
// search-after exclusion filter without the index engine needing
// bespoke glue for it.
type Query interface {
	isQuery()
}

// MatchAll matches every document; None matches nothing. Both are
// reference marker queries a concrete index engine (or the in-memory
// fixture searcher in internal/memindex) can special-case.
type MatchAll struct{}

func (MatchAll) isQuery() {}

type None struct{}

func (None) isQuery() {}

// Conjunction is a logical AND of its operands.
type Conjunction struct{ Of []Query }

func (Conjunction) isQuery() {}

// Negation is a logical NOT of its operand.
type Negation struct{ Of Query }

func (Negation) isQuery() {}

// Bound is one end of a range query; a nil Bound means unbounded on that
// side.
type Bound struct {
	Value     Value
	Inclusive bool
}

// Range is an inclusive-or-exclusive bound query over one column: a
// generalization of greater-than/less-than that can express either or
// both bounds at once.
type Range struct {
	Column string
	Lo, Hi *Bound
}

func (Range) isQuery() {}

// RangeQuery builds a Range query. A nil lo or hi means unbounded on
// that side.
func RangeQuery(column string, lo, hi *Bound) Query {
	return Range{Column: column, Lo: lo, Hi: hi}
}

// GreaterThan builds the open range (v, +inf) used by the already-collected
// exclusion filter for reverse-ordered columns: under descending order the
// cursor's value is the smallest value delivered so far, so everything
// strictly above it has already been sent — see alreadyCollectedFilter in
// search/collector.
func GreaterThan(column string, v Value) Query {
	return RangeQuery(column, &Bound{Value: v, Inclusive: false}, nil)
}

// LessThan builds the open range (-inf, v), the mirror of GreaterThan used
// by the exclusion filter for ascending (non-reverse) columns: the cursor's
// value is the largest delivered so far, so everything strictly below it
// has already been sent. Values equal to the cursor are deliberately left
// unexcluded — ties at the boundary remain candidates on the next page,
// relying on search_after's own cursor to avoid re-delivering the exact
// documents already sent.
func LessThan(column string, v Value) Query {
	return RangeQuery(column, nil, &Bound{Value: v, Inclusive: false})
}

// And combines queries with logical conjunction. A single query or an
// empty list collapses without wrapping.
func And(queries ...Query) Query {
	switch len(queries) {
	case 0:
		return nil
	case 1:
		return queries[0]
	default:
		return Conjunction{Of: queries}
	}
}

// Not negates a query.
func Not(q Query) Query {
	if q == nil {
		return nil
	}
	return Negation{Of: q}
}

// AndNot returns q AND NOT excl, collapsing to q when excl is nil — the
// combinator the ordered paginator uses to subtract already-delivered
// documents from the continuation query.
func AndNot(q Query, excl Query) Query {
	if excl == nil {
		return q
	}
	return And(q, Not(excl))
}
