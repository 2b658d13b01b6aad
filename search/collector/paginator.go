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
	"context"

	"github.com/codevlabs/crate/collecterrs"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/expr"
)

// runPaginator implements stable pagination via a top-k page followed by
// search-after continuation, subtracting an already-collected exclusion
// filter on every continuation. The filter removes keys strictly before
// the cursor; documents tying the cursor's key are kept from being
// delivered twice by SearchAfter starting strictly after the cursor.
func (c *Collector) runPaginator(ctx context.Context) search.ControlSignal {
	limit := c.Req.Limit
	pageSize := c.Req.effectivePageSize()

	batch := pageSize
	if limit > 0 && limit < batch {
		batch = limit
	}

	page, err := c.Searcher.TopK(ctx, c.Req.Query, batch, c.Req.SortOrder)
	if err != nil {
		return search.Fail(&collecterrs.IndexError{Err: err})
	}

	sig := c.deliverPage(page)
	if sig.Done() {
		return sig
	}

	delivered := len(page.Docs)
	lastDoc := lastOf(page)

	for (limit == 0 || delivered < limit) && page.Full && len(page.Docs) > 0 {
		if c.State.Killed() {
			c.Logger.Printf("collector: killed, cancelling pagination at row %d", c.State.rowCount)
			return search.Fail(collecterrs.Cancelled)
		}

		batch = pageSize
		if limit > 0 {
			if remaining := limit - delivered; remaining < batch {
				batch = remaining
			}
		}

		excl := alreadyCollectedFilter(c.Req.SortOrder, lastDoc.Fields)
		q := search.AndNot(c.Req.Query, excl)

		page, err = c.Searcher.SearchAfter(ctx, lastDoc, q, batch, c.Req.SortOrder)
		if err != nil {
			return search.Fail(&collecterrs.IndexError{Err: err})
		}

		sig = c.deliverPage(page)
		if sig.Done() {
			return sig
		}

		delivered += len(page.Docs)
		if next := lastOf(page); next != nil {
			lastDoc = next
		}
	}
	return search.Continue()
}

func lastOf(page search.Page) *search.ScoredDoc {
	if len(page.Docs) == 0 {
		return nil
	}
	doc := page.Docs[len(page.Docs)-1]
	return &doc
}

// deliverPage delivers one sorted page: for each scored doc it locates
// the owning segment, rebinds expressions, injects sort fields and
// score, and runs the same per-document body the unordered path uses.
func (c *Collector) deliverPage(page search.Page) search.ControlSignal {
	for _, doc := range page.Docs {
		seg, local := c.Searcher.Segment(doc.DocID)
		if err := c.bindSegment(seg); err != nil {
			return search.Fail(&collecterrs.IndexError{Err: err})
		}

		for _, e := range c.Req.Expressions {
			if ob, ok := e.(expr.OrderBySetter); ok {
				ob.SetSortFields(doc.Fields)
			}
			if ss, ok := e.(expr.ScoreSetter); ok {
				ss.SetScore(doc.Score)
			}
		}

		if sig := c.collectDoc(seg, local); sig.Done() {
			return sig
		}
	}
	return search.Continue()
}

// alreadyCollectedFilter builds the tie-breaking exclusion conjunction:
// one clause per direct-reference, non-omitted order-by column,
// excluding everything that sorted strictly before the cursor's key on
// that column. Values equal to the cursor's key are not excluded.
func alreadyCollectedFilter(order search.SortOrder, lastFields []search.Value) search.Query {
	var clauses []search.Query
	for i, f := range order {
		v := lastFields[i]

		if f.Computed {
			continue
		}
		if v.Null() && f.NullsFirst {
			continue
		}

		if f.Reverse {
			clauses = append(clauses, search.GreaterThan(f.Symbol, v))
		} else {
			clauses = append(clauses, search.LessThan(f.Symbol, v))
		}
	}
	if len(clauses) == 0 {
		return nil
	}
	return search.And(clauses...)
}
