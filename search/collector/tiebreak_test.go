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
	"math/rand"
	"testing"

	"github.com/codevlabs/crate/breaker"
	"github.com/codevlabs/crate/internal/memindex"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/expr"
)

// TestOrderedScanAllTiedSortKeys drives the real paginator against the
// fixture searcher with every document sharing one sort key: the
// already-collected exclusion filter alone cannot disambiguate this case
// (every remaining candidate still ties the cursor's value), so this
// exercises memindex's cursor-based DocID tiebreak in SearchAfter.
func TestOrderedScanAllTiedSortKeys(t *testing.T) {
	const total = 50
	docs := make([]memindex.Doc, total)
	for i := range docs {
		docs[i] = memindex.Doc{
			ID: i,
			Fields: map[string]search.Value{
				"sort_key": search.NumberValue(7),
			},
		}
	}
	idx := memindex.New(8, docs)

	down := &fakeDownstream{}
	req := Request{
		Query: search.MatchAll{},
		Expressions: []expr.Expression{
			expr.NewColumn("id", idFieldSource()),
			expr.NewColumn("sort_key", fieldSource("sort_key")),
		},
		SortOrder:   search.SortOrder{{Symbol: "sort_key"}},
		SourceField: "_id",
		PageSize:    10,
	}
	sc := &fakeShardCtx{}
	st := &fakeStage{}
	c := New(req, idx, down, sc, st, breaker.Noop{ID: "t"})

	if err := c.DoCollect(context.Background()); err != nil {
		t.Fatalf("DoCollect returned error: %v", err)
	}
	if len(down.ids) != total {
		t.Fatalf("delivered %d rows, want %d (all tied docs must still be delivered)", len(down.ids), total)
	}
	seen := map[int]bool{}
	for _, id := range down.ids {
		if seen[id] {
			t.Fatalf("duplicate delivery of doc %d under tied sort keys", id)
		}
		seen[id] = true
	}
}

// TestOrderedScanRandomFixtureWithTiesDeliversExactlyOnce builds a
// synthetic fixture with a deliberately narrow value range (forcing many
// ties) using math/rand, and checks the universal idempotence property:
// every matching doc is delivered exactly once, regardless of how the
// ties land across page boundaries.
func TestOrderedScanRandomFixtureWithTiesDeliversExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const total = 200
	docs := make([]memindex.Doc, total)
	for i := range docs {
		docs[i] = memindex.Doc{
			ID: i,
			Fields: map[string]search.Value{
				"bucket": search.NumberValue(float64(rng.Intn(5))),
			},
		}
	}
	idx := memindex.New(16, docs)

	down := &fakeDownstream{}
	req := Request{
		Query: search.MatchAll{},
		Expressions: []expr.Expression{
			expr.NewColumn("id", idFieldSource()),
			expr.NewColumn("bucket", fieldSource("bucket")),
		},
		SortOrder:   search.SortOrder{{Symbol: "bucket", Reverse: true}},
		SourceField: "_id",
		PageSize:    13,
	}
	sc := &fakeShardCtx{}
	st := &fakeStage{}
	c := New(req, idx, down, sc, st, breaker.Noop{ID: "t"})

	if err := c.DoCollect(context.Background()); err != nil {
		t.Fatalf("DoCollect returned error: %v", err)
	}
	if len(down.ids) != total {
		t.Fatalf("delivered %d rows, want %d", len(down.ids), total)
	}
	seen := map[int]bool{}
	for _, id := range down.ids {
		if seen[id] {
			t.Fatalf("duplicate delivery of doc %d", id)
		}
		seen[id] = true
	}
}

// fieldSource reads a named stored field through the memindex segment's
// structural FieldAt extension (see internal/memindex.segment.FieldAt).
func fieldSource(name string) expr.ValueSource {
	return func(seg search.Segment, docID int) (search.Value, error) {
		fs, ok := seg.(interface {
			FieldAt(localDocID int, name string) search.Value
		})
		if !ok {
			return search.NullValue(), nil
		}
		return fs.FieldAt(docID, name), nil
	}
}

// idFieldSource reports the document's global id (segment base + local
// offset), the column fakeDownstream keys dedup checks on.
func idFieldSource() expr.ValueSource {
	return func(seg search.Segment, docID int) (search.Value, error) {
		return search.NumberValue(float64(seg.BaseDocID() + docID)), nil
	}
}
