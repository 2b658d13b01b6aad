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

package crate

import (
	"context"
	"testing"

	"github.com/codevlabs/crate/breaker"
	"github.com/codevlabs/crate/internal/memindex"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/expr"
	"github.com/codevlabs/crate/sink"
)

type collectingSink struct {
	rows int
}

func (s *collectingSink) DeliverRow(row sink.Row) (bool, error) {
	s.rows++
	return true, nil
}
func (s *collectingSink) Finish()        {}
func (s *collectingSink) Fail(err error) {}

type noopShardCtx struct{ id string }

func (n noopShardCtx) Acquire() error             { return nil }
func (n noopShardCtx) Release() error             { return nil }
func (n noopShardCtx) Close() error               { return nil }
func (n noopShardCtx) JobSearchContextID() string { return n.id }

type noopStage struct{}

func (noopStage) EnterMainQuery() {}
func (noopStage) Finish()         {}

func buildIndex(n int) *memindex.Index {
	docs := make([]memindex.Doc, n)
	for i := range docs {
		docs[i] = memindex.Doc{ID: i, Fields: map[string]search.Value{"id": search.NumberValue(float64(i))}}
	}
	return memindex.New(5, docs)
}

func idExpr() expr.Expression {
	return expr.NewColumn("id", func(seg search.Segment, docID int) (search.Value, error) {
		fs, ok := seg.(interface {
			FieldAt(localDocID int, name string) search.Value
		})
		if !ok {
			return search.NullValue(), nil
		}
		return fs.FieldAt(docID, "id"), nil
	}).WithStoredField("id")
}

func TestHandleRunDeliversAndKillIsIdempotent(t *testing.T) {
	idx := buildIndex(20)
	down := &collectingSink{}
	req := ShardScanRequest{
		Query:       search.MatchAll{},
		Expressions: []expr.Expression{idExpr()},
		SourceField: "id",
	}
	h := NewCollector(req, idx, down, noopShardCtx{id: "s0"}, noopStage{}, breaker.Noop{ID: "b0"})

	if h.Killed() {
		t.Fatal("new handle should not start killed")
	}
	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if down.rows != 20 {
		t.Fatalf("delivered %d rows, want 20", down.rows)
	}

	h.Kill()
	h.Kill()
	if !h.Killed() {
		t.Fatal("expected Killed() to report true after Kill, and Kill to be idempotent")
	}
}

func TestRunShardsAggregatesPerShardErrors(t *testing.T) {
	idx := buildIndex(5)

	tasks := []ShardTask{
		{
			ShardID:    "ok",
			Request:    ShardScanRequest{Query: search.MatchAll{}, Expressions: []expr.Expression{idExpr()}, SourceField: "id"},
			Searcher:   idx,
			Downstream: &collectingSink{},
			ShardCtx:   noopShardCtx{id: "ok"},
			Stage:      noopStage{},
			Breaker:    breaker.Noop{ID: "ok"},
		},
		{
			ShardID:    "failing",
			Request:    ShardScanRequest{Query: search.MatchAll{}, Expressions: []expr.Expression{idExpr()}, SourceField: "id"},
			Searcher:   idx,
			Downstream: &collectingSink{},
			ShardCtx:   failingShardCtx{},
			Stage:      noopStage{},
			Breaker:    breaker.Noop{ID: "failing"},
		},
	}

	err := RunShards(context.Background(), tasks)
	if err == nil {
		t.Fatal("expected RunShards to report the failing shard's error")
	}
}

type failingShardCtx struct{}

func (failingShardCtx) Acquire() error             { return errAcquire }
func (failingShardCtx) Release() error             { return nil }
func (failingShardCtx) Close() error               { return nil }
func (failingShardCtx) JobSearchContextID() string { return "failing" }

var errAcquire = acquireError{}

type acquireError struct{}

func (acquireError) Error() string { return "simulated acquire failure" }
