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
	"fmt"

	"github.com/codevlabs/crate/breaker"
	"github.com/codevlabs/crate/collecterrs"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/expr"
	"github.com/codevlabs/crate/search/visitor"
	"github.com/codevlabs/crate/shardctx"
	"github.com/codevlabs/crate/sink"
)

// Collector drives one shard scan end to end: the unordered path when
// Request.SortOrder is unset, otherwise the ordered paginator. A
// Collector performs exactly one scan; after DoCollect returns the
// instance is terminal.
type Collector struct {
	Req        Request
	Searcher   search.Searcher
	Downstream sink.Downstream
	Breaker    breaker.Context
	ShardCtx   shardctx.Context
	Stage      shardctx.Stage
	Logger     Logger
	Metrics    *Metrics

	State   State
	visitor *visitor.Visitor

	currentScorer search.Scorer
	segErr        error
}

// New builds a Collector ready for one DoCollect call.
func New(req Request, searcher search.Searcher, downstream sink.Downstream,
	shardCtx shardctx.Context, stage shardctx.Stage, brk breaker.Context) *Collector {
	return &Collector{
		Req:        req,
		Searcher:   searcher,
		Downstream: downstream,
		Breaker:    brk,
		ShardCtx:   shardCtx,
		Stage:      stage,
		Logger:     discardLogger,
		visitor:    visitor.New(req.SourceField),
	}
}

// ScoredScorer is the optional capability a Scorer may implement to
// supply a per-document score during an unordered scan (ordered pages
// already carry ScoredDoc.Score). This is an implementation seam the
// index engine's concrete scoring mechanism can opt into; it is not part
// of the base Searcher contract.
type ScoredScorer interface {
	Score(localDocID int) float32
}

// DoCollect binds expressions, acquires the shard context, dispatches to
// the unordered scan or the ordered paginator, and guarantees exactly
// one terminal downstream call plus exactly one acquire/release of the
// shard context.
func (c *Collector) DoCollect(ctx context.Context) error {
	scanCtx := &search.Context{ScanID: c.ShardCtx.JobSearchContextID(), Visitor: c.visitor}
	for _, e := range c.Req.Expressions {
		if err := e.StartCollect(scanCtx); err != nil {
			c.State.failed = true
			c.Downstream.Fail(&collecterrs.IndexError{Err: err})
			return err
		}
	}
	c.State.visitorEnabled = c.visitor.Required()

	guard := &Guard{ShardCtx: c.ShardCtx, Stage: c.Stage, Logger: c.Logger}
	_, err := guard.Run(func() search.ControlSignal {
		if c.Req.Ordered() {
			return c.runPaginator(ctx)
		}
		return c.scanUnordered(ctx)
	})

	switch {
	case err != nil:
		// Covers both an error surfaced by the scan body (sig.Err) and
		// one raised purely by the guard itself (acquire/release/close
		// failure, or a recovered panic) — either way exactly one
		// terminal call happens and it is Fail.
		c.State.failed = true
		c.Downstream.Fail(err)
	default:
		// normal completion and early stop (sig.Stop) both map to a
		// graceful finish.
		c.Downstream.Finish()
	}
	return err
}

func (c *Collector) bindSegment(seg search.Segment) error {
	c.State.currentSegment = seg
	for _, e := range c.Req.Expressions {
		if err := e.SetSegment(seg); err != nil {
			return err
		}
	}
	return nil
}

// collectDoc implements the per-document body shared by the unordered
// scan and the ordered paginator's deliverPage: kill/breaker checks,
// stored-field visiting, row delivery, and limit/want-more termination.
// seg/localDocID must already be bound via bindSegment and any per-doc
// score/sort-field injection already applied by the caller.
func (c *Collector) collectDoc(seg search.Segment, localDocID int) search.ControlSignal {
	if c.State.Killed() {
		c.Logger.Printf("collector: killed, cancelling scan at row %d", c.State.rowCount)
		return search.Fail(collecterrs.Cancelled)
	}
	if c.Breaker != nil && c.Breaker.Tripped() {
		err := &collecterrs.BreakerTripped{ContextID: c.Breaker.ContextID(), Limit: c.Breaker.Limit()}
		c.Logger.Printf("collector: %v", err)
		return search.Fail(err)
	}

	c.State.rowCount++
	c.State.producedRows = true

	if c.State.visitorEnabled {
		c.visitor.Reset()
		if fetcher := c.Searcher.Fetcher(seg); fetcher != nil {
			if doc := fetcher.Document(localDocID); doc != nil {
				if err := doc.Visit(localDocID, c.visitor); err != nil {
					return search.Fail(&collecterrs.IndexError{Err: err})
				}
			}
		}
	}

	for _, e := range c.Req.Expressions {
		if err := e.SetNextDoc(localDocID); err != nil {
			return search.Fail(&collecterrs.IndexError{Err: err})
		}
	}

	row := &exprRow{expressions: c.Req.Expressions}
	wantMore, err := c.Downstream.DeliverRow(row)
	if err != nil {
		return search.Fail(&collecterrs.DownstreamError{Err: err})
	}

	c.Metrics.Observe(fmt.Sprintf("%s:%d", seg.ID(), localDocID), row.Len())

	if !wantMore || (c.Req.Limit > 0 && c.State.rowCount == c.Req.Limit) {
		return search.Stop()
	}
	return search.Continue()
}

// exprRow is the lazy row view delivered downstream: it reads each
// expression's Value on demand rather than eagerly materializing the
// whole row.
type exprRow struct {
	expressions []expr.Expression
}

func (r *exprRow) Len() int { return len(r.expressions) }

func (r *exprRow) Value(i int) (search.Value, error) {
	return r.expressions[i].Value()
}
