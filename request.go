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

	"github.com/codevlabs/crate/breaker"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/collector"
	"github.com/codevlabs/crate/search/expr"
	"github.com/codevlabs/crate/shardctx"
	"github.com/codevlabs/crate/sink"
)

// ShardScanRequest is the immutable-for-the-scan input: the query, the
// ordered column expressions defining the row schema, the optional sort
// spec and limit, and the page size used when sorted.
type ShardScanRequest struct {
	Query       search.Query
	Expressions []expr.Expression
	SortOrder   search.SortOrder
	Limit       int
	PageSize    int
	SourceField string
}

// Handle is the running scan's external controls: an idempotent,
// thread-safe kill switch, and Run to drive the scan to completion.
type Handle struct {
	c *collector.Collector
}

// NewCollector wires a ShardScanRequest into a runnable Handle, plumbing
// together the searcher, downstream sink, shard context, searcher
// stage, and memory breaker.
func NewCollector(req ShardScanRequest, searcher search.Searcher, downstream sink.Downstream,
	shardCtx shardctx.Context, stage shardctx.Stage, brk breaker.Context) *Handle {
	c := collector.New(collector.Request{
		Query:       req.Query,
		Expressions: req.Expressions,
		SortOrder:   req.SortOrder,
		Limit:       req.Limit,
		PageSize:    req.PageSize,
		SourceField: req.SourceField,
	}, searcher, downstream, shardCtx, stage, brk)
	return &Handle{c: c}
}

// WithMetrics attaches ambient scan instrumentation (approximate
// distinct-document count, row-width percentiles) and returns the
// receiver for chaining.
func (h *Handle) WithMetrics(m *collector.Metrics) *Handle {
	h.c.Metrics = m
	return h
}

// WithLogger attaches a logger for the handful of operationally
// relevant lines the collector emits (breaker trips, cancellation,
// panic recovery).
func (h *Handle) WithLogger(l collector.Logger) *Handle {
	h.c.Logger = l
	return h
}

// Kill requests cancellation of the running (or not-yet-started) scan.
// Idempotent and safe to call from any goroutine.
func (h *Handle) Kill() { h.c.State.Kill() }

// Killed reports whether Kill has been called.
func (h *Handle) Killed() bool { return h.c.State.Killed() }

// State exposes the scan's observable counters (row count, produced
// rows, failed) for callers that want to inspect them after Run returns.
func (h *Handle) State() *collector.State { return &h.c.State }

// Run drives the scan to completion: exactly one of the downstream
// sink's Finish or Fail is called before Run returns.
func (h *Handle) Run(ctx context.Context) error {
	return h.c.DoCollect(ctx)
}
