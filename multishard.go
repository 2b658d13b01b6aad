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
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/codevlabs/crate/breaker"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/shardctx"
	"github.com/codevlabs/crate/sink"
)

// ShardTask is one shard's scan: its own request, searcher, downstream,
// shard context, and breaker. Row transport and cross-shard result
// merging happen elsewhere; each task's downstream receives only that
// shard's rows.
type ShardTask struct {
	ShardID    string
	Request    ShardScanRequest
	Searcher   search.Searcher
	Downstream sink.Downstream
	ShardCtx   shardctx.Context
	Stage      shardctx.Stage
	Breaker    breaker.Context
}

// RunShards fans out one collector per shard task: concurrency exists
// only at shard granularity, one collector per shard — there is never
// more than one goroutine inside any single task's scan. The first task
// to fail cancels the shared context so sibling scans can observe it
// through their own searcher/index I/O; every task's error is retained
// in the returned multierror regardless.
func RunShards(ctx context.Context, tasks []ShardTask) error {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var errs error

	for _, t := range tasks {
		task := t
		g.Go(func() error {
			h := NewCollector(task.Request, task.Searcher, task.Downstream,
				task.ShardCtx, task.Stage, task.Breaker)

			if err := h.Run(gctx); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("shard %s: %w", task.ShardID, err))
				mu.Unlock()
				return err
			}
			return nil
		})
	}

	_ = g.Wait()
	return errs
}
