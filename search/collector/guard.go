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
	"fmt"

	"github.com/codevlabs/crate/collecterrs"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/shardctx"
)

// Guard is the lifecycle guard: a scoped acquisition of (shard context,
// searcher stage) with guaranteed release on every exit path, including
// a panic raised anywhere inside body — success, early stop, error, and
// cancellation all flow through the same deferred release.
type Guard struct {
	ShardCtx shardctx.Context
	Stage    shardctx.Stage
	Logger   Logger
}

// Run acquires the shard context, runs body, and releases on every path
// out of body — in the order finish-stage then release-then-close. A
// panic inside body is folded into an IndexError result rather than
// propagated, so the deferred release always completes and the scan
// reports exactly one terminal outcome.
func (g *Guard) Run(body func() search.ControlSignal) (result search.ControlSignal, err error) {
	if aerr := g.ShardCtx.Acquire(); aerr != nil {
		return search.ControlSignal{}, aerr
	}

	defer func() {
		// Finish the searcher's stage before releasing the shard
		// context: this flushes the index engine's own per-stage
		// buffers before the context it was reading from disappears.
		g.Stage.Finish()

		if rerr := g.ShardCtx.Release(); rerr != nil && err == nil {
			err = rerr
		}
		if cerr := g.ShardCtx.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			var perr error
			if e, ok := r.(error); ok {
				perr = &collecterrs.IndexError{Err: e}
			} else {
				perr = &collecterrs.IndexError{Err: fmt.Errorf("panic: %v", r)}
			}
			if g.Logger != nil {
				g.Logger.Printf("collector: recovered panic: %v", r)
			}
			result = search.Fail(perr)
			err = perr
		}
	}()

	g.Stage.EnterMainQuery()
	result = body()
	if result.Err != nil {
		err = result.Err
	}
	return result, err
}
