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

// scanCallback adapts Collector to search.ScanCallback for the unordered
// path: it rebinds expressions on segment transitions and runs
// collectDoc for every delivered document, retaining the last control
// signal so scanUnordered can inspect it once Scan returns.
type scanCallback struct {
	c       *Collector
	lastSig search.ControlSignal
}

func (s *scanCallback) SetSegment(seg search.Segment) {
	if err := s.c.bindSegment(seg); err != nil {
		s.c.segErr = err
	}
}

func (s *scanCallback) SetScorer(sc search.Scorer) {
	s.c.currentScorer = sc
}

func (s *scanCallback) Doc(localDocID int) search.ControlSignal {
	c := s.c
	if c.segErr != nil {
		s.lastSig = search.Fail(&collecterrs.IndexError{Err: c.segErr})
		return s.lastSig
	}

	if scorer, ok := c.currentScorer.(ScoredScorer); ok {
		score := scorer.Score(localDocID)
		for _, e := range c.Req.Expressions {
			if ss, ok := e.(expr.ScoreSetter); ok {
				ss.SetScore(score)
			}
		}
	}

	s.lastSig = c.collectDoc(c.State.currentSegment, localDocID)
	return s.lastSig
}

// scanUnordered drives the unordered branch: the searcher enumerates
// matches in unspecified order, honoring Stop as graceful termination
// exactly like reaching the end of the match set.
func (c *Collector) scanUnordered(ctx context.Context) search.ControlSignal {
	cb := &scanCallback{c: c}
	err := c.Searcher.Scan(ctx, c.Req.Query, cb)
	if cb.lastSig.Err != nil {
		// the callback's own failure (cancel, breaker, downstream, ...)
		// keeps its kind rather than being reported as an index error.
		return cb.lastSig
	}
	if err != nil {
		return search.Fail(&collecterrs.IndexError{Err: err})
	}
	if cb.lastSig.Done() {
		return cb.lastSig
	}
	return search.Continue()
}
