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

// Command shardscan demos a single shard scan end to end against the
// in-memory fixture searcher in internal/memindex: it builds a small
// synthetic document set, wires a collector around it, and prints
// delivered rows to stdout.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/codevlabs/crate/breaker"
	"github.com/codevlabs/crate/internal/memindex"
	"github.com/codevlabs/crate/search"
	"github.com/codevlabs/crate/search/collector"
	"github.com/codevlabs/crate/search/expr"
	"github.com/codevlabs/crate/shardctx"
	"github.com/codevlabs/crate/sink"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		docCount    int
		limit       int
		orderBy     string
		reverse     bool
		segmentSize int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "shardscan",
		Short: "Run a single shard scan against a synthetic fixture index",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := buildFixture(docCount, segmentSize, seed)

			req := collector.Request{
				Query:       search.MatchAll{},
				Expressions: rowExpressions(),
				Limit:       limit,
				SourceField: "id",
			}
			if orderBy != "" {
				req.SortOrder = search.SortOrder{{Symbol: orderBy, Reverse: reverse}}
			}

			down := &stdoutSink{out: cmd.OutOrStdout()}
			shardCtx := &localShardCtx{id: "shardscan-demo"}
			stage := &localStage{}

			c := collector.New(req, idx, down, shardCtx, stage, breaker.Noop{ID: "demo", Max: 0})
			return c.DoCollect(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&docCount, "docs", 50, "number of synthetic documents to index")
	cmd.Flags().IntVar(&segmentSize, "segment-size", 10, "documents per segment")
	cmd.Flags().IntVar(&limit, "limit", 0, "row limit, 0 means unlimited")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort column, empty means unordered")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "reverse sort direction")
	cmd.Flags().Int64Var(&seed, "seed", 1, "fixture random seed")

	return cmd
}

func rowExpressions() []expr.Expression {
	return []expr.Expression{
		expr.NewColumn("id", fieldSource("id")).WithStoredField("id"),
		expr.NewColumn("score_field", fieldSource("score_field")).WithStoredField("score_field"),
	}
}

func buildFixture(n, segmentSize int, seed int64) *memindex.Index {
	rng := rand.New(rand.NewSource(seed))
	docs := make([]memindex.Doc, n)
	for i := 0; i < n; i++ {
		docs[i] = memindex.Doc{
			ID: i,
			Fields: map[string]search.Value{
				"id":          search.NumberValue(float64(i)),
				"score_field": search.NumberValue(rng.Float64() * 100),
			},
			Score: rng.Float32(),
		}
	}
	return memindex.New(segmentSize, docs)
}

// fieldSource reads a field directly off the segment, through the
// structural FieldAt extension memindex's segment implements; any other
// search.Segment implementation simply yields null for these columns.
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

type stdoutSink struct {
	out interface{ Write([]byte) (int, error) }
	n   int
}

func (s *stdoutSink) DeliverRow(row sink.Row) (bool, error) {
	s.n++
	for i := 0; i < row.Len(); i++ {
		v, err := row.Value(i)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "%v\t", formatValue(v))
	}
	fmt.Fprintln(s.out)
	return true, nil
}

func (s *stdoutSink) Finish()        { fmt.Fprintf(s.out, "-- %d rows delivered --\n", s.n) }
func (s *stdoutSink) Fail(err error) { fmt.Fprintf(s.out, "-- scan failed: %v --\n", err) }

func formatValue(v search.Value) string {
	if v.Null() {
		return "<null>"
	}
	if v.Kind == search.KindString {
		return v.Str
	}
	return fmt.Sprintf("%g", v.Num)
}

type localShardCtx struct{ id string }

func (l *localShardCtx) Acquire() error             { return nil }
func (l *localShardCtx) Release() error             { return nil }
func (l *localShardCtx) Close() error               { return nil }
func (l *localShardCtx) JobSearchContextID() string { return l.id }

type localStage struct{}

func (l *localStage) EnterMainQuery() {}
func (l *localStage) Finish()         {}

var _ shardctx.Context = (*localShardCtx)(nil)
var _ shardctx.Stage = (*localStage)(nil)
