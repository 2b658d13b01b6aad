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
	"github.com/axiomhq/hyperloglog"
	"github.com/caio/go-tdigest"
)

// Metrics is ambient per-scan instrumentation: an approximate
// distinct-document count (HyperLogLog, cheap and constant-space
// regardless of scan length) and a row-size percentile sketch
// (t-digest).
type Metrics struct {
	distinct *hyperloglog.Sketch
	rowSizes *tdigest.TDigest
}

// NewMetrics builds an empty metrics sketch pair.
func NewMetrics() (*Metrics, error) {
	td, err := tdigest.New()
	if err != nil {
		return nil, err
	}
	return &Metrics{
		distinct: hyperloglog.New(),
		rowSizes: td,
	}, nil
}

// Observe records one delivered row: key identifies the document
// (segment id + local doc id) for the distinct-count sketch, width is
// the row's column count fed into the size percentile sketch.
func (m *Metrics) Observe(key string, width int) {
	if m == nil {
		return
	}
	m.distinct.Insert([]byte(key))
	_ = m.rowSizes.Add(float64(width))
}

// ApproxDistinctDocs returns the HyperLogLog cardinality estimate.
func (m *Metrics) ApproxDistinctDocs() uint64 {
	if m == nil {
		return 0
	}
	return m.distinct.Estimate()
}

// RowWidthQuantile returns the t-digest estimate of the q-th quantile
// (0..1) of delivered row widths.
func (m *Metrics) RowWidthQuantile(q float64) float64 {
	if m == nil {
		return 0
	}
	return m.rowSizes.Quantile(q)
}
