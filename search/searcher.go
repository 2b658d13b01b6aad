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

package search

import "context"

// Segment identifies an immutable sub-unit of the index that owns a
// contiguous, segment-local doc-id space. BaseDocID is the segment's
// offset into the collection's global doc-id space, used by the ordered
// paginator to map a globally-scored doc back to (segment, local doc id)
// via binary search over segment bases.
type Segment interface {
	ID() string
	BaseDocID() int
}

// Scorer is the opaque per-segment scoring capability the searcher hands
// to the collector before delivering documents from a segment. Its
// internals belong to the index engine and are never inspected here.
type Scorer interface{}

// ScanCallback receives an unordered scan's segment transitions and
// per-document visits. SetSegment is always called before the first Doc
// of a given segment; SetScorer precedes it when scores are needed.
type ScanCallback interface {
	SetSegment(seg Segment)
	SetScorer(s Scorer)
	Doc(localDocID int) ControlSignal
}

// Document visits the stored fields of a document within a segment,
// pushing each field the visitor reports needing into v.
type Document interface {
	Visit(localDocID int, needs FieldVisitor) error
}

// FieldVisitor is satisfied by the stored-field visitor in
// search/visitor; kept here as a narrow interface so this package does
// not depend on it directly. Declare registers a field an expression
// needs during StartCollect; NeedsField gates which stored fields the
// index bothers decoding for the current document; VisitField pushes a
// decoded field's value into the visitor's per-document scratch space.
type FieldVisitor interface {
	Declare(name string)
	NeedsField(name string) bool
	VisitField(name string, val Value)
}

// StoredFieldFetcher is the per-segment capability to lazily load stored
// fields for a document, exposed alongside Segment so the driver can ask
// the segment itself (not the searcher) to fetch a document.
type StoredFieldFetcher interface {
	Document(localDocID int) Document
}

// ScoredDoc is one hit of a sorted page: its global doc id, its sort-key
// vector (aligned positionally with the SortOrder used to produce the
// page), and an optional score.
type ScoredDoc struct {
	DocID  int
	Fields []Value
	Score  float32
}

// Page is a batch of sorted hits plus whether the searcher had more
// beyond it (Full reports the page reached its requested size, the
// paginator's signal to keep going).
type Page struct {
	Docs []ScoredDoc
	Full bool
}

// Searcher is the adapter the collector drives the index engine through.
// Scan enumerates matches in unspecified order (the collector accepts
// out-of-order delivery for unordered scans). TopK and SearchAfter return
// globally sorted pages, the latter strictly after cursor in sort order.
type Searcher interface {
	Scan(ctx context.Context, q Query, cb ScanCallback) error
	TopK(ctx context.Context, q Query, k int, sort SortOrder) (Page, error)
	SearchAfter(ctx context.Context, cursor *ScoredDoc, q Query, k int, sort SortOrder) (Page, error)

	// Segment resolves the owning segment for a global doc id and the
	// doc's offset within it, via binary search over segment bases.
	Segment(globalDocID int) (seg Segment, localDocID int)

	// Fetcher returns the stored-field fetching capability for seg.
	Fetcher(seg Segment) StoredFieldFetcher
}
