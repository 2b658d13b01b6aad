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

package memindex

import (
	"context"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/codevlabs/crate/search"
)

// Doc is one fixture document: a global id and a bag of stored field
// values, some of which may double as sort/score inputs.
type Doc struct {
	ID     int
	Fields map[string]search.Value
	Score  float32
}

// segment is a fixed-size, contiguous slice of the corpus — the only
// thing segment-local doc ids are relative to.
type segment struct {
	id   string
	base int
	docs []Doc
}

func (s *segment) ID() string     { return s.id }
func (s *segment) BaseDocID() int { return s.base }

// FieldAt returns the named field's value for the document at localDocID
// within this segment. It is a structural extension beyond search.Segment
// that callers who hold a concrete fixture searcher (cmd/shardscan's
// column sources) can reach through an inline interface assertion,
// without this package exporting its segment type.
func (s *segment) FieldAt(localDocID int, name string) search.Value {
	if localDocID < 0 || localDocID >= len(s.docs) {
		return search.NullValue()
	}
	v, ok := s.docs[localDocID].Fields[name]
	if !ok {
		return search.NullValue()
	}
	return v
}

// Index is a fixture searcher: documents are partitioned into segments,
// and a roaring bitmap per field name gates which documents even carry
// that field, the way a postings list gates candidates before an exact
// value comparison in a real column store.
type Index struct {
	segments []*segment

	universe      *roaring.Bitmap
	fieldPresence map[string]*roaring.Bitmap
}

// New partitions docs into segments of segmentSize and builds the
// per-field presence bitmaps used to evaluate range queries.
func New(segmentSize int, docs []Doc) *Index {
	sorted := make([]Doc, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	idx := &Index{
		universe:      roaring.New(),
		fieldPresence: map[string]*roaring.Bitmap{},
	}

	for i := 0; i < len(sorted); i += segmentSize {
		end := i + segmentSize
		if end > len(sorted) {
			end = len(sorted)
		}
		idx.segments = append(idx.segments, &segment{
			id:   fmt.Sprintf("seg-%d", len(idx.segments)),
			base: sorted[i].ID,
			docs: sorted[i:end],
		})
	}

	for _, d := range sorted {
		idx.universe.Add(uint32(d.ID))
		for name, v := range d.Fields {
			if v.Null() {
				continue
			}
			bm, ok := idx.fieldPresence[name]
			if !ok {
				bm = roaring.New()
				idx.fieldPresence[name] = bm
			}
			bm.Add(uint32(d.ID))
		}
	}

	return idx
}

// Len reports the total number of indexed documents.
func (idx *Index) Len() int { return int(idx.universe.GetCardinality()) }

// Segment resolves a global doc id to its owning segment and local
// offset via binary search over segment bases.
func (idx *Index) Segment(globalDocID int) (search.Segment, int) {
	i := sort.Search(len(idx.segments), func(i int) bool {
		return idx.segments[i].base > globalDocID
	}) - 1
	if i < 0 {
		i = 0
	}
	seg := idx.segments[i]
	return seg, globalDocID - seg.base
}

// Fetcher returns the stored-field fetch capability for seg.
func (idx *Index) Fetcher(seg search.Segment) search.StoredFieldFetcher {
	s, ok := seg.(*segment)
	if !ok {
		return nil
	}
	return &fetcher{seg: s}
}

// Scan implements the unordered path: documents are visited
// segment-by-segment, in index order, honoring Stop/Err from the
// callback exactly as a real searcher must.
func (idx *Index) Scan(_ context.Context, q search.Query, cb search.ScanCallback) error {
	for _, seg := range idx.segments {
		cb.SetSegment(seg)
		cb.SetScorer(nil)
		for local, d := range seg.docs {
			if !idx.eval(q, d) {
				continue
			}
			sig := cb.Doc(local)
			if sig.Err != nil {
				return sig.Err
			}
			if sig.Done() {
				return nil
			}
		}
	}
	return nil
}

// TopK implements the sorted path by scanning every matching document
// and truncating; a real index would use a bounded heap, but fixture
// corpora here are small enough that clarity wins over that
// optimization.
func (idx *Index) TopK(_ context.Context, q search.Query, k int, sortOrder search.SortOrder) (search.Page, error) {
	return idx.pageOf(idx.matchingSorted(q, sortOrder), k, sortOrder), nil
}

// SearchAfter applies the caller's already-collected exclusion filter (q
// already carries the caller's AND NOT) and additionally disambiguates
// by cursor: the declared sort columns alone may tie, which is exactly
// why that exclusion filter is built as a strict inequality rather than
// excluding the cursor's value outright, so a real index's search_after
// also orders by an internal, always-unique key — here, DocID — to
// guarantee "strictly after cursor" even among exact-tied sort values
// that the exclusion filter deliberately leaves as candidates at the
// boundary.
func (idx *Index) SearchAfter(_ context.Context, cursor *search.ScoredDoc, q search.Query, k int, sortOrder search.SortOrder) (search.Page, error) {
	matched := idx.matchingSorted(q, sortOrder)
	if cursor != nil {
		filtered := matched[:0:0]
		for _, d := range matched {
			if compareWithDocIDTiebreak(fieldsOf(d, sortOrder), d.ID, cursor.Fields, cursor.DocID, sortOrder) > 0 {
				filtered = append(filtered, d)
			}
		}
		matched = filtered
	}
	return idx.pageOf(matched, k, sortOrder), nil
}

func (idx *Index) matchingSorted(q search.Query, sortOrder search.SortOrder) []Doc {
	var rv []Doc
	for _, seg := range idx.segments {
		for _, d := range seg.docs {
			if idx.eval(q, d) {
				rv = append(rv, d)
			}
		}
	}
	sort.SliceStable(rv, func(i, j int) bool {
		return compareWithDocIDTiebreak(fieldsOf(rv[i], sortOrder), rv[i].ID, fieldsOf(rv[j], sortOrder), rv[j].ID, sortOrder) < 0
	})
	return rv
}

// compareWithDocIDTiebreak orders by sortOrder first, falling back to an
// ascending comparison of DocID when every declared column ties —
// DocID is the stable, always-unique key a real search_after relies on to
// break exact ties deterministically.
func compareWithDocIDTiebreak(aFields []search.Value, aID int, bFields []search.Value, bID int, sortOrder search.SortOrder) int {
	if cmp := sortOrder.Compare(aFields, bFields); cmp != 0 {
		return cmp
	}
	switch {
	case aID < bID:
		return -1
	case aID > bID:
		return 1
	default:
		return 0
	}
}

func (idx *Index) pageOf(matched []Doc, k int, sortOrder search.SortOrder) search.Page {
	if k <= 0 || len(matched) == 0 {
		return search.Page{}
	}
	full := len(matched) > k
	if full {
		matched = matched[:k]
	}
	docs := make([]search.ScoredDoc, len(matched))
	for i, d := range matched {
		docs[i] = search.ScoredDoc{DocID: d.ID, Fields: fieldsOf(d, sortOrder), Score: d.Score}
	}
	return search.Page{Docs: docs, Full: full}
}

func fieldsOf(d Doc, sortOrder search.SortOrder) []search.Value {
	vals := make([]search.Value, len(sortOrder))
	for i, f := range sortOrder {
		if v, ok := d.Fields[f.Symbol]; ok {
			vals[i] = v
		} else {
			vals[i] = search.NullValue()
		}
	}
	return vals
}

// eval evaluates q against doc directly: this fixture index doubles as
// "the index engine" the rest of the module only consumes an interface
// to, so it is the one place allowed to switch on Query's concrete
// kinds.
func (idx *Index) eval(q search.Query, doc Doc) bool {
	switch qq := q.(type) {
	case nil:
		return true
	case search.MatchAll:
		return true
	case search.None:
		return false
	case search.Conjunction:
		for _, sub := range qq.Of {
			if !idx.eval(sub, doc) {
				return false
			}
		}
		return true
	case search.Negation:
		return !idx.eval(qq.Of, doc)
	case search.Range:
		bm := idx.fieldPresence[qq.Column]
		if bm == nil || !bm.Contains(uint32(doc.ID)) {
			return false
		}
		v := doc.Fields[qq.Column]
		if qq.Lo != nil {
			cmp := search.Compare(v, qq.Lo.Value)
			if cmp < 0 || (cmp == 0 && !qq.Lo.Inclusive) {
				return false
			}
		}
		if qq.Hi != nil {
			cmp := search.Compare(v, qq.Hi.Value)
			if cmp > 0 || (cmp == 0 && !qq.Hi.Inclusive) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
