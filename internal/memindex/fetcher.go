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

import "github.com/codevlabs/crate/search"

// fetcher is the per-segment search.StoredFieldFetcher: it hands back a
// document view scoped to one segment's local doc-id space.
type fetcher struct {
	seg *segment
}

func (f *fetcher) Document(localDocID int) search.Document {
	return &document{d: f.seg.docs[localDocID]}
}

// document adapts a fixture Doc to search.Document, visiting only the
// fields the visitor actually declared a need for.
type document struct {
	d Doc
}

func (doc *document) Visit(_ int, needs search.FieldVisitor) error {
	for name, v := range doc.d.Fields {
		if !needs.NeedsField(name) {
			continue
		}
		needs.VisitField(name, v)
	}
	return nil
}
