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

package expr

import "github.com/codevlabs/crate/search"

// Expression is the capability every column expression implements:
// bind to the scan (StartCollect), rebind on segment transitions
// (SetSegment), position at a document (SetNextDoc), and read the
// currently-positioned value.
type Expression interface {
	StartCollect(ctx *search.Context) error
	SetSegment(seg search.Segment) error
	SetNextDoc(docID int) error
	Value() (search.Value, error)
}

// ScoreSetter is the extra capability a score expression exposes: the
// driver pushes the current document's score in before SetNextDoc when
// scores are needed.
type ScoreSetter interface {
	SetScore(score float32)
}

// OrderBySetter is the extra capability an order-by expression exposes
// while the ordered paginator streams a page: it reads from the
// page-supplied sort-field vector instead of consulting the index.
type OrderBySetter interface {
	SetSortFields(fields []search.Value)
}
