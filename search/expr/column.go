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

// ValueSource resolves a column's typed value for the currently
// positioned (segment, doc-id) pair. The index engine supplies concrete
// sources; this package only shapes how the collector drives them.
type ValueSource func(seg search.Segment, docID int) (search.Value, error)

// Column is a plain column expression: it binds to a segment, positions
// at a document, and reads its value through src. If StoredField is
// non-empty the column declares it as a required stored field during
// StartCollect.
type Column struct {
	Symbol      string
	StoredField string
	Source      ValueSource

	seg   search.Segment
	docID int
}

func NewColumn(symbol string, src ValueSource) *Column {
	return &Column{Symbol: symbol, Source: src}
}

// WithStoredField marks the column as requiring a stored field by name,
// returning the receiver for chaining.
func (c *Column) WithStoredField(name string) *Column {
	c.StoredField = name
	return c
}

func (c *Column) StartCollect(ctx *search.Context) error {
	if c.StoredField != "" {
		ctx.Visitor.Declare(c.StoredField)
	}
	return nil
}

func (c *Column) SetSegment(seg search.Segment) error {
	c.seg = seg
	return nil
}

func (c *Column) SetNextDoc(docID int) error {
	c.docID = docID
	return nil
}

func (c *Column) Value() (search.Value, error) {
	return c.Source(c.seg, c.docID)
}
