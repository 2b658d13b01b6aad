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

// OrderBy is the order-by expression: while the ordered paginator streams
// a page it pushes that page doc's sort-field vector in via
// SetSortFields, and Value reads Index out of it instead of consulting
// the index.
type OrderBy struct {
	Symbol string
	Index  int

	fields []search.Value
}

func NewOrderBy(symbol string, index int) *OrderBy {
	return &OrderBy{Symbol: symbol, Index: index}
}

func (o *OrderBy) StartCollect(*search.Context) error { return nil }
func (o *OrderBy) SetSegment(search.Segment) error     { return nil }
func (o *OrderBy) SetNextDoc(int) error                { return nil }

func (o *OrderBy) SetSortFields(fields []search.Value) { o.fields = fields }

func (o *OrderBy) Value() (search.Value, error) {
	if o.Index < 0 || o.Index >= len(o.fields) {
		return search.NullValue(), nil
	}
	return o.fields[o.Index], nil
}
