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

package visitor

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/codevlabs/crate/search"
)

// Visitor is the fields visitor: expressions declare, during
// StartCollect, which stored fields they need; the index engine then
// asks NeedsField per candidate field while decoding a document, and
// pushes decoded values back in through VisitField.
//
// The required set is backed by a bitset over a name<->ordinal registry
// rather than a map, so repeated per-document NeedsField checks are a
// single bit test instead of a string-keyed map lookup.
type Visitor struct {
	source string

	ordinals map[string]uint
	names    []string
	required *bitset.BitSet

	scratch map[string]search.Value
}

// New builds a visitor whose designated source field (e.g. the document
// id or a synthetic "_source" column) always reports as needed,
// independent of any expression's declaration.
func New(sourceField string) *Visitor {
	return &Visitor{
		source:   sourceField,
		ordinals: map[string]uint{},
		required: bitset.New(0),
		scratch:  map[string]search.Value{},
	}
}

// Declare registers name as required, ORing it into the visitor's
// required set. Safe to call repeatedly with the same name.
func (v *Visitor) Declare(name string) {
	ord, ok := v.ordinals[name]
	if !ok {
		ord = uint(len(v.names))
		v.ordinals[name] = ord
		v.names = append(v.names, name)
	}
	v.required.Set(ord)
}

// Required reports whether any field has been declared, i.e. whether the
// driver needs to invoke the per-document stored-field fetch at all.
func (v *Visitor) Required() bool {
	return v.required.Any()
}

// NeedsField reports YES for the designated source field or any declared
// field, NO otherwise.
func (v *Visitor) NeedsField(name string) bool {
	if name == v.source {
		return true
	}
	ord, ok := v.ordinals[name]
	if !ok {
		return false
	}
	return v.required.Test(ord)
}

// VisitField records a decoded field's value in the per-document scratch
// buffer.
func (v *Visitor) VisitField(name string, val search.Value) {
	v.scratch[name] = val
}

// Value returns the scratch value most recently visited for name, and
// whether one was visited at all for the current document.
func (v *Visitor) Value(name string) (search.Value, bool) {
	val, ok := v.scratch[name]
	return val, ok
}

// Reset clears scratch storage between documents while retaining the
// required set.
func (v *Visitor) Reset() {
	for k := range v.scratch {
		delete(v.scratch, k)
	}
}
