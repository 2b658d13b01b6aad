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
	"testing"

	"github.com/codevlabs/crate/search"
)

func TestNeedsFieldGatesOnDeclaration(t *testing.T) {
	v := New("_id")
	if v.NeedsField("age") {
		t.Fatal("undeclared field should not be needed")
	}
	v.Declare("age")
	if !v.NeedsField("age") {
		t.Fatal("declared field should be needed")
	}
}

func TestNeedsFieldAlwaysWantsSourceField(t *testing.T) {
	v := New("_id")
	if !v.NeedsField("_id") {
		t.Fatal("source field must always be needed, regardless of declaration")
	}
}

func TestRequiredReportsWhetherAnyFieldDeclared(t *testing.T) {
	v := New("_id")
	if v.Required() {
		t.Fatal("Required() should be false before any Declare call")
	}
	v.Declare("age")
	if !v.Required() {
		t.Fatal("Required() should be true once a field is declared")
	}
}

func TestDeclareIsIdempotent(t *testing.T) {
	v := New("_id")
	v.Declare("age")
	v.Declare("age")
	if !v.NeedsField("age") {
		t.Fatal("repeated Declare of the same name should still leave it needed")
	}
}

func TestValueRoundTripsAndReset(t *testing.T) {
	v := New("_id")
	v.Declare("age")
	v.VisitField("age", search.NumberValue(42))

	got, ok := v.Value("age")
	if !ok || got.Num != 42 {
		t.Fatalf("Value(age) = (%v, %v), want (42, true)", got, ok)
	}

	v.Reset()
	if _, ok := v.Value("age"); ok {
		t.Fatal("Reset should clear scratch values")
	}
	if !v.NeedsField("age") {
		t.Fatal("Reset should not clear the required set")
	}
}
