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

import (
	"testing"

	"github.com/codevlabs/crate/search"
)

func TestColumnDeclaresStoredFieldOnStartCollect(t *testing.T) {
	v := fakeVisitor{}
	c := NewColumn("age", func(search.Segment, int) (search.Value, error) {
		return search.NumberValue(1), nil
	}).WithStoredField("age")

	if err := c.StartCollect(&search.Context{Visitor: &v}); err != nil {
		t.Fatalf("StartCollect returned error: %v", err)
	}
	if !v.declared["age"] {
		t.Fatal("expected column to declare its stored field during StartCollect")
	}
}

func TestColumnWithoutStoredFieldDeclaresNothing(t *testing.T) {
	v := fakeVisitor{}
	c := NewColumn("computed", func(search.Segment, int) (search.Value, error) {
		return search.NumberValue(1), nil
	})
	if err := c.StartCollect(&search.Context{Visitor: &v}); err != nil {
		t.Fatalf("StartCollect returned error: %v", err)
	}
	if len(v.declared) != 0 {
		t.Fatalf("expected no declarations, got %v", v.declared)
	}
}

func TestColumnValueReadsThroughSource(t *testing.T) {
	var seenSeg search.Segment
	var seenDoc int
	c := NewColumn("age", func(seg search.Segment, docID int) (search.Value, error) {
		seenSeg, seenDoc = seg, docID
		return search.NumberValue(7), nil
	})

	seg := fakeSegment{}
	if err := c.SetSegment(seg); err != nil {
		t.Fatal(err)
	}
	if err := c.SetNextDoc(3); err != nil {
		t.Fatal(err)
	}
	got, err := c.Value()
	if err != nil {
		t.Fatal(err)
	}
	if got.Num != 7 {
		t.Fatalf("Value() = %v, want 7", got)
	}
	if seenSeg != seg || seenDoc != 3 {
		t.Fatalf("source saw (seg=%v doc=%d), want (seg=%v doc=3)", seenSeg, seenDoc, seg)
	}
}

func TestScoreValueReflectsSetScore(t *testing.T) {
	s := NewScore("_score")
	s.SetScore(0.5)
	v, err := s.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v.Num != 0.5 {
		t.Fatalf("Value() = %v, want 0.5", v)
	}
}

func TestOrderBySetSortFieldsSelectsByIndex(t *testing.T) {
	o := NewOrderBy("b", 1)
	o.SetSortFields([]search.Value{search.NumberValue(1), search.NumberValue(2)})
	v, err := o.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v.Num != 2 {
		t.Fatalf("Value() = %v, want 2", v)
	}
}

func TestOrderByOutOfRangeIndexIsNull(t *testing.T) {
	o := NewOrderBy("b", 5)
	o.SetSortFields([]search.Value{search.NumberValue(1)})
	v, err := o.Value()
	if err != nil {
		t.Fatal(err)
	}
	if !v.Null() {
		t.Fatalf("Value() = %v, want null", v)
	}
}

type fakeSegment struct{}

func (fakeSegment) ID() string     { return "seg" }
func (fakeSegment) BaseDocID() int { return 0 }

type fakeVisitor struct {
	declared map[string]bool
}

func (v *fakeVisitor) Declare(name string) {
	if v.declared == nil {
		v.declared = map[string]bool{}
	}
	v.declared[name] = true
}
func (v *fakeVisitor) NeedsField(name string) bool               { return v.declared[name] }
func (v *fakeVisitor) VisitField(name string, val search.Value) {}
