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

import "testing"

func TestAndCollapsesSingleAndEmpty(t *testing.T) {
	if q := And(); q != nil {
		t.Fatalf("And() = %v, want nil", q)
	}
	only := MatchAll{}
	if q := And(only); q != only {
		t.Fatalf("And(only) = %v, want the single operand unwrapped", q)
	}
	if q := And(MatchAll{}, None{}); q == nil {
		t.Fatal("And of two queries should not collapse to nil")
	} else if _, ok := q.(Conjunction); !ok {
		t.Fatalf("And of two queries = %T, want Conjunction", q)
	}
}

func TestNotNilIsNil(t *testing.T) {
	if q := Not(nil); q != nil {
		t.Fatalf("Not(nil) = %v, want nil", q)
	}
}

func TestAndNotCollapsesWithoutExclusion(t *testing.T) {
	base := MatchAll{}
	if q := AndNot(base, nil); q != base {
		t.Fatalf("AndNot(base, nil) = %v, want base unwrapped", q)
	}
}

func TestAndNotWrapsExclusion(t *testing.T) {
	base := MatchAll{}
	excl := RangeQuery("x", &Bound{Value: NumberValue(1), Inclusive: true}, nil)
	q := AndNot(base, excl)
	conj, ok := q.(Conjunction)
	if !ok || len(conj.Of) != 2 {
		t.Fatalf("AndNot with exclusion = %#v, want 2-clause Conjunction", q)
	}
	if _, ok := conj.Of[1].(Negation); !ok {
		t.Fatalf("AndNot second clause = %T, want Negation", conj.Of[1])
	}
}

func TestGreaterThanAndLessThanBounds(t *testing.T) {
	gt := GreaterThan("x", NumberValue(5)).(Range)
	if gt.Lo == nil || gt.Lo.Inclusive || gt.Hi != nil {
		t.Fatalf("GreaterThan built %#v, want exclusive open lower bound only", gt)
	}
	lt := LessThan("x", NumberValue(5)).(Range)
	if lt.Hi == nil || lt.Hi.Inclusive || lt.Lo != nil {
		t.Fatalf("LessThan built %#v, want exclusive open upper bound only", lt)
	}
}
