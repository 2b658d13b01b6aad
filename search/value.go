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

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// stringCollator orders string-typed column values. A single shared
// collator is sufficient here: the core does not negotiate locale, it
// only needs a stable, ecosystem-backed comparator rather than a naive
// byte compare for order-by columns that happen to hold text.
var stringCollator = collate.New(language.Und)

// Kind distinguishes the representations a column value can carry.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
)

// Value is a typed column value as produced by a column expression or
// carried in a sorted page's Fields vector. It is intentionally small and
// comparable by value.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Null reports whether v holds no value.
func (v Value) Null() bool { return v.Kind == KindNull }

// NullValue constructs the null value.
func NullValue() Value { return Value{Kind: KindNull} }

// NumberValue constructs a numeric value.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// StringValue constructs a string value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// Compare orders two values of the same kind. Nulls compare less than any
// non-null value; ordering between nulls relative to the rest of the key
// is governed by NullsFirst at the SortField level, not here.
func Compare(a, b Value) int {
	switch {
	case a.Null() && b.Null():
		return 0
	case a.Null():
		return -1
	case b.Null():
		return 1
	}

	switch a.Kind {
	case KindNumber:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	case KindString:
		return stringCollator.CompareString(a.Str, b.Str)
	default:
		return 0
	}
}
