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

// Score is the score expression: the driver calls SetScore with the
// current document's score before SetNextDoc whenever any expression
// needs it.
type Score struct {
	Symbol string
	score  float32
}

func NewScore(symbol string) *Score { return &Score{Symbol: symbol} }

func (s *Score) StartCollect(*search.Context) error { return nil }
func (s *Score) SetSegment(search.Segment) error     { return nil }
func (s *Score) SetNextDoc(int) error                { return nil }

func (s *Score) SetScore(score float32) { s.score = score }

func (s *Score) Value() (search.Value, error) {
	return search.NumberValue(float64(s.score)), nil
}
