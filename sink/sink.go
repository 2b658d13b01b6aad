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

package sink

import "github.com/codevlabs/crate/search"

// Row is a lazy view over the scan's column expressions, positioned at
// the document currently being delivered. Value is only ever called by
// the downstream inside DeliverRow, before the collector advances to the
// next document.
type Row interface {
	Len() int
	Value(i int) (search.Value, error)
}

// Downstream is the opaque row consumer the collector drives.
// DeliverRow's wantMore return is read exactly once per row; returning
// false is equivalent to the caller asking the scan to stop early. After
// exactly one of Finish or Fail is called the collector makes no further
// calls on the sink.
type Downstream interface {
	DeliverRow(row Row) (wantMore bool, err error)
	Finish()
	Fail(err error)
}
