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

// Package expr implements column expressions: the mechanism that binds a
// query-plan column reference to a value producer over a (segment,
// doc-id) pair. Three variants share the base Expression contract and are
// distinguished by capability interfaces checked with a type assertion,
// not by an inheritance hierarchy: a plain column, a score column, and an
// order-by column that reads from injected sort-field values while the
// ordered paginator is streaming a page.
package expr
