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

// ControlSignal is the explicit three-valued result a per-document
// callback returns to the searcher during Scan: Continue keeps the scan
// going, Stop asks the searcher to end gracefully (an early stop, not an
// error), and a non-nil error propagates as the scan's terminal failure.
type ControlSignal struct {
	Stop bool
	Err  error
}

// Continue requests the next document.
func Continue() ControlSignal { return ControlSignal{} }

// Stop requests graceful termination of the scan; the searcher must honor
// it like reaching the end of the match set.
func Stop() ControlSignal { return ControlSignal{Stop: true} }

// Fail propagates err as the scan's terminal error.
func Fail(err error) ControlSignal { return ControlSignal{Err: err} }

// Done reports whether the scan should not be asked for another
// document, either because it was told to Stop or because it failed.
func (c ControlSignal) Done() bool { return c.Stop || c.Err != nil }
