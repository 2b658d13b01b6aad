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

package collector

import "log"

// Logger is satisfied by *log.Logger; kept as a narrow interface so
// callers can supply their own (or a no-op) without pulling in the
// standard logger's concrete type. Only a handful of operationally
// relevant lines go through it — breaker trips, cancellation, panic
// recovery — never the per-document hot path.
type Logger interface {
	Printf(format string, args ...interface{})
}

var discardLogger = log.New(discardWriter{}, "", 0)

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
