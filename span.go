// Copyright 2025 The seqpatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seqpatch

import "slices"

// Kind identifies the operation a [Span] performs.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	KindRetain Kind = iota // Elements of the base version appear unchanged in the result.
	KindDelete             // Elements of the base version are consumed and omitted.
	KindInsert             // New elements are appended without consuming the base version.
)

// Span is one atomic edit operation within a [Patch]. A retain or delete span carries a count of
// base-version elements, an insert span carries the inserted items. Spans are immutable once
// constructed; use the [Retain], [Delete], and [Insert] factories and branch on kind via
// [Span.IsRetain], [Span.IsDelete], and [Span.IsInsert].
type Span[T any] struct {
	kind  Kind
	count int
	items []T
}

// Retain returns a span that takes count elements from the base version verbatim. It panics if
// count < 1: zero-length spans are never part of a well-formed patch.
func Retain[T any](count int) Span[T] {
	if count < 1 {
		panic("seqpatch: retain span needs a positive count")
	}
	return Span[T]{kind: KindRetain, count: count}
}

// Delete returns a span that consumes count elements of the base version and omits them from the
// result. It panics if count < 1.
func Delete[T any](count int) Span[T] {
	if count < 1 {
		panic("seqpatch: delete span needs a positive count")
	}
	return Span[T]{kind: KindDelete, count: count}
}

// Insert returns a span that appends items to the result without consuming base-version
// elements. It panics if items is empty.
func Insert[T any](items ...T) Span[T] {
	if len(items) == 0 {
		panic("seqpatch: insert span needs at least one item")
	}
	return Span[T]{kind: KindInsert, items: slices.Clone(items)}
}

// Kind returns the span's operation kind.
func (s Span[T]) Kind() Kind { return s.kind }

// Count returns the number of base-version elements the span consumes. It is zero for insert
// spans.
func (s Span[T]) Count() int { return s.count }

// Items returns the inserted items. It is nil for retain and delete spans. The returned slice
// must not be modified.
func (s Span[T]) Items() []T { return s.items }

// IsRetain reports whether the span is a retain span.
func (s Span[T]) IsRetain() bool { return s.kind == KindRetain }

// IsDelete reports whether the span is a delete span.
func (s Span[T]) IsDelete() bool { return s.kind == KindDelete }

// IsInsert reports whether the span is an insert span.
func (s Span[T]) IsInsert() bool { return s.kind == KindInsert }
