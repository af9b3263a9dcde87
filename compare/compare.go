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

// Package compare provides ready-made [seqpatch.Comparer] strategies so callers never write
// ad-hoc equality code for the diff engine.
//
// All strategies are stateless and safe to reuse across concurrent diff calls. None of them
// panic on well-formed input; [Deep] and [Auto] degrade to "not equal" and a fallback hash on
// values that cannot be serialized, so a single malformed element never aborts an entire diff.
package compare

import (
	"encoding/json"
	"fmt"

	"github.com/seqpatch/seqpatch"
)

// Strict returns a comparer using Go's built-in equality. Following IEEE-754, a floating-point
// NaN never compares equal to itself. Nilable values compare equal only when both are nil.
func Strict[T comparable]() seqpatch.Comparer[T] {
	return strict[T]{}
}

type strict[T comparable] struct{}

func (strict[T]) Equal(a, b T) bool { return a == b }
func (strict[T]) Hash(v T) string   { return fmt.Sprint(v) }

// Deep returns a comparer that serializes both operands to a canonical JSON form and reports
// them equal iff the serialized forms match. When a value cannot be serialized (cycles,
// functions, channels), Equal reports false and Hash falls back to the value's string
// conversion.
func Deep[T any]() seqpatch.Comparer[T] {
	return deep[T]{}
}

type deep[T any] struct{}

func (deep[T]) Equal(a, b T) bool {
	ab, aerr := json.Marshal(a)
	bb, berr := json.Marshal(b)
	if aerr != nil || berr != nil {
		return false
	}
	return string(ab) == string(bb)
}

func (deep[T]) Hash(v T) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// Func wraps a caller-supplied equality predicate and optional hasher into a comparer. It panics
// if eq is nil. If hash is nil, the string conversion of the item is used.
func Func[T any](eq func(a, b T) bool, hash func(v T) string) seqpatch.Comparer[T] {
	if eq == nil {
		panic("compare: Func needs an equality predicate")
	}
	if hash == nil {
		hash = func(v T) string { return fmt.Sprint(v) }
	}
	return funcComparer[T]{eq: eq, hash: hash}
}

type funcComparer[T any] struct {
	eq   func(a, b T) bool
	hash func(v T) string
}

func (c funcComparer[T]) Equal(a, b T) bool { return c.eq(a, b) }
func (c funcComparer[T]) Hash(v T) string   { return c.hash(v) }
