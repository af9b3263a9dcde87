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

// Comparer decides whether two elements are equivalent for diffing purposes. The engine never
// inspects elements except through a Comparer.
//
// Ready-made strategies are provided by [github.com/seqpatch/seqpatch/compare].
type Comparer[T any] interface {
	// Equal reports whether a and b are equivalent. It must be reflexive and symmetric.
	Equal(a, b T) bool

	// Hash returns a stable key for v. Callers may use it to bucket elements by identity; the
	// diff algorithm itself never hashes, it performs pairwise Equal calls only.
	Hash(v T) string
}
