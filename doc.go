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

// Package seqpatch computes minimal edit-distance patches between two ordered sequences of
// comparable elements and applies such patches to reconstruct the target sequence.
//
// A [Patch] consists of the base sequence it applies against and an ordered list of [Span]
// operations: retain, delete, or insert. [FromDiff] builds a patch from two sequences and a
// [Comparer]; [Patch.Apply] reproduces the target sequence; [Patch.DTO] and [FromDTO] cross the
// serialization boundary with a compact wire form.
//
// The engine is a stateless, pure computation library: every operation allocates its own state
// and concurrent callers need no coordination. Complexity is O(n·m) time and space for the
// underlying longest-common-subsequence table, which is fine for editor-scale sequences but has
// no banded or linear-space variant for very large inputs.
//
// Ready-made equality strategies are provided by [github.com/seqpatch/seqpatch/compare]; a
// string-native facade by [github.com/seqpatch/seqpatch/stringdiff].
package seqpatch
