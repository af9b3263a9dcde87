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

import (
	"errors"
	"fmt"
	"slices"

	"github.com/seqpatch/seqpatch/internal/config"
	"github.com/seqpatch/seqpatch/internal/lcs"
)

// ErrComparerRequired is returned by [FromDiff] and [EditDistance] when no comparer is supplied.
var ErrComparerRequired = errors.New("seqpatch: comparer required")

// Patch is an ordered list of [Span] operations together with the base sequence they apply
// against. In a well-formed patch the retain and delete counts sum to the base version's length
// and no two consecutive spans share a kind. Patches are immutable: every transformation returns
// a new value.
type Patch[T any] struct {
	base  []T
	spans []Span[T]
}

// New constructs a patch from a base version and spans directly, cloning both. It performs no
// validation; [Patch.Apply] reports malformed span sequences.
func New[T any](base []T, spans []Span[T]) *Patch[T] {
	return &Patch[T]{base: slices.Clone(base), spans: slices.Clone(spans)}
}

// FromDiff computes the minimal-operation patch transforming before into after under cmp.
//
// The diff is a longest-common-subsequence dynamic program with O(n·m) time and space. Adjacent
// same-kind operations are coalesced, and within a changed region delete spans precede insert
// spans. The exact span sequence is stable: identical inputs always produce the identical patch.
func FromDiff[T any](before, after []T, cmp Comparer[T]) (*Patch[T], error) {
	if cmp == nil {
		return nil, ErrComparerRequired
	}
	segs := lcs.Diff(before, after, cmp.Equal)
	spans := make([]Span[T], 0, len(segs))
	for _, seg := range segs {
		switch seg.Op {
		case lcs.Retain:
			spans = append(spans, Retain[T](seg.X1-seg.X0))
		case lcs.Delete:
			spans = append(spans, Delete[T](seg.X1-seg.X0))
		case lcs.Insert:
			spans = append(spans, Insert(after[seg.Y0:seg.Y1]...))
		default:
			panic("never reached")
		}
	}
	return &Patch[T]{base: slices.Clone(before), spans: spans}, nil
}

// Base returns the base version the spans apply against. The returned slice must not be
// modified.
func (p *Patch[T]) Base() []T { return p.base }

// Spans returns the patch's spans in application order. The returned slice must not be modified.
func (p *Patch[T]) Spans() []Span[T] { return p.spans }

// Apply reconstructs the target sequence from the patch. It is a pure function of the patch:
// repeated calls return identical results.
//
// A malformed patch whose spans run past the end of the base version, or fail to cover it
// completely, results in a descriptive error. With [Clamp], overrunning spans are clamped to the
// base version's bounds and incomplete coverage is ignored.
//
// The following option is supported: [Clamp]
func (p *Patch[T]) Apply(opts ...Option) ([]T, error) {
	cfg := config.FromOptions(opts, config.Clamp)

	n := 0
	for _, s := range p.spans {
		if s.kind == KindRetain {
			n += s.count
		}
		n += len(s.items)
	}

	out := make([]T, 0, n)
	cur := 0
	for i, s := range p.spans {
		switch s.kind {
		case KindRetain, KindDelete:
			end := cur + s.count
			if end > len(p.base) {
				if !cfg.Clamp {
					return nil, fmt.Errorf("seqpatch: span %d (%v of %d) runs past the base version (len %d)",
						i, s.kind, s.count, len(p.base))
				}
				end = len(p.base)
			}
			if s.kind == KindRetain {
				out = append(out, p.base[cur:end]...)
			}
			cur = end
		case KindInsert:
			out = append(out, s.items...)
		default:
			panic("never reached")
		}
	}
	if cur != len(p.base) && !cfg.Clamp {
		return nil, fmt.Errorf("seqpatch: spans cover only %d of %d base version elements", cur, len(p.base))
	}
	return out, nil
}

// Distance returns the patch's edit distance: the sum of deleted element counts and inserted
// item counts. A substitution costs 2, there is no native replace operation: a replacement is
// always an adjacent delete and insert span pair.
func (p *Patch[T]) Distance() int {
	d := 0
	for _, s := range p.spans {
		switch s.kind {
		case KindDelete:
			d += s.count
		case KindInsert:
			d += len(s.items)
		}
	}
	return d
}

// EditDistance computes the edit distance between before and after under cmp. It equals
// the Levenshtein-style distance with unit insert and delete costs and substitution cost 2.
func EditDistance[T any](before, after []T, cmp Comparer[T]) (int, error) {
	p, err := FromDiff(before, after, cmp)
	if err != nil {
		return 0, err
	}
	return p.Distance(), nil
}
