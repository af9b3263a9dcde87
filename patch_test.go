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

package seqpatch_test

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/seqpatch/seqpatch"
	"github.com/seqpatch/seqpatch/compare"
)

var spanCmp = cmp.AllowUnexported(seqpatch.Span[string]{})

func TestFromDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []seqpatch.Span[string]
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: nil,
		},
		{
			name: "insert-only",
			x:    "",
			y:    "hello",
			want: []seqpatch.Span[string]{
				seqpatch.Insert("h", "e", "l", "l", "o"),
			},
		},
		{
			name: "delete-only",
			x:    "hello",
			y:    "",
			want: []seqpatch.Span[string]{
				seqpatch.Delete[string](5),
			},
		},
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: []seqpatch.Span[string]{
				seqpatch.Retain[string](3),
			},
		},
		{
			name: "substitution-in-the-middle",
			x:    "abc",
			y:    "axc",
			want: []seqpatch.Span[string]{
				seqpatch.Retain[string](1),
				seqpatch.Delete[string](1),
				seqpatch.Insert("x"),
				seqpatch.Retain[string](1),
			},
		},
		{
			name: "duplicate-heavy",
			x:    "aaa",
			y:    "aaaa",
			want: []seqpatch.Span[string]{
				seqpatch.Insert("a"),
				seqpatch.Retain[string](3),
			},
		},
		{
			name: "kitten-to-sitting",
			x:    "kitten",
			y:    "sitting",
			want: []seqpatch.Span[string]{
				seqpatch.Delete[string](1),
				seqpatch.Insert("s"),
				seqpatch.Retain[string](3),
				seqpatch.Delete[string](1),
				seqpatch.Insert("i"),
				seqpatch.Retain[string](1),
				seqpatch.Insert("g"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := seqpatch.FromDiff(strings.Split(tt.x, ""), strings.Split(tt.y, ""), compare.Strict[string]())
			if err != nil {
				t.Fatalf("FromDiff: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Spans(), spanCmp, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Spans are different [-want, +got]:\n%s", diff)
			}

			got, err := p.Apply()
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if gotStr := strings.Join(got, ""); gotStr != tt.y {
				t.Errorf("Apply = %q, want %q", gotStr, tt.y)
			}
		})
	}
}

func TestFromDiffComparerRequired(t *testing.T) {
	_, err := seqpatch.FromDiff([]string{"a"}, []string{"b"}, nil)
	if !errors.Is(err, seqpatch.ErrComparerRequired) {
		t.Errorf("FromDiff with nil comparer: got %v, want ErrComparerRequired", err)
	}
	_, err = seqpatch.EditDistance([]string{"a"}, []string{"b"}, nil)
	if !errors.Is(err, seqpatch.ErrComparerRequired) {
		t.Errorf("EditDistance with nil comparer: got %v, want ErrComparerRequired", err)
	}
}

func TestApplyMalformed(t *testing.T) {
	base := strings.Split("abc", "")

	tests := []struct {
		name    string
		spans   []seqpatch.Span[string]
		want    string // result with Clamp
		wantErr bool   // error without Clamp
	}{
		{
			name:  "well-formed",
			spans: []seqpatch.Span[string]{seqpatch.Retain[string](3)},
			want:  "abc",
		},
		{
			name:    "retain-overruns-base",
			spans:   []seqpatch.Span[string]{seqpatch.Retain[string](5)},
			want:    "abc",
			wantErr: true,
		},
		{
			name:    "delete-overruns-base",
			spans:   []seqpatch.Span[string]{seqpatch.Retain[string](1), seqpatch.Delete[string](7)},
			want:    "a",
			wantErr: true,
		},
		{
			name:    "spans-underrun-base",
			spans:   []seqpatch.Span[string]{seqpatch.Retain[string](1)},
			want:    "a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := seqpatch.New(base, tt.spans)

			got, err := p.Apply()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Apply = %q, want an error", strings.Join(got, ""))
				}
			} else if err != nil {
				t.Errorf("Apply: %v", err)
			}

			got, err = p.Apply(seqpatch.Clamp())
			if err != nil {
				t.Fatalf("Apply with Clamp: %v", err)
			}
			if gotStr := strings.Join(got, ""); gotStr != tt.want {
				t.Errorf("Apply with Clamp = %q, want %q", gotStr, tt.want)
			}
		})
	}
}

// The comparer decides identity, not full equality: when a field comparer matches two records,
// applying the patch yields the original record, not the updated one.
func TestFromDiffByFieldRetainsOriginal(t *testing.T) {
	before := []any{map[string]any{"id": "1", "name": "Alice"}}
	after := []any{map[string]any{"id": "1", "name": "Alice Updated"}}

	p, err := seqpatch.FromDiff(before, after, compare.ByField("id"))
	if err != nil {
		t.Fatalf("FromDiff: %v", err)
	}
	want := []seqpatch.Span[any]{seqpatch.Retain[any](1)}
	if diff := cmp.Diff(want, p.Spans(), cmp.AllowUnexported(seqpatch.Span[any]{})); diff != "" {
		t.Errorf("Spans are different [-want, +got]:\n%s", diff)
	}

	got, err := p.Apply()
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if diff := cmp.Diff(before, got); diff != "" {
		t.Errorf("Apply result is different [-want, +got]:\n%s", diff)
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want int
	}{
		{"kitten-to-sitting", "kitten", "sitting", 5},
		{"identical", "same", "same", 0},
		{"empty-to-empty", "", "", 0},
		{"insert-only", "", "hello", 5},
		{"delete-only", "hello", "", 5},
		{"substitution-costs-two", "abc", "axc", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seqpatch.EditDistance(strings.Split(tt.x, ""), strings.Split(tt.y, ""), compare.Strict[string]())
			if err != nil {
				t.Fatalf("EditDistance: %v", err)
			}
			if got != tt.want {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPatchProperties(t *testing.T) {
	const alphabet = "abcde"
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("patch-properties"))))
	randSeq := func(n int) []string {
		s := make([]string, n)
		for i := range s {
			s[i] = string(alphabet[rng.IntN(len(alphabet))])
		}
		return s
	}

	for range 300 {
		x := randSeq(rng.IntN(32))
		y := randSeq(rng.IntN(32))
		name := fmt.Sprintf("%s->%s", strings.Join(x, ""), strings.Join(y, ""))

		p, err := seqpatch.FromDiff(x, y, compare.Strict[string]())
		if err != nil {
			t.Fatalf("%s: FromDiff: %v", name, err)
		}

		// Round-trip: applying the patch reproduces the target.
		got, err := p.Apply()
		if err != nil {
			t.Fatalf("%s: Apply: %v", name, err)
		}
		if diff := cmp.Diff(y, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s: Apply result is different [-want, +got]:\n%s", name, diff)
		}

		// Base-length conservation: retain and delete counts sum to the base length.
		consumed := 0
		for _, s := range p.Spans() {
			consumed += s.Count()
		}
		if consumed != len(x) {
			t.Errorf("%s: spans consume %d of %d base elements", name, consumed, len(x))
		}

		// Span coalescing: no two adjacent spans share a kind.
		spans := p.Spans()
		for i := 1; i < len(spans); i++ {
			if spans[i-1].Kind() == spans[i].Kind() {
				t.Errorf("%s: adjacent spans %d, %d share kind %v", name, i-1, i, spans[i].Kind())
			}
		}

		// Distance is zero iff the inputs are element-wise equal.
		equal := len(x) == len(y)
		for i := 0; equal && i < len(x); i++ {
			equal = x[i] == y[i]
		}
		if (p.Distance() == 0) != equal {
			t.Errorf("%s: distance %d, element-wise equal %v", name, p.Distance(), equal)
		}
	}
}
