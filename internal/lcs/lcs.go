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

// Package lcs implements the longest common subsequence dynamic program that underlies patch
// construction, including backtracking and coalescing of consecutive steps into segments.
package lcs

// Op describes a single kind of backtracked step.
type Op uint8

const (
	Retain Op = iota // Element is common to x and y and taken from x verbatim.
	Delete           // Element of x is consumed and omitted.
	Insert           // Element of y is added without consuming x.
)

// Segment is a maximal run of consecutive steps sharing the same op.
//
//   - For Retain, x[X0:X1] and y[Y0:Y1] are equal element ranges of the same length.
//   - For Delete, x[X0:X1] is the deleted range and Y0 == Y1 marks the position in y.
//   - For Insert, y[Y0:Y1] is the inserted range and X0 == X1 marks the position in x.
//
// Segments returned by [Diff] are in forward order, and no two consecutive segments share an op.
type Segment struct {
	Op     Op
	X0, X1 int
	Y0, Y1 int
}

// Diff computes the minimal edit segments transforming x into y under eq.
//
// Degenerate inputs (either side empty, element-wise equal inputs) are answered without building
// the DP table; the result is identical to the general path.
func Diff[T any](x, y []T, eq func(a, b T) bool) []Segment {
	n, m := len(x), len(y)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		return []Segment{{Op: Insert, Y0: 0, Y1: m}}
	case m == 0:
		return []Segment{{Op: Delete, X0: 0, X1: n}}
	}
	if n == m {
		same := true
		for i := range x {
			if !eq(x[i], y[i]) {
				same = false
				break
			}
		}
		if same {
			return []Segment{{Op: Retain, X0: 0, X1: n, Y0: 0, Y1: m}}
		}
	}
	return diffGeneral(x, y, eq)
}

// diffGeneral is the unshortcut O(n·m) time and space path.
func diffGeneral[T any](x, y []T, eq func(a, b T) bool) []Segment {
	n, m := len(x), len(y)

	// table[i*w+j] is the length of the longest common subsequence of x[:i] and y[:j]. Row and
	// column zero stay at their zero value.
	w := m + 1
	table := make([]int, (n+1)*w)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if eq(x[i-1], y[j-1]) {
				table[i*w+j] = table[(i-1)*w+j-1] + 1
			} else {
				table[i*w+j] = max(table[(i-1)*w+j], table[i*w+j-1])
			}
		}
	}

	// Backtrack from (n, m) to (0, 0), building segments tail-first and extending the segment at
	// the tail while the op repeats. On ties between the delete and insert subproblem we take the
	// insert step here, which places delete runs before insert runs once the order is reversed.
	// This tie-break is load-bearing: it pins which of the equally-minimal edit sequences is
	// produced.
	var segs []Segment
	emit := func(op Op, i, j int) {
		if k := len(segs) - 1; k >= 0 && segs[k].Op == op {
			switch op {
			case Retain:
				segs[k].X0, segs[k].Y0 = i-1, j-1
			case Delete:
				segs[k].X0 = i - 1
			case Insert:
				segs[k].Y0 = j - 1
			}
			return
		}
		switch op {
		case Retain:
			segs = append(segs, Segment{op, i - 1, i, j - 1, j})
		case Delete:
			segs = append(segs, Segment{op, i - 1, i, j, j})
		case Insert:
			segs = append(segs, Segment{op, i, i, j - 1, j})
		}
	}
	for i, j := n, m; i > 0 || j > 0; {
		switch {
		case i > 0 && j > 0 && eq(x[i-1], y[j-1]):
			emit(Retain, i, j)
			i--
			j--
		case j > 0 && (i == 0 || table[i*w+j-1] >= table[(i-1)*w+j]):
			emit(Insert, i, j)
			j--
		default:
			emit(Delete, i, j)
			i--
		}
	}

	// Reverse to forward order.
	for a, b := 0, len(segs)-1; a < b; a, b = a+1, b-1 {
		segs[a], segs[b] = segs[b], segs[a]
	}
	return segs
}
