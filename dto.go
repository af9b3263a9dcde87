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
)

// ErrInvalidSpanEncoding is returned by [FromDTO] for a span DTO that matches none of the three
// discriminator keys, or more than one.
var ErrInvalidSpanEncoding = errors.New("seqpatch: invalid span encoding")

// SpanDTO is the compact wire form of a [Span]. Exactly one of the fields is set: R carries a
// retain count, D a delete count, I the inserted items. The single-letter keys minimize the
// serialized size.
type SpanDTO[T any] struct {
	R int `json:"r,omitempty"`
	D int `json:"d,omitempty"`
	I []T `json:"i,omitempty"`
}

// PatchDTO is the compact wire form of a [Patch]: V is the base version, S the spans.
type PatchDTO[T any] struct {
	V []T          `json:"v"`
	S []SpanDTO[T] `json:"s"`
}

// DTO converts the patch to its wire form.
func (p *Patch[T]) DTO() PatchDTO[T] {
	s := make([]SpanDTO[T], len(p.spans))
	for i, span := range p.spans {
		switch span.kind {
		case KindRetain:
			s[i] = SpanDTO[T]{R: span.count}
		case KindDelete:
			s[i] = SpanDTO[T]{D: span.count}
		case KindInsert:
			s[i] = SpanDTO[T]{I: slices.Clone(span.items)}
		default:
			panic("never reached")
		}
	}
	return PatchDTO[T]{V: slices.Clone(p.base), S: s}
}

// FromDTO converts a wire form back into a patch. Conversion is total for well-formed DTOs and
// round-trips with [Patch.DTO] in both directions.
func FromDTO[T any](dto PatchDTO[T]) (*Patch[T], error) {
	spans := make([]Span[T], len(dto.S))
	for i, s := range dto.S {
		switch {
		case s.R > 0 && s.D == 0 && len(s.I) == 0:
			spans[i] = Retain[T](s.R)
		case s.D > 0 && s.R == 0 && len(s.I) == 0:
			spans[i] = Delete[T](s.D)
		case len(s.I) > 0 && s.R == 0 && s.D == 0:
			spans[i] = Insert(s.I...)
		default:
			return nil, fmt.Errorf("%w: span %d: %+v", ErrInvalidSpanEncoding, i, s)
		}
	}
	return &Patch[T]{base: slices.Clone(dto.V), spans: spans}, nil
}
