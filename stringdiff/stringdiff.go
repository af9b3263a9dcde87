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

// Package stringdiff provides a string-native facade over the generic patch engine: inputs and
// outputs are strings, not element slices, and no comparer needs to be supplied.
//
// By default strings are diffed character by character. Characters are single-rune strings, so
// multi-byte text diffs at rune granularity, not at user-perceived grapheme granularity; this is
// an intentional simplification, not a Unicode-correctness guarantee. With [Lines], strings are
// diffed line by line instead.
package stringdiff

import (
	"fmt"
	"strings"

	"github.com/seqpatch/seqpatch"
	"github.com/seqpatch/seqpatch/compare"
	"github.com/seqpatch/seqpatch/internal/config"
)

// Patch is a string-flavored [seqpatch.Patch]. It remembers the granularity it was constructed
// with so that application and serialization stay string-native.
type Patch struct {
	p     *seqpatch.Patch[string]
	lines bool
}

// FromDiff computes the minimal patch transforming before into after, comparing characters (or
// lines, with [Lines]) by strict equality.
//
// The following option is supported: [Lines]
func FromDiff(before, after string, opts ...seqpatch.Option) *Patch {
	cfg := config.FromOptions(opts, config.Lines)
	split := splitChars
	if cfg.Lines {
		split = splitLines
	}
	p, err := seqpatch.FromDiff(split(before), split(after), compare.Strict[string]())
	if err != nil {
		panic("never reached") // the comparer is always set
	}
	return &Patch{p: p, lines: cfg.Lines}
}

// Base returns the base version the patch applies against, as a string.
func (p *Patch) Base() string { return strings.Join(p.p.Base(), "") }

// Spans returns the patch's spans in application order. The returned slice must not be modified.
func (p *Patch) Spans() []seqpatch.Span[string] { return p.p.Spans() }

// Lines reports whether the patch was constructed at line granularity.
func (p *Patch) Lines() bool { return p.lines }

// Apply reconstructs the target string from the patch.
//
// The following option is supported: [seqpatch.Clamp]
func (p *Patch) Apply(opts ...seqpatch.Option) (string, error) {
	out, err := p.p.Apply(opts...)
	if err != nil {
		return "", err
	}
	return strings.Join(out, ""), nil
}

// Distance returns the patch's edit distance.
func (p *Patch) Distance() int { return p.p.Distance() }

// EditDistance computes the edit distance between before and after at character (or line, with
// [Lines]) granularity.
func EditDistance(before, after string, opts ...seqpatch.Option) int {
	return FromDiff(before, after, opts...).Distance()
}

// SpanDTO is the wire form of a string-flavored span. Insert spans carry the inserted text as a
// plain string rather than an array of one-character strings.
type SpanDTO struct {
	R int    `json:"r,omitempty"`
	D int    `json:"d,omitempty"`
	I string `json:"i,omitempty"`
}

// PatchDTO is the wire form of a string-flavored patch. V is the base version as a plain string.
// L marks line granularity; it is absent for character patches.
type PatchDTO struct {
	V string    `json:"v"`
	S []SpanDTO `json:"s"`
	L bool      `json:"l,omitempty"`
}

// DTO converts the patch to its wire form.
func (p *Patch) DTO() PatchDTO {
	dto := PatchDTO{V: p.Base(), L: p.lines}
	dto.S = make([]SpanDTO, 0, len(p.p.Spans()))
	for _, s := range p.p.Spans() {
		switch {
		case s.IsRetain():
			dto.S = append(dto.S, SpanDTO{R: s.Count()})
		case s.IsDelete():
			dto.S = append(dto.S, SpanDTO{D: s.Count()})
		default:
			dto.S = append(dto.S, SpanDTO{I: strings.Join(s.Items(), "")})
		}
	}
	return dto
}

// FromDTO converts a wire form back into a patch. It rejects a span DTO matching none of the
// discriminator keys with [seqpatch.ErrInvalidSpanEncoding].
func FromDTO(dto PatchDTO) (*Patch, error) {
	split := splitChars
	if dto.L {
		split = splitLines
	}
	spans := make([]seqpatch.Span[string], len(dto.S))
	for i, s := range dto.S {
		switch {
		case s.R > 0 && s.D == 0 && s.I == "":
			spans[i] = seqpatch.Retain[string](s.R)
		case s.D > 0 && s.R == 0 && s.I == "":
			spans[i] = seqpatch.Delete[string](s.D)
		case s.I != "" && s.R == 0 && s.D == 0:
			spans[i] = seqpatch.Insert(split(s.I)...)
		default:
			return nil, fmt.Errorf("%w: span %d: %+v", seqpatch.ErrInvalidSpanEncoding, i, s)
		}
	}
	return &Patch{p: seqpatch.New(split(dto.V), spans), lines: dto.L}, nil
}

func splitChars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// splitLines splits after every newline. SplitAfter adds an empty element after a trailing
// '\n' which doesn't count as a line; a missing trailing newline stays part of the last line,
// so joining the elements always reproduces the input exactly.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
