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

package compare

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/seqpatch/seqpatch"
)

// hashSep separates field values in ByFields hashes.
const hashSep = "\x1f"

// ByField returns a comparer that considers two records equal iff the named field of both is
// equal by strict comparison. Records may be structs, pointers to structs, or maps with string
// keys. Nil operands are equal to each other but not to non-nil values. The hash is the string
// form of the field value, or "null" for a nil operand.
func ByField(name string) seqpatch.Comparer[any] {
	return fieldsComparer{names: []string{name}}
}

// ByFields returns a comparer that considers two records equal iff all named fields match under
// strict comparison. With zero fields supplied, all operands compare equal; this degenerate
// always-match comparer is intentional. The hash joins the field values with a separator
// character.
func ByFields(names ...string) seqpatch.Comparer[any] {
	return fieldsComparer{names: names}
}

type fieldsComparer struct {
	names []string
}

func (c fieldsComparer) Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	for _, name := range c.names {
		if !strictEqual(fieldValue(a, name), fieldValue(b, name)) {
			return false
		}
	}
	return true
}

func (c fieldsComparer) Hash(v any) string {
	if v == nil {
		return "null"
	}
	parts := make([]string, len(c.names))
	for i, name := range c.names {
		parts[i] = fmt.Sprint(fieldValue(v, name))
	}
	return strings.Join(parts, hashSep)
}

// Auto returns a comparer that dispatches on the operands' dynamic type: primitives compare by
// strict equality, slices and arrays element-wise (recursively, via Auto itself) requiring equal
// length, and structured values (maps, structs, pointers) by canonical serialization as in
// [Deep]. Nil operands are equal only to each other.
func Auto() seqpatch.Comparer[any] {
	return auto{}
}

type auto struct{}

func (c auto) Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := ra.Kind(), rb.Kind()
	if ka == reflect.Slice || ka == reflect.Array {
		if kb != reflect.Slice && kb != reflect.Array {
			return false
		}
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !c.Equal(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	switch ka {
	case reflect.Map, reflect.Struct, reflect.Pointer, reflect.Interface:
		return deep[any]{}.Equal(a, b)
	}
	return strictEqual(a, b)
}

func (auto) Hash(v any) string {
	if v == nil {
		return "null"
	}
	return deep[any]{}.Hash(v)
}

// strictEqual compares two values of arbitrary dynamic type without panicking on uncomparable
// types. NaN compares unequal to itself via the underlying ==.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// fieldValue extracts the named field from a record: a map lookup for string-keyed maps, an
// exported field for structs (through pointers). Missing fields and unsupported record types
// yield nil.
func fieldValue(v any, name string) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		fv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			return nil
		}
		return fv.Interface()
	case reflect.Struct:
		fv := rv.FieldByName(name)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil
		}
		return fv.Interface()
	}
	return nil
}
