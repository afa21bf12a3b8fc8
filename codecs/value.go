/*
 * Copyright 2023 Wang Min Xiang
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 	http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package codecs

import (
	"fmt"
	"strings"
)

type kind uint8

const (
	absentKind kind = iota
	scalarKind
	repeatedKind
)

// Value is the wire form of a single query parameter.
// A parameter is absent, a single string, or a repeated key with many strings.
type Value struct {
	kind     kind
	scalar   string
	repeated []string
}

func Absent() Value {
	return Value{}
}

func Scalar(s string) Value {
	return Value{
		kind:   scalarKind,
		scalar: s,
	}
}

// Repeated holds the values of a repeated query key. The slice is copied.
func Repeated(ss ...string) Value {
	items := make([]string, len(ss))
	copy(items, ss)
	return Value{
		kind:     repeatedKind,
		repeated: items,
	}
}

func (v Value) IsAbsent() bool {
	return v.kind == absentKind
}

func (v Value) IsScalar() bool {
	return v.kind == scalarKind
}

func (v Value) IsRepeated() bool {
	return v.kind == repeatedKind
}

// IsEmpty reports whether the value must not reach a query string,
// that is absent or the empty scalar.
func (v Value) IsEmpty() bool {
	return v.kind == absentKind || (v.kind == scalarKind && v.scalar == "")
}

// First returns the scalar, or the first element of a repeated value.
func (v Value) First() (s string, ok bool) {
	switch v.kind {
	case scalarKind:
		s, ok = v.scalar, true
	case repeatedKind:
		if len(v.repeated) > 0 {
			s, ok = v.repeated[0], true
		}
	}
	return
}

// Strings returns every string carried by the value, nil when absent.
func (v Value) Strings() (ss []string) {
	switch v.kind {
	case scalarKind:
		ss = []string{v.scalar}
	case repeatedKind:
		ss = make([]string, len(v.repeated))
		copy(ss, v.repeated)
	}
	return
}

func (v Value) Len() int {
	switch v.kind {
	case scalarKind:
		return 1
	case repeatedKind:
		return len(v.repeated)
	default:
		return 0
	}
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case scalarKind:
		return v.scalar == o.scalar
	case repeatedKind:
		if len(v.repeated) != len(o.repeated) {
			return false
		}
		for i, s := range v.repeated {
			if o.repeated[i] != s {
				return false
			}
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case scalarKind:
		return v.scalar
	case repeatedKind:
		return fmt.Sprintf("[%s]", strings.Join(v.repeated, ","))
	default:
		return "<absent>"
	}
}
