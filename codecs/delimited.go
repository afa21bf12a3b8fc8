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
	"github.com/valyala/bytebufferpool"
	"strings"
)

// EncodeDelimitedArray joins the elements with the entry separator, ['a', 'b'] -> 'a_b'.
// A nil slice is absent. Elements containing the separator do not survive a round trip.
func EncodeDelimitedArray(a []string, options ...Option) Value {
	if a == nil {
		return Absent()
	}
	opt := newOptions(options)
	return Scalar(join(a, opt.EntrySeparator))
}

// DecodeDelimitedArray splits the first string of v on the entry separator, 'a_b' -> ['a', 'b'].
// Empty segments are dropped.
func DecodeDelimitedArray(v Value, options ...Option) (a []string, ok bool) {
	s, has := v.First()
	if !has || s == "" {
		return
	}
	opt := newOptions(options)
	segments := strings.Split(s, opt.EntrySeparator)
	a = make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		a = append(a, segment)
	}
	ok = true
	return
}

// EncodeDelimitedNumericArray joins the numbers with the entry separator, [1, 2] -> '1_2'.
func EncodeDelimitedNumericArray(a []float64, options ...Option) Value {
	if a == nil {
		return Absent()
	}
	items := make([]string, len(a))
	for i, n := range a {
		items[i] = formatNumber(n)
	}
	return EncodeDelimitedArray(items, options...)
}

func DecodeDelimitedNumericArray(v Value, options ...Option) (a []float64, ok bool) {
	items, has := DecodeDelimitedArray(v, options...)
	if !has {
		return
	}
	a, ok = toNumbers(items), true
	return
}

func join(items []string, sep string) string {
	buf := bytebufferpool.Get()
	for i, item := range items {
		if i > 0 {
			_, _ = buf.WriteString(sep)
		}
		_, _ = buf.WriteString(item)
	}
	s := buf.String()
	bytebufferpool.Put(buf)
	return s
}
