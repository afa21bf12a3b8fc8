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
	"sort"
	"strings"
)

// EncodeObject encodes a flat map as readable entries, {foo: bar, boo: baz} -> 'boo-baz_foo-bar'.
// Keys are written in sorted order. Nil and empty maps are absent.
func EncodeObject(m map[string]string, options ...Option) Value {
	if len(m) == 0 {
		return Absent()
	}
	opt := newOptions(options)
	keys := sortedKeys(m)
	buf := bytebufferpool.Get()
	for i, key := range keys {
		if i > 0 {
			_, _ = buf.WriteString(opt.EntrySeparator)
		}
		_, _ = buf.WriteString(key)
		_, _ = buf.WriteString(opt.KeyValueSeparator)
		_, _ = buf.WriteString(m[key])
	}
	s := buf.String()
	bytebufferpool.Put(buf)
	return Scalar(s)
}

// DecodeObject decodes 'foo-bar_boo-baz' into {foo: bar, boo: baz}.
// Each entry keeps the first two tokens split by the key/value separator, so 'a-b-c' is {a: 'b'}.
// An entry without a value, or with an empty one, leaves its key out.
func DecodeObject(v Value, options ...Option) (m map[string]string, ok bool) {
	s, has := v.First()
	if !has || s == "" {
		return
	}
	opt := newOptions(options)
	entries := strings.Split(s, opt.EntrySeparator)
	m = make(map[string]string, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, opt.KeyValueSeparator)
		if len(parts) < 2 || parts[1] == "" {
			delete(m, parts[0])
			continue
		}
		m[parts[0]] = parts[1]
	}
	ok = true
	return
}

// EncodeNumericObject encodes a flat map of numbers, {foo: 123, boo: 521} -> 'boo-521_foo-123'.
func EncodeNumericObject(m map[string]float64, options ...Option) Value {
	if len(m) == 0 {
		return Absent()
	}
	values := make(map[string]string, len(m))
	for key, n := range m {
		values[key] = formatNumber(n)
	}
	return EncodeObject(values, options...)
}

// DecodeNumericObject decodes v as an object and converts each value with DecodeNumber.
// Keys whose value is empty or not a number are left out.
func DecodeNumericObject(v Value, options ...Option) (m map[string]float64, ok bool) {
	values, has := DecodeObject(v, options...)
	if !has {
		return
	}
	m = make(map[string]float64, len(values))
	for key, value := range values {
		n, isNum := DecodeNumber(Scalar(value))
		if !isNum {
			continue
		}
		m[key] = n
	}
	ok = true
	return
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
