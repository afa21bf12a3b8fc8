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

// EncodeArray keeps the strings as a repeated key. A nil slice is absent.
func EncodeArray(a []string) Value {
	if a == nil {
		return Absent()
	}
	return Repeated(a...)
}

// DecodeArray returns every non empty string of a repeated value in order,
// or a single element slice for a scalar. Absent and the empty scalar are absent.
func DecodeArray(v Value) (a []string, ok bool) {
	switch {
	case v.IsAbsent():
		return
	case v.IsScalar():
		s, _ := v.First()
		if s == "" {
			return
		}
		a, ok = []string{s}, true
		return
	}
	a = make([]string, 0, v.Len())
	for _, s := range v.repeated {
		if s == "" {
			continue
		}
		a = append(a, s)
	}
	ok = true
	return
}

func EncodeNumericArray(a []float64) Value {
	if a == nil {
		return Absent()
	}
	items := make([]string, len(a))
	for i, n := range a {
		items[i] = formatNumber(n)
	}
	return Value{
		kind:     repeatedKind,
		repeated: items,
	}
}

// DecodeNumericArray decodes v as an array and drops the elements that are not numbers.
func DecodeNumericArray(v Value) (a []float64, ok bool) {
	items, has := DecodeArray(v)
	if !has {
		return
	}
	a, ok = toNumbers(items), true
	return
}

func toNumbers(items []string) []float64 {
	numbers := make([]float64, 0, len(items))
	for _, item := range items {
		n, err := coerceNumber(item)
		if err != nil || !isNumber(n) {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}
