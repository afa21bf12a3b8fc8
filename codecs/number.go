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

func EncodeNumber(n float64) Value {
	return Scalar(formatNumber(n))
}

// DecodeNumber parses the first string of v. Empty strings and values that are
// not a number are absent.
func DecodeNumber(v Value) (n float64, ok bool) {
	s, has := v.First()
	if !has || s == "" {
		return
	}
	f, err := coerceNumber(s)
	if err != nil || !isNumber(f) {
		return
	}
	n, ok = f, true
	return
}
