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

const (
	trueValue  = "1"
	falseValue = "0"
)

func EncodeBoolean(b bool) Value {
	if b {
		return Scalar(trueValue)
	}
	return Scalar(falseValue)
}

// DecodeBoolean maps "1" to true and "0" to false. Everything else is absent.
func DecodeBoolean(v Value) (b bool, ok bool) {
	s, has := v.First()
	if !has {
		return
	}
	switch s {
	case trueValue:
		b, ok = true, true
	case falseValue:
		b, ok = false, true
	}
	return
}
