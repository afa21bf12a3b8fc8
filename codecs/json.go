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
	"github.com/aacfactory/errors"
	"github.com/aacfactory/json"
)

// EncodeJson marshals v. Nil and values that can not be marshaled are absent.
func EncodeJson(v any) Value {
	if v == nil {
		return Absent()
	}
	p, err := json.Marshal(v)
	if err != nil {
		return Absent()
	}
	return Scalar(string(p))
}

// DecodeJson unmarshals the first string of v into a generic value.
// Parse failures are absent.
func DecodeJson(v Value) (r any, ok bool) {
	r, ok = DecodeJsonAs[any](v)
	return
}

// DecodeJsonAs unmarshals the first string of v into T.
func DecodeJsonAs[T any](v Value) (r T, ok bool) {
	s, has := v.First()
	if !has || s == "" {
		return
	}
	if err := parseJson(s, &r); err != nil {
		var zero T
		r = zero
		return
	}
	ok = true
	return
}

func parseJson(s string, dst any) (err error) {
	p := []byte(s)
	if !json.Validate(p) {
		err = errors.Warning("queryparams: parse json failed").WithMeta("json", s)
		return
	}
	if decodeErr := json.Unmarshal(p, dst); decodeErr != nil {
		err = errors.Warning("queryparams: parse json failed").WithMeta("json", s).WithCause(decodeErr)
		return
	}
	return
}
