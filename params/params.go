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

package params

import (
	"github.com/aacfactory/queryparams/codecs"
	"time"
)

var (
	StringParam                = New[string](codecs.EncodeString, codecs.DecodeString)
	NumberParam                = New[float64](codecs.EncodeNumber, codecs.DecodeNumber)
	BooleanParam               = New[bool](codecs.EncodeBoolean, codecs.DecodeBoolean)
	DateParam                  = New[time.Time](codecs.EncodeDate, codecs.DecodeDate)
	JsonParam                  = New[any](codecs.EncodeJson, codecs.DecodeJson)
	ArrayParam                 = New[[]string](codecs.EncodeArray, codecs.DecodeArray)
	NumericArrayParam          = New[[]float64](codecs.EncodeNumericArray, codecs.DecodeNumericArray)
	DelimitedArrayParam        = NewDelimitedArrayParam()
	DelimitedNumericArrayParam = NewDelimitedNumericArrayParam()
	ObjectParam                = NewObjectParam()
	NumericObjectParam         = NewNumericObjectParam()
)

func NewJsonParam[T any]() Param[T] {
	return New[T](func(value T) codecs.Value {
		return codecs.EncodeJson(value)
	}, codecs.DecodeJsonAs[T])
}

func NewDelimitedArrayParam(options ...codecs.Option) Param[[]string] {
	return New[[]string](func(value []string) codecs.Value {
		return codecs.EncodeDelimitedArray(value, options...)
	}, func(value codecs.Value) ([]string, bool) {
		return codecs.DecodeDelimitedArray(value, options...)
	})
}

func NewDelimitedNumericArrayParam(options ...codecs.Option) Param[[]float64] {
	return New[[]float64](func(value []float64) codecs.Value {
		return codecs.EncodeDelimitedNumericArray(value, options...)
	}, func(value codecs.Value) ([]float64, bool) {
		return codecs.DecodeDelimitedNumericArray(value, options...)
	})
}

func NewObjectParam(options ...codecs.Option) Param[map[string]string] {
	return New[map[string]string](func(value map[string]string) codecs.Value {
		return codecs.EncodeObject(value, options...)
	}, func(value codecs.Value) (map[string]string, bool) {
		return codecs.DecodeObject(value, options...)
	})
}

func NewNumericObjectParam(options ...codecs.Option) Param[map[string]float64] {
	return New[map[string]float64](func(value map[string]float64) codecs.Value {
		return codecs.EncodeNumericObject(value, options...)
	}, func(value codecs.Value) (map[string]float64, bool) {
		return codecs.DecodeNumericObject(value, options...)
	})
}
