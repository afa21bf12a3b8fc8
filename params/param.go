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
)

// Config encodes and decodes one query parameter without knowing its Go type.
type Config interface {
	Encode(value any) codecs.Value
	Decode(value codecs.Value) (any, bool)
}

type Encoder[T any] func(value T) codecs.Value

type Decoder[T any] func(value codecs.Value) (T, bool)

func New[T any](encode Encoder[T], decode Decoder[T]) Param[T] {
	return Param[T]{
		encode: encode,
		decode: decode,
	}
}

// Param is a typed encode/decode pair for one kind of value.
type Param[T any] struct {
	encode Encoder[T]
	decode Decoder[T]
}

func (p Param[T]) EncodeValue(value T) codecs.Value {
	return p.encode(value)
}

func (p Param[T]) DecodeValue(value codecs.Value) (T, bool) {
	return p.decode(value)
}

// Encode accepts a T or a *T. Nil, a nil pointer and any other type are absent.
func (p Param[T]) Encode(value any) codecs.Value {
	switch v := value.(type) {
	case nil:
		return codecs.Absent()
	case T:
		return p.encode(v)
	case *T:
		if v == nil {
			return codecs.Absent()
		}
		return p.encode(*v)
	default:
		return codecs.Absent()
	}
}

func (p Param[T]) Decode(value codecs.Value) (any, bool) {
	v, ok := p.decode(value)
	if !ok {
		return nil, false
	}
	return v, true
}
