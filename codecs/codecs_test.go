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

package codecs_test

import (
	"github.com/aacfactory/queryparams/codecs"
	"math"
	"reflect"
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	d := time.Date(2015, time.October, 1, 15, 30, 0, 0, time.Local)
	encoded := codecs.EncodeDate(d)
	if s, _ := encoded.First(); s != "2015-10-01" {
		t.Error("encode date failed", encoded)
		return
	}
	decoded, ok := codecs.DecodeDate(encoded)
	if !ok {
		t.Error("decode date failed")
		return
	}
	if decoded.Year() != 2015 || decoded.Month() != time.October || decoded.Day() != 1 || decoded.Hour() != 0 {
		t.Error("decode date failed", decoded)
		return
	}
	if !codecs.EncodeDate(time.Time{}).IsAbsent() {
		t.Error("zero date must be absent")
	}
}

func TestDecodeDatePartial(t *testing.T) {
	cases := map[string]time.Time{
		"2015":                   time.Date(2015, time.January, 1, 0, 0, 0, 0, time.Local),
		"2015-10":                time.Date(2015, time.October, 1, 0, 0, 0, 0, time.Local),
		"2015-10-21":             time.Date(2015, time.October, 21, 0, 0, 0, 0, time.Local),
		"2015-13-01":             time.Date(2016, time.January, 1, 0, 0, 0, 0, time.Local),
		"2015-01-01-0-0-0-0-5":   time.Date(2015, time.January, 1, 0, 0, 0, 0, time.Local),
		"2015-01-01-0-0-0-0-foo": time.Date(2015, time.January, 1, 0, 0, 0, 0, time.Local),
	}
	for input, expect := range cases {
		decoded, ok := codecs.DecodeDate(codecs.Scalar(input))
		if !ok || !decoded.Equal(expect) {
			t.Error("decode date failed", input, decoded, ok)
		}
	}
	first, ok := codecs.DecodeDate(codecs.Repeated("2016-02-03", "2017-01-01"))
	if !ok || first.Year() != 2016 || first.Month() != time.February || first.Day() != 3 {
		t.Error("decode date must use the first element", first)
	}
	for _, v := range []codecs.Value{codecs.Absent(), codecs.Scalar(""), codecs.Scalar("foo"), codecs.Scalar("2015-x-01"), codecs.Repeated()} {
		if _, ok := codecs.DecodeDate(v); ok {
			t.Error("decode date must be absent", v)
		}
	}
}

func TestBoolean(t *testing.T) {
	for _, b := range []bool{true, false} {
		decoded, ok := codecs.DecodeBoolean(codecs.EncodeBoolean(b))
		if !ok || decoded != b {
			t.Error("boolean round trip failed", b)
		}
	}
	if s, _ := codecs.EncodeBoolean(true).First(); s != "1" {
		t.Error("true must encode as 1", s)
	}
	for _, v := range []codecs.Value{codecs.Absent(), codecs.Scalar("true"), codecs.Scalar(""), codecs.Scalar("2"), codecs.Repeated()} {
		if _, ok := codecs.DecodeBoolean(v); ok {
			t.Error("decode boolean must be absent", v)
		}
	}
	if b, ok := codecs.DecodeBoolean(codecs.Repeated("0", "1")); !ok || b {
		t.Error("decode boolean must use the first element")
	}
}

func TestEncodeNumber(t *testing.T) {
	cases := map[float64]string{
		1:          "1",
		-0.5:       "-0.5",
		1.5:        "1.5",
		1234567890: "1234567890",
		1e21:       "1e+21",
		1e-7:       "1e-7",
		0:          "0",
	}
	for n, expect := range cases {
		if s, _ := codecs.EncodeNumber(n).First(); s != expect {
			t.Error("encode number failed", n, s, expect)
		}
	}
	if s, _ := codecs.EncodeNumber(math.Inf(-1)).First(); s != "-Infinity" {
		t.Error("encode number failed", s)
	}
}

func TestDecodeNumber(t *testing.T) {
	for _, n := range []float64{0, 1, -1, 3.14159, 1e21, 1e-7, 123456789.125} {
		decoded, ok := codecs.DecodeNumber(codecs.EncodeNumber(n))
		if !ok || decoded != n {
			t.Error("number round trip failed", n, decoded)
		}
	}
	cases := map[string]float64{
		" 12 ": 12,
		"0x1A": 26,
		"0b11": 3,
		"1e3":  1000,
		".5":   0.5,
		" ":    0,
	}
	for input, expect := range cases {
		decoded, ok := codecs.DecodeNumber(codecs.Scalar(input))
		if !ok || decoded != expect {
			t.Error("decode number failed", input, decoded, ok)
		}
	}
	if n, ok := codecs.DecodeNumber(codecs.Scalar("Infinity")); !ok || !math.IsInf(n, 1) {
		t.Error("decode number failed", n)
	}
	for _, v := range []codecs.Value{codecs.Absent(), codecs.Scalar(""), codecs.Scalar("abc"), codecs.Scalar("NaN"), codecs.Scalar("1_000"), codecs.Scalar("-0x1"), codecs.Repeated()} {
		if _, ok := codecs.DecodeNumber(v); ok {
			t.Error("decode number must be absent", v)
		}
	}
	if n, ok := codecs.DecodeNumber(codecs.Repeated("7", "8")); !ok || n != 7 {
		t.Error("decode number must use the first element", n)
	}
}

func TestString(t *testing.T) {
	s, ok := codecs.DecodeString(codecs.EncodeString("foo bar"))
	if !ok || s != "foo bar" {
		t.Error("string round trip failed", s)
	}
	if s, ok = codecs.DecodeString(codecs.Scalar("")); !ok || s != "" {
		t.Error("empty string is a value")
	}
	if _, ok = codecs.DecodeString(codecs.Absent()); ok {
		t.Error("absent string must be absent")
	}
	if s, _ = codecs.DecodeString(codecs.Repeated("a", "b")); s != "a" {
		t.Error("decode string must use the first element", s)
	}
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestJson(t *testing.T) {
	encoded := codecs.EncodeJson(map[string]any{"a": 1})
	if s, _ := encoded.First(); s != `{"a":1}` {
		t.Error("encode json failed", s)
		return
	}
	decoded, ok := codecs.DecodeJson(encoded)
	if !ok || !reflect.DeepEqual(decoded, map[string]any{"a": float64(1)}) {
		t.Error("decode json failed", decoded)
	}
	p, ok := codecs.DecodeJsonAs[point](codecs.EncodeJson(point{X: 1, Y: 2}))
	if !ok || p != (point{X: 1, Y: 2}) {
		t.Error("decode typed json failed", p)
	}
	for _, v := range []codecs.Value{codecs.Absent(), codecs.Scalar(""), codecs.Scalar("not json"), codecs.Scalar("{")} {
		if _, ok = codecs.DecodeJson(v); ok {
			t.Error("decode json must be absent", v)
		}
	}
	if !codecs.EncodeJson(nil).IsAbsent() {
		t.Error("nil json must be absent")
	}
	if !codecs.EncodeJson(make(chan int)).IsAbsent() {
		t.Error("unsupported json must be absent")
	}
}

func TestArray(t *testing.T) {
	decoded, ok := codecs.DecodeArray(codecs.EncodeArray([]string{"a", "", "b"}))
	if !ok || !reflect.DeepEqual(decoded, []string{"a", "b"}) {
		t.Error("array round trip failed", decoded)
	}
	if decoded, ok = codecs.DecodeArray(codecs.Scalar("a")); !ok || !reflect.DeepEqual(decoded, []string{"a"}) {
		t.Error("scalar must decode as a single element", decoded)
	}
	if _, ok = codecs.DecodeArray(codecs.Scalar("")); ok {
		t.Error("empty scalar must be absent")
	}
	if decoded, ok = codecs.DecodeArray(codecs.Repeated()); !ok || len(decoded) != 0 {
		t.Error("empty repeated value must be an empty array")
	}
	if !codecs.EncodeArray(nil).IsAbsent() {
		t.Error("nil array must be absent")
	}
	if encoded := codecs.EncodeArray([]string{}); !encoded.IsRepeated() || encoded.Len() != 0 {
		t.Error("empty array must stay repeated", encoded)
	}
}

func TestNumericArray(t *testing.T) {
	encoded := codecs.EncodeNumericArray([]float64{1, 2.5, -3})
	if !reflect.DeepEqual(encoded.Strings(), []string{"1", "2.5", "-3"}) {
		t.Error("encode numeric array failed", encoded)
	}
	decoded, ok := codecs.DecodeNumericArray(encoded)
	if !ok || !reflect.DeepEqual(decoded, []float64{1, 2.5, -3}) {
		t.Error("numeric array round trip failed", decoded)
	}
	decoded, ok = codecs.DecodeNumericArray(codecs.Repeated("1", "x", "", "NaN", "4"))
	if !ok || !reflect.DeepEqual(decoded, []float64{1, 4}) {
		t.Error("decode numeric array must drop non numbers", decoded)
	}
}

func TestDelimitedArray(t *testing.T) {
	encoded := codecs.EncodeDelimitedArray([]string{"a", "b"})
	if s, _ := encoded.First(); s != "a_b" {
		t.Error("encode delimited array failed", s)
	}
	decoded, ok := codecs.DecodeDelimitedArray(encoded)
	if !ok || !reflect.DeepEqual(decoded, []string{"a", "b"}) {
		t.Error("delimited array round trip failed", decoded)
	}
	decoded, ok = codecs.DecodeDelimitedArray(codecs.Scalar("a__b_"))
	if !ok || !reflect.DeepEqual(decoded, []string{"a", "b"}) {
		t.Error("empty segments must be dropped", decoded)
	}
	// an element holding the separator splits, it does not fail
	decoded, ok = codecs.DecodeDelimitedArray(codecs.EncodeDelimitedArray([]string{"a_b", "c"}))
	if !ok || !reflect.DeepEqual(decoded, []string{"a", "b", "c"}) {
		t.Error("delimiter collision failed", decoded)
	}
	comma := codecs.WithEntrySeparator(",")
	decoded, ok = codecs.DecodeDelimitedArray(codecs.EncodeDelimitedArray([]string{"x", "y"}, comma), comma)
	if !ok || !reflect.DeepEqual(decoded, []string{"x", "y"}) {
		t.Error("custom separator failed", decoded)
	}
	if _, ok = codecs.DecodeDelimitedArray(codecs.Scalar("")); ok {
		t.Error("empty delimited array must be absent")
	}
}

func TestDelimitedNumericArray(t *testing.T) {
	encoded := codecs.EncodeDelimitedNumericArray([]float64{1, 2})
	if s, _ := encoded.First(); s != "1_2" {
		t.Error("encode delimited numeric array failed", s)
	}
	decoded, ok := codecs.DecodeDelimitedNumericArray(codecs.Scalar("1_x_2.5"))
	if !ok || !reflect.DeepEqual(decoded, []float64{1, 2.5}) {
		t.Error("decode delimited numeric array failed", decoded)
	}
}

func TestObject(t *testing.T) {
	obj := map[string]string{"foo": "bar", "boo": "baz"}
	encoded := codecs.EncodeObject(obj)
	if s, _ := encoded.First(); s != "boo-baz_foo-bar" {
		t.Error("encode object failed", s)
	}
	decoded, ok := codecs.DecodeObject(encoded)
	if !ok || !reflect.DeepEqual(decoded, obj) {
		t.Error("object round trip failed", decoded)
	}
	decoded, ok = codecs.DecodeObject(codecs.Scalar("a-b-c_d-_e"))
	if !ok || !reflect.DeepEqual(decoded, map[string]string{"a": "b"}) {
		t.Error("object must keep the first two tokens of an entry", decoded)
	}
	if _, has := decoded["d"]; has {
		t.Error("empty object value must leave its key out", decoded)
	}
	if decoded, _ = codecs.DecodeObject(codecs.Scalar("a-1_a-")); len(decoded) != 0 {
		t.Error("a later empty value must remove the key", decoded)
	}
	opts := []codecs.Option{codecs.WithKeyValueSeparator(":"), codecs.WithEntrySeparator(",")}
	decoded, ok = codecs.DecodeObject(codecs.EncodeObject(obj, opts...), opts...)
	if !ok || !reflect.DeepEqual(decoded, obj) {
		t.Error("custom separators failed", decoded)
	}
	if !codecs.EncodeObject(map[string]string{}).IsAbsent() {
		t.Error("empty object must be absent")
	}
	if _, ok = codecs.DecodeObject(codecs.Repeated()); ok {
		t.Error("empty repeated object must be absent")
	}
}

func TestNumericObject(t *testing.T) {
	obj := map[string]float64{"foo": 1, "boo": 2}
	decoded, ok := codecs.DecodeNumericObject(codecs.EncodeNumericObject(obj))
	if !ok || !reflect.DeepEqual(decoded, obj) {
		t.Error("numeric object round trip failed", decoded)
	}
	decoded, ok = codecs.DecodeNumericObject(codecs.Scalar("a-1_b-x_c-"))
	if !ok || !reflect.DeepEqual(decoded, map[string]float64{"a": 1}) {
		t.Error("decode numeric object must drop non numbers", decoded)
	}
}
