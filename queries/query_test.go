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

package queries_test

import (
	"github.com/aacfactory/queryparams/codecs"
	"github.com/aacfactory/queryparams/queries"
	"reflect"
	"testing"
)

func TestStringify(t *testing.T) {
	query := queries.Query{
		"b": codecs.Scalar("2"),
		"a": codecs.Scalar("1"),
		"c": codecs.Repeated("x", "y"),
		"d": codecs.Absent(),
	}
	if s := queries.Stringify(query); s != "a=1&b=2&c=x&c=y" {
		t.Error("stringify failed", s)
	}
	if s := queries.Stringify(nil); s != "" {
		t.Error("stringify nil failed", s)
	}
}

func TestParse(t *testing.T) {
	query := queries.Parse("?a=1&c=x&b=&c=y&d")
	if s, _ := query.Get("a").First(); s != "1" {
		t.Error("parse failed", query)
	}
	if !reflect.DeepEqual(query.Get("c").Strings(), []string{"x", "y"}) {
		t.Error("repeated keys must keep their order", query.Get("c"))
	}
	for _, name := range []string{"b", "d"} {
		if s, ok := query.Get(name).First(); !ok || s != "" {
			t.Error("key without value must be the empty string", name)
		}
	}
	if !query.Get("missing").IsAbsent() {
		t.Error("missing key must be absent")
	}
	if queries.Parse("").Len() != 0 || queries.Parse("?").Len() != 0 {
		t.Error("empty search must be an empty query")
	}
}

func TestRoundTrip(t *testing.T) {
	query := queries.Query{
		"name":  codecs.Scalar("a b&c=d"),
		"tags":  codecs.Repeated("x_y", "ü"),
		"range": codecs.Scalar("1-2_3-4"),
	}
	parsed := queries.Parse(queries.Stringify(query))
	for name, value := range query {
		if !parsed.Get(name).Equal(value) {
			t.Error("round trip failed", name, parsed.Get(name), value)
		}
	}
	if parsed.HashCode() != query.HashCode() {
		t.Error("hash code must follow the query string")
	}
}

func TestFilter(t *testing.T) {
	query := queries.Query{
		"a": codecs.Scalar("1"),
		"b": codecs.Absent(),
		"c": codecs.Scalar(""),
		"d": codecs.Repeated(),
	}
	filtered := queries.Filter(query)
	if !reflect.DeepEqual(filtered.Names(), []string{"a", "d"}) {
		t.Error("filter failed", filtered.Names())
	}
	if query.Len() != 4 {
		t.Error("filter must not modify its input")
	}
}

func TestMerge(t *testing.T) {
	query := queries.Query{"a": codecs.Scalar("1"), "b": codecs.Scalar("2")}
	merged := query.Merge(queries.Query{"b": codecs.Absent(), "c": codecs.Scalar("3")})
	if s, _ := merged.Get("a").First(); s != "1" {
		t.Error("merge failed", merged)
	}
	if !merged.Get("b").IsAbsent() {
		t.Error("replacement must win", merged)
	}
	if s, _ := query.Get("b").First(); s != "2" {
		t.Error("merge must not modify its input")
	}
}

func TestSetNil(t *testing.T) {
	var query queries.Query
	query.Set("a", codecs.Scalar("1"))
	if query.Len() != 0 || !query.Get("a").IsAbsent() {
		t.Error("set on a nil query must do nothing", query)
	}
	query = queries.Query{}
	query.Set("a", codecs.Scalar("1"))
	query.Set("", codecs.Scalar("2"))
	if query.Len() != 1 || !query.Get("a").Equal(codecs.Scalar("1")) {
		t.Error("set failed", query)
	}
}
