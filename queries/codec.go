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

package queries

import (
	"github.com/aacfactory/queryparams/codecs"
	"github.com/valyala/fasthttp"
	"strings"
)

// Stringify writes the query as a query string without the leading '?'.
// Names are sorted, repeated values become repeated keys and absent values are skipped.
func Stringify(query Query) string {
	if len(query) == 0 {
		return ""
	}
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	for _, name := range query.Names() {
		if name == "" {
			continue
		}
		for _, value := range query[name].Strings() {
			args.Add(name, value)
		}
	}
	return string(args.QueryString())
}

// Parse reads a query string, with or without the leading '?'.
// Repeated keys keep their order, a key without '=' is the empty string.
func Parse(search string) Query {
	search = strings.TrimSpace(search)
	search = strings.TrimPrefix(search, "?")
	query := make(Query)
	if search == "" {
		return query
	}
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Parse(search)
	args.VisitAll(func(key, value []byte) {
		name := string(key)
		if name == "" {
			return
		}
		prev, has := query[name]
		if !has {
			query[name] = codecs.Scalar(string(value))
			return
		}
		query[name] = codecs.Repeated(append(prev.Strings(), string(value))...)
	})
	return query
}
