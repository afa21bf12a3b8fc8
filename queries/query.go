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
	"github.com/cespare/xxhash/v2"
	"sort"
	"strconv"
)

// Query maps parameter names to their encoded values.
type Query map[string]codecs.Value

func (query Query) Get(name string) codecs.Value {
	if query == nil {
		return codecs.Absent()
	}
	return query[name]
}

// Set does nothing on a nil query.
func (query Query) Set(name string, value codecs.Value) {
	if query == nil || name == "" {
		return
	}
	query[name] = value
}

func (query Query) Remove(name string) {
	delete(query, name)
}

func (query Query) Len() int {
	return len(query)
}

func (query Query) Names() []string {
	names := make([]string, 0, len(query))
	for name := range query {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (query Query) Clone() Query {
	if query == nil {
		return nil
	}
	v := make(Query, len(query))
	for name, value := range query {
		v[name] = value
	}
	return v
}

// Merge returns a new query holding query overlaid by replacements.
// Replacement entries win, including absent ones.
func (query Query) Merge(replacements Query) Query {
	v := make(Query, len(query)+len(replacements))
	for name, value := range query {
		v[name] = value
	}
	for name, value := range replacements {
		v[name] = value
	}
	return v
}

// Encode is the query string of the query, see Stringify.
func (query Query) Encode() string {
	return Stringify(query)
}

// HashCode fingerprints the query string of the query.
// Queries that stringify the same have the same code.
func (query Query) HashCode() string {
	return strconv.FormatUint(xxhash.Sum64String(Stringify(query)), 16)
}

// Filter removes the entries that are absent or the empty string.
func Filter(query Query) Query {
	v := make(Query, len(query))
	for name, value := range query {
		if value.IsEmpty() {
			continue
		}
		v[name] = value
	}
	return v
}
