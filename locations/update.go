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

package locations

import (
	"github.com/aacfactory/queryparams/queries"
	"github.com/rs/xid"
)

// Update replaces the query of location with query, wiping out the parameters
// query does not hold. Absent and empty values are left out.
// The result carries a fresh Key so history layers push a new entry.
func Update(query queries.Query, location Location) Location {
	filtered := queries.Filter(query)
	search := queries.Stringify(filtered)
	if search != "" {
		search = "?" + search
	}
	updated := location
	updated.Search = search
	updated.Query = filtered
	updated.Key = xid.New().String()
	return updated
}

// UpdateIn merges replacements into the current query of location.
// An absent or empty replacement removes the parameter.
func UpdateIn(replacements queries.Query, location Location) Location {
	merged := location.CurrentQuery().Merge(replacements)
	return Update(queries.Filter(merged), location)
}

// Changed reports whether the two locations carry different query strings.
func Changed(prev Location, next Location) bool {
	return prev.CurrentQuery().HashCode() != next.CurrentQuery().HashCode()
}
