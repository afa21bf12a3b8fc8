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
	"github.com/aacfactory/errors"
	"github.com/aacfactory/queryparams/queries"
	"net/url"
	"strings"
)

// Location is the routing state of a page, owned by a history layer.
// Updates never modify a Location, they return a copy.
type Location struct {
	// Origin is scheme://host, empty for relative locations.
	Origin   string
	Pathname string
	// Search is the raw query string, empty or starting with '?'.
	Search string
	Hash   string
	State  any
	// Key changes on every update.
	Key string
	// Query is the parsed Search when the history layer already has it, nil otherwise.
	Query queries.Query
}

// CurrentQuery is Query when present, else Search parsed.
func (location Location) CurrentQuery() queries.Query {
	if location.Query != nil {
		return location.Query
	}
	return queries.Parse(location.Search)
}

func (location Location) URL() string {
	return location.Origin + location.Pathname + location.Search + location.Hash
}

func FromURL(u *url.URL) Location {
	location := Location{
		Pathname: u.EscapedPath(),
	}
	if u.RawQuery != "" {
		location.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		location.Hash = "#" + u.EscapedFragment()
	}
	if u.Host != "" {
		location.Origin = u.Scheme + "://" + u.Host
		if u.User != nil {
			location.Origin = u.Scheme + "://" + u.User.String() + "@" + u.Host
		}
	}
	return location
}

func Parse(raw string) (location Location, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		err = errors.Warning("queryparams: parse location failed, url is empty")
		return
	}
	u, parseErr := url.Parse(raw)
	if parseErr != nil {
		err = errors.Warning("queryparams: parse location failed").WithMeta("url", raw).WithCause(parseErr)
		return
	}
	location = FromURL(u)
	return
}
