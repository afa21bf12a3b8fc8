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

package commands

import (
	"fmt"
	"github.com/aacfactory/errors"
	"github.com/aacfactory/queryparams/codecs"
	"github.com/aacfactory/queryparams/locations"
	"github.com/aacfactory/queryparams/queries"
	"github.com/urfave/cli/v2"
	"strconv"
	"strings"
)

var Update = &cli.Command{
	Name:        "update",
	Usage:       "qps update --url=/list?a=1 --merge b=2 a",
	Description: "replace or merge query parameters of an url, 'name' alone removes the parameter",
	ArgsUsage:   "NAME=VALUE...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "url",
			Required: true,
			Usage:    "url to update",
		},
		&cli.BoolFlag{
			Name:  "merge",
			Usage: "keep the parameters that are not given",
		},
	},
	Action: func(ctx *cli.Context) (err error) {
		env := load(ctx)
		location, parseErr := locations.Parse(ctx.String("url"))
		if parseErr != nil {
			err = errors.Warning("qps: update failed").WithCause(parseErr)
			return
		}
		query := ParseAssignments(ctx.Args().Slice())
		var updated locations.Location
		if ctx.Bool("merge") {
			updated = locations.UpdateIn(query, location)
		} else {
			updated = locations.Update(query, location)
		}
		if env.Log.DebugEnabled() {
			env.Log.Debug().
				With("key", updated.Key).
				With("changed", strconv.FormatBool(locations.Changed(location, updated))).
				Message("qps: location updated")
		}
		fmt.Fprintln(ctx.App.Writer, updated.URL())
		fmt.Fprintln(ctx.App.Writer, "key: "+updated.Key)
		return
	},
}

// ParseAssignments reads name=value arguments into a query.
// Repeated names become repeated values and a name without '=' is absent.
func ParseAssignments(args []string) queries.Query {
	query := make(queries.Query, len(args))
	for _, arg := range args {
		name, value, assigned := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !assigned {
			query[name] = codecs.Absent()
			continue
		}
		prev := query[name]
		if prev.IsAbsent() {
			query[name] = codecs.Scalar(value)
			continue
		}
		query[name] = codecs.Repeated(append(prev.Strings(), value)...)
	}
	return query
}
