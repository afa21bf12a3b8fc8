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
	"github.com/urfave/cli/v2"
)

var Encode = &cli.Command{
	Name:      "encode",
	Usage:     "qps encode --kind=numeric-array 1 2 3",
	ArgsUsage: "VALUE...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "kind",
			Required: true,
			Usage:    "value kind",
		},
		entrySeparatorFlag,
		keyValueSeparatorFlag,
	},
	Action: func(ctx *cli.Context) (err error) {
		env := load(ctx)
		k, kindErr := getKind(ctx.String("kind"))
		if kindErr != nil {
			err = errors.Warning("qps: encode failed").WithCause(kindErr)
			return
		}
		args := ctx.Args().Slice()
		if len(args) == 0 {
			err = errors.Warning("qps: encode failed, value is required")
			return
		}
		value, readErr := k.read(args)
		if readErr != nil {
			err = errors.Warning("qps: encode failed").WithCause(readErr).WithMeta("kind", ctx.String("kind"))
			return
		}
		encoded := k.config(codecOptions(ctx, env)).Encode(value)
		if encoded.IsAbsent() {
			if env.Log.DebugEnabled() {
				env.Log.Debug().With("kind", ctx.String("kind")).Message("qps: encoded value is absent")
			}
			return
		}
		for _, s := range encoded.Strings() {
			fmt.Fprintln(ctx.App.Writer, s)
		}
		return
	},
}
