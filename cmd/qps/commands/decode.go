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
	"github.com/aacfactory/json"
	"github.com/aacfactory/queryparams/codecs"
	"github.com/urfave/cli/v2"
)

var Decode = &cli.Command{
	Name:      "decode",
	Usage:     "qps decode --kind=delimited-array a_b_c",
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
			err = errors.Warning("qps: decode failed").WithCause(kindErr)
			return
		}
		var value codecs.Value
		switch args := ctx.Args().Slice(); len(args) {
		case 0:
			value = codecs.Absent()
		case 1:
			value = codecs.Scalar(args[0])
		default:
			value = codecs.Repeated(args...)
		}
		decoded, ok := k.config(codecOptions(ctx, env)).Decode(value)
		if !ok {
			if env.Log.DebugEnabled() {
				env.Log.Debug().With("kind", ctx.String("kind")).With("value", value.String()).Message("qps: value can not be decoded")
			}
			fmt.Fprintln(ctx.App.Writer, "null")
			return
		}
		p, encodeErr := json.Marshal(decoded)
		if encodeErr != nil {
			err = errors.Warning("qps: decode failed").WithCause(encodeErr)
			return
		}
		fmt.Fprintln(ctx.App.Writer, string(p))
		return
	},
}
