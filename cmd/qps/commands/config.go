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
	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v2"
)

var Config = &cli.Command{
	Name:  "config",
	Usage: "qps --config=./configs config",
	Action: func(ctx *cli.Context) (err error) {
		env := load(ctx)
		p, encodeErr := yaml.Marshal(env.Config)
		if encodeErr != nil {
			err = errors.Warning("qps: print config failed").WithCause(encodeErr)
			return
		}
		fmt.Fprint(ctx.App.Writer, string(p))
		return
	},
}
