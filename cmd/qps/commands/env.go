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
	"github.com/aacfactory/queryparams/cmd/internal/files"
	"github.com/aacfactory/queryparams/codecs"
	"github.com/aacfactory/queryparams/configs"
	"github.com/aacfactory/queryparams/logs"
	"github.com/urfave/cli/v2"
	"path/filepath"
	"strings"
)

const (
	envMetadataKey = "@qps:env"
)

type Env struct {
	Config configs.Config
	Log    logs.Logger
}

// Flags are the global flags read by Setup.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "directory holding qps.yaml",
	},
	&cli.StringFlag{
		Name:  "active",
		Usage: "active config, reads qps-{active}.yaml over qps.yaml",
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error",
	},
}

// Setup loads the config and the logger before any command runs.
func Setup(ctx *cli.Context) (err error) {
	config := configs.Default()
	if dir := strings.TrimSpace(ctx.String("config")); dir != "" {
		if !files.IsDir(dir) || !files.Exist(filepath.Join(dir, "qps.yaml")) {
			err = errors.Warning("qps: setup failed, qps.yaml was not found").WithMeta("dir", dir)
			return
		}
		option, optionErr := configs.RetrieverOption(dir, ctx.String("active"))
		if optionErr != nil {
			err = errors.Warning("qps: setup failed").WithCause(optionErr)
			return
		}
		config, err = configs.Load(option)
		if err != nil {
			err = errors.Warning("qps: setup failed").WithCause(err)
			return
		}
	}
	if level := strings.TrimSpace(ctx.String("log-level")); level != "" {
		config.Log.Level = logs.Level(strings.ToLower(level))
	}
	if err = config.Validate(); err != nil {
		err = errors.Warning("qps: setup failed").WithCause(err)
		return
	}
	log, logErr := logs.New(config.Log)
	if logErr != nil {
		err = errors.Warning("qps: setup failed").WithCause(logErr)
		return
	}
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]interface{})
	}
	ctx.App.Metadata[envMetadataKey] = &Env{
		Config: config,
		Log:    log,
	}
	return
}

func Shutdown(ctx *cli.Context) (err error) {
	env, has := ctx.App.Metadata[envMetadataKey].(*Env)
	if !has {
		return
	}
	env.Log.Shutdown(ctx.Context)
	return
}

func load(ctx *cli.Context) *Env {
	env, has := ctx.App.Metadata[envMetadataKey].(*Env)
	if !has {
		panic(fmt.Sprintf("%+v", errors.Warning("qps: there is no env in app metadata")))
	}
	return env
}

var (
	entrySeparatorFlag = &cli.StringFlag{
		Name:  "entry-sep",
		Usage: "entry separator of delimited arrays and objects, overrides the config",
	}
	keyValueSeparatorFlag = &cli.StringFlag{
		Name:  "kv-sep",
		Usage: "key/value separator of objects, overrides the config",
	}
)

func codecOptions(ctx *cli.Context, env *Env) codecs.Options {
	options := env.Config.Codec.Options()
	if sep := ctx.String(entrySeparatorFlag.Name); sep != "" {
		options.EntrySeparator = sep
	}
	if sep := ctx.String(keyValueSeparatorFlag.Name); sep != "" {
		options.KeyValueSeparator = sep
	}
	return options
}
