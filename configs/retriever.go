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

package configs

import (
	"github.com/aacfactory/configures"
	"github.com/aacfactory/errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	activeSystemEnvKey = "QPS-ACTIVE"
)

// RetrieverOption reads qps.yaml, and qps-{active}.yaml over it, from dir.
// An empty active falls back to the QPS-ACTIVE environment variable.
func RetrieverOption(dir string, active string) (option configures.RetrieverOption, err error) {
	path, pathErr := filepath.Abs(dir)
	if pathErr != nil {
		err = errors.Warning("queryparams: create config retriever failed").WithCause(pathErr).WithMeta("dir", dir)
		return
	}
	active = strings.TrimSpace(active)
	if active == "" {
		active, _ = os.LookupEnv(activeSystemEnvKey)
		active = strings.TrimSpace(active)
	}
	store := configures.NewFileStore(path, "qps", '-')
	option = configures.RetrieverOption{
		Active: active,
		Format: "YAML",
		Store:  store,
	}
	return
}

// Load retrieves the config and validates it. Fields missing from the files keep their defaults.
func Load(option configures.RetrieverOption) (config Config, err error) {
	retriever, retrieverErr := configures.NewRetriever(option)
	if retrieverErr != nil {
		err = errors.Warning("queryparams: load config failed").WithCause(retrieverErr)
		return
	}
	configure, configureErr := retriever.Get()
	if configureErr != nil {
		err = errors.Warning("queryparams: load config failed").WithCause(configureErr)
		return
	}
	config = Default()
	if asErr := configure.As(&config); asErr != nil {
		err = errors.Warning("queryparams: load config failed").WithCause(asErr)
		return
	}
	if err = config.Validate(); err != nil {
		return
	}
	return
}
