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
	"github.com/aacfactory/errors"
	"github.com/aacfactory/queryparams/codecs"
	"github.com/aacfactory/queryparams/logs"
	"github.com/go-playground/validator/v10"
)

type CodecConfig struct {
	EntrySeparator    string `json:"entrySeparator,omitempty" yaml:"entrySeparator,omitempty" validate:"required,max=8"`
	KeyValueSeparator string `json:"keyValueSeparator,omitempty" yaml:"keyValueSeparator,omitempty" validate:"required,max=8,nefield=EntrySeparator"`
}

// Effective fills the missing separators with the codec defaults.
func (config CodecConfig) Effective() CodecConfig {
	if config.EntrySeparator == "" {
		config.EntrySeparator = codecs.DefaultEntrySeparator
	}
	if config.KeyValueSeparator == "" {
		config.KeyValueSeparator = codecs.DefaultKeyValueSeparator
	}
	return config
}

func (config CodecConfig) Options() codecs.Options {
	effective := config.Effective()
	return codecs.Options{
		EntrySeparator:    effective.EntrySeparator,
		KeyValueSeparator: effective.KeyValueSeparator,
	}
}

type Config struct {
	Log   logs.Config `json:"log,omitempty" yaml:"log,omitempty"`
	Codec CodecConfig `json:"codec,omitempty" yaml:"codec,omitempty"`
}

func Default() Config {
	return Config{
		Log: logs.Config{
			Level:           logs.Warn,
			Formatter:       logs.TextConsoleFormatter,
			Console:         logs.Stderr,
			ShutdownTimeout: "1s",
		},
		Codec: CodecConfig{}.Effective(),
	}
}

var (
	validate = validator.New()
)

// Validate checks the config with the codec defaults applied.
func (config Config) Validate() (err error) {
	config.Codec = config.Codec.Effective()
	if validateErr := validate.Struct(config); validateErr != nil {
		err = errors.Warning("queryparams: invalid config").WithCause(validateErr)
		return
	}
	return
}
