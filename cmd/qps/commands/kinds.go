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
	"github.com/aacfactory/queryparams/params"
	"sort"
	"strconv"
	"strings"
	"time"
)

// kind binds a codec to the way its values are read from command line arguments.
type kind struct {
	read   func(args []string) (v any, err error)
	config func(options codecs.Options) params.Config
}

var kinds = map[string]kind{
	"string": {
		read: func(args []string) (v any, err error) {
			v = args[0]
			return
		},
		config: fixed(params.StringParam),
	},
	"number": {
		read: func(args []string) (v any, err error) {
			v, err = strconv.ParseFloat(args[0], 64)
			return
		},
		config: fixed(params.NumberParam),
	},
	"boolean": {
		read: func(args []string) (v any, err error) {
			v, err = strconv.ParseBool(args[0])
			return
		},
		config: fixed(params.BooleanParam),
	},
	"date": {
		read: func(args []string) (v any, err error) {
			v, err = time.ParseInLocation("2006-01-02", args[0], time.Local)
			return
		},
		config: fixed(params.DateParam),
	},
	"json": {
		read: func(args []string) (v any, err error) {
			err = json.Unmarshal([]byte(args[0]), &v)
			return
		},
		config: fixed(params.JsonParam),
	},
	"array": {
		read:   readStrings,
		config: fixed(params.ArrayParam),
	},
	"numeric-array": {
		read:   readNumbers,
		config: fixed(params.NumericArrayParam),
	},
	"delimited-array": {
		read: readStrings,
		config: func(options codecs.Options) params.Config {
			return params.NewDelimitedArrayParam(codecs.WithOptions(options))
		},
	},
	"delimited-numeric-array": {
		read: readNumbers,
		config: func(options codecs.Options) params.Config {
			return params.NewDelimitedNumericArrayParam(codecs.WithOptions(options))
		},
	},
	"object": {
		read: func(args []string) (v any, err error) {
			m := make(map[string]string, len(args))
			for _, arg := range args {
				key, value, _ := strings.Cut(arg, "=")
				m[key] = value
			}
			v = m
			return
		},
		config: func(options codecs.Options) params.Config {
			return params.NewObjectParam(codecs.WithOptions(options))
		},
	},
	"numeric-object": {
		read: func(args []string) (v any, err error) {
			m := make(map[string]float64, len(args))
			for _, arg := range args {
				key, value, _ := strings.Cut(arg, "=")
				n, parseErr := strconv.ParseFloat(value, 64)
				if parseErr != nil {
					err = parseErr
					return
				}
				m[key] = n
			}
			v = m
			return
		},
		config: func(options codecs.Options) params.Config {
			return params.NewNumericObjectParam(codecs.WithOptions(options))
		},
	},
}

func fixed(config params.Config) func(options codecs.Options) params.Config {
	return func(_ codecs.Options) params.Config {
		return config
	}
}

func readStrings(args []string) (v any, err error) {
	v = args
	return
}

func readNumbers(args []string) (v any, err error) {
	numbers := make([]float64, 0, len(args))
	for _, arg := range args {
		n, parseErr := strconv.ParseFloat(arg, 64)
		if parseErr != nil {
			err = parseErr
			return
		}
		numbers = append(numbers, n)
	}
	v = numbers
	return
}

func kindNames() string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func getKind(name string) (k kind, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	has := false
	k, has = kinds[name]
	if !has {
		err = errors.Warning("qps: kind is not supported").WithMeta("kind", name).WithCause(fmt.Errorf("kind must be one of %s", kindNames()))
		return
	}
	return
}
