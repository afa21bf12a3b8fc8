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

package params

import (
	"github.com/aacfactory/queryparams/codecs"
	"github.com/aacfactory/queryparams/queries"
)

// ConfigMap binds parameter names to their configs.
type ConfigMap map[string]Config

// EncodeQueryParams encodes values with the config of each name.
// Names without a config pass through when they already are a string, a []string
// or a codecs.Value. Everything else is absent.
func EncodeQueryParams(configs ConfigMap, values map[string]any) queries.Query {
	query := make(queries.Query, len(values))
	for name, value := range values {
		config, has := configs[name]
		if has && config != nil {
			query[name] = config.Encode(value)
			continue
		}
		query[name] = passthrough(value)
	}
	return query
}

// DecodeQueryParams decodes query with the config of each name.
// Absent results are left out, names without a config keep their codecs.Value.
func DecodeQueryParams(configs ConfigMap, query queries.Query) map[string]any {
	values := make(map[string]any, len(query))
	for name, value := range query {
		config, has := configs[name]
		if !has || config == nil {
			values[name] = value
			continue
		}
		decoded, ok := config.Decode(value)
		if !ok {
			continue
		}
		values[name] = decoded
	}
	return values
}

func passthrough(value any) codecs.Value {
	switch v := value.(type) {
	case codecs.Value:
		return v
	case string:
		return codecs.Scalar(v)
	case []string:
		if v == nil {
			return codecs.Absent()
		}
		return codecs.Repeated(v...)
	default:
		return codecs.Absent()
	}
}
