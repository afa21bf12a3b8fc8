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

package codecs

import (
	"github.com/aacfactory/errors"
	"github.com/aacfactory/queryparams/commons/times"
	"strings"
	"time"
)

// EncodeDate encodes the calendar day of t as Y-MM-DD. The zero time is absent.
func EncodeDate(t time.Time) Value {
	if t.IsZero() {
		return Absent()
	}
	return Scalar(times.DateOf(t).String())
}

// DecodeDate decodes '2015', '2015-10' or '2015-10-01' into a local time.
// A missing month is January and a missing day is the first.
// Further dash separated parts are read as hour, minute, second and millisecond,
// anything after the millisecond is ignored.
func DecodeDate(v Value) (t time.Time, ok bool) {
	s, has := v.First()
	if !has || s == "" {
		return
	}
	var err error
	t, err = parseDate(s, time.Local)
	ok = err == nil
	return
}

const maxDateParts = 7

func parseDate(s string, loc *time.Location) (t time.Time, err error) {
	parts := strings.Split(s, "-")
	if len(parts) > maxDateParts {
		parts = parts[:maxDateParts]
	}
	components := make([]float64, 0, 3)
	for _, part := range parts {
		n, coerceErr := coerceNumber(part)
		if coerceErr != nil {
			err = errors.Warning("queryparams: parse date failed").WithMeta("date", s).WithCause(coerceErr)
			return
		}
		components = append(components, n)
	}
	if len(components) > 1 {
		components[1] = components[1] - 1
	} else {
		components = append(components, 0, 1)
	}
	t, err = times.Compose(components, loc)
	if err != nil {
		err = errors.Warning("queryparams: parse date failed").WithMeta("date", s).WithCause(err)
		return
	}
	return
}
