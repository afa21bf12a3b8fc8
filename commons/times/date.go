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

package times

import (
	"fmt"
	"github.com/aacfactory/errors"
	"math"
	"strconv"
	"time"
)

const (
	// maxMillis bounds the representable instants to ±100,000,000 days around the epoch.
	maxMillis = 8.64e15
)

var (
	// component bounds in Compose order: year, month, day, hour, minute, second, millisecond.
	componentNames  = [7]string{"year", "month", "day", "hour", "minute", "second", "millisecond"}
	componentLimits = [7]float64{275761, 275761 * 12, 1e8 + 1, 2.4e9 + 24, 1.44e11 + 60, 8.64e12 + 60, 8.64e12}
)

func NewDate(year int, month time.Month, day int) Date {
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
	}
}

func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Date is a calendar day without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String renders the date as Y-MM-DD. The year is not padded.
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", strconv.Itoa(d.Year), int(d.Month), d.Day)
}

func (d Date) ToTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Compose builds an instant from calendar components the way a date constructor
// taking (year, monthIndex, day, hour, minute, second, millisecond) does.
// The month is zero based, the day defaults to 1 and every other missing
// component to 0. Fractions are truncated and overflowing components carry
// into the next larger unit. Non finite components and instants outside
// ±8.64e15 milliseconds from the epoch are invalid. Components after the
// millisecond are ignored.
func Compose(components []float64, loc *time.Location) (t time.Time, err error) {
	if len(components) > len(componentNames) {
		components = components[:len(componentNames)]
	}
	if len(components) == 0 {
		err = errors.Warning("queryparams: compose date failed").WithMeta("components", strconv.Itoa(len(components)))
		return
	}
	if loc == nil {
		loc = time.Local
	}
	values := [7]int64{0, 0, 1, 0, 0, 0, 0}
	for i, c := range components {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			err = errors.Warning("queryparams: compose date failed").WithMeta(componentNames[i], "not finite")
			return
		}
		c = math.Trunc(c)
		if math.Abs(c) > componentLimits[i] {
			err = errors.Warning("queryparams: compose date failed").WithMeta(componentNames[i], "out of range")
			return
		}
		values[i] = int64(c)
	}
	t = time.Date(
		int(values[0]), time.Month(values[1]+1), int(values[2]),
		int(values[3]), int(values[4]), int(values[5]), 0,
		loc,
	).Add(time.Duration(values[6]) * time.Millisecond)
	if ms := float64(t.UnixMilli()); ms > maxMillis || ms < -maxMillis {
		err = errors.Warning("queryparams: compose date failed").WithMeta("instant", "out of range")
		t = time.Time{}
		return
	}
	return
}
