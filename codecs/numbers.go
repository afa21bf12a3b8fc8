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
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// coerceNumber converts s the way a unary plus does: surrounding white space is
// ignored, a blank string is zero, 0x/0o/0b prefixes are integers in that base
// and Infinity is accepted with an optional sign. Anything else is an error.
func coerceNumber(s string) (n float64, err error) {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return
	}
	switch s {
	case "Infinity", "+Infinity":
		n = math.Inf(1)
		return
	case "-Infinity":
		n = math.Inf(-1)
		return
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base > 0 {
			if s[2] == '+' || s[2] == '-' {
				err = errors.Warning("queryparams: coerce number failed").WithMeta("value", s)
				return
			}
			i, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				err = errors.Warning("queryparams: coerce number failed").WithMeta("value", s).WithMeta("base", strconv.Itoa(base))
				return
			}
			n, _ = new(big.Float).SetInt(i).Float64()
			return
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			continue
		}
		err = errors.Warning("queryparams: coerce number failed").WithMeta("value", s)
		return
	}
	n, err = strconv.ParseFloat(s, 64)
	if err != nil {
		numErr, ok := err.(*strconv.NumError)
		if ok && numErr.Err == strconv.ErrRange {
			// n is already ±Inf or ±0
			err = nil
			return
		}
		err = errors.Warning("queryparams: coerce number failed").WithMeta("value", s).WithCause(err)
		return
	}
	return
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// formatNumber renders n like String(n) in a browser: integers without a
// fraction, exponent form beyond 1e21 and below 1e-6.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		exp = strings.TrimLeft(exp[1:], "0")
		if exp == "" {
			exp = "0"
		}
		return mantissa + "e" + string(sign) + exp
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func isNumber(n float64) bool {
	return !math.IsNaN(n)
}
