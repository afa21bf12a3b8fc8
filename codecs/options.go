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

const (
	DefaultEntrySeparator    = "_"
	DefaultKeyValueSeparator = "-"
)

// Options are the separators used by the delimited array and flat object codecs.
type Options struct {
	// EntrySeparator delimits array elements and object entries. Default is "_".
	EntrySeparator string
	// KeyValueSeparator delimits a key from its value inside an object entry. Default is "-".
	KeyValueSeparator string
}

type Option func(options *Options)

func WithEntrySeparator(sep string) Option {
	return func(options *Options) {
		options.EntrySeparator = sep
	}
}

func WithKeyValueSeparator(sep string) Option {
	return func(options *Options) {
		options.KeyValueSeparator = sep
	}
}

// WithOptions replaces every separator at once, typically with values read from config.
func WithOptions(v Options) Option {
	return func(options *Options) {
		*options = v
	}
}

func DefaultOptions() Options {
	return Options{
		EntrySeparator:    DefaultEntrySeparator,
		KeyValueSeparator: DefaultKeyValueSeparator,
	}
}

func newOptions(options []Option) Options {
	opt := DefaultOptions()
	for _, option := range options {
		if option == nil {
			continue
		}
		option(&opt)
	}
	if opt.EntrySeparator == "" {
		opt.EntrySeparator = DefaultEntrySeparator
	}
	if opt.KeyValueSeparator == "" {
		opt.KeyValueSeparator = DefaultKeyValueSeparator
	}
	return opt
}
