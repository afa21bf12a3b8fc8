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

package logs

import (
	"github.com/aacfactory/errors"
	"github.com/aacfactory/logs"
	"strings"
	"time"
)

const (
	TextConsoleFormatter         = ConsoleFormatter("text")
	TextColorfulConsoleFormatter = ConsoleFormatter("text_colorful")
	JsonConsoleFormatter         = ConsoleFormatter("json")
)

type ConsoleFormatter string

func (formatter ConsoleFormatter) Code() logs.ConsoleWriterFormatter {
	switch formatter {
	case TextColorfulConsoleFormatter:
		return logs.ColorTextFormatter
	case JsonConsoleFormatter:
		return logs.JsonFormatter
	default:
		return logs.TextFormatter
	}
}

const (
	Stderr = ConsoleWriterOutType("stderr")
	Stdmix = ConsoleWriterOutType("stdout_stderr")
)

type ConsoleWriterOutType string

func (ot ConsoleWriterOutType) Code() logs.ConsoleWriterOutType {
	switch ot {
	case Stderr:
		return logs.StdErr
	default:
		return logs.StdMix
	}
}

const (
	Debug = Level("debug")
	Info  = Level("info")
	Warn  = Level("warn")
	Error = Level("error")
)

type Level string

func (level Level) Code() logs.Level {
	switch level {
	case Debug:
		return logs.DebugLevel
	case Warn:
		return logs.WarnLevel
	case Error:
		return logs.ErrorLevel
	default:
		return logs.InfoLevel
	}
}

// Config is the logging section of the qps config file.
// Quiet turns the console writer off, ShutdownTimeout bounds the flush on exit.
type Config struct {
	Level           Level                `json:"level,omitempty" yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Formatter       ConsoleFormatter     `json:"formatter,omitempty" yaml:"formatter,omitempty" validate:"omitempty,oneof=text text_colorful json"`
	Console         ConsoleWriterOutType `json:"console,omitempty" yaml:"console,omitempty" validate:"omitempty,oneof=stderr stdout_stderr"`
	Quiet           bool                 `json:"quiet,omitempty" yaml:"quiet,omitempty"`
	ShutdownTimeout string               `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

func (config Config) options() (options []logs.Option, err error) {
	options = append(options, logs.WithLevel(config.Level.Code()))
	if config.Quiet {
		options = append(options, logs.DisableConsoleWriter())
	} else {
		options = append(options,
			logs.WithConsoleWriterOutType(config.Console.Code()),
			logs.WithConsoleWriterFormatter(config.Formatter.Code()),
		)
	}
	if raw := strings.TrimSpace(config.ShutdownTimeout); raw != "" {
		timeout, parseErr := time.ParseDuration(raw)
		if parseErr != nil {
			err = errors.Warning("queryparams: invalid log shutdown timeout").WithMeta("shutdownTimeout", raw).WithCause(parseErr)
			return
		}
		if timeout <= 0 {
			err = errors.Warning("queryparams: log shutdown timeout must be positive").WithMeta("shutdownTimeout", raw)
			return
		}
		options = append(options, logs.WithShutdownTimeout(timeout))
	}
	return
}

// New builds the console logger used by the qps commands.
func New(config Config) (v Logger, err error) {
	options, optionsErr := config.options()
	if optionsErr != nil {
		err = errors.Warning("queryparams: new log failed").WithCause(optionsErr)
		return
	}
	logger, newErr := logs.New(options...)
	if newErr != nil {
		err = errors.Warning("queryparams: new log failed").WithCause(newErr)
		return
	}
	v = logger
	return
}

type Logger interface {
	logs.Logger
}
