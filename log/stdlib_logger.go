// SPDX-License-Identifier: ice License 1.0
//go:build !zerolog

package log

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/timestamp/config"
)

// .
var (
	//nolint:gochecknoglobals // Immutable singleton.
	appCfg cfg
	//nolint:gochecknoglobals // Immutable lookup table.
	severities = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}
)

//nolint:gochecknoinits // log is global, so it's initialization can be done in init
func init() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix | log.LUTC | log.Lshortfile | log.Lmicroseconds)
	config.MustLoadFromKeyWithDefaults(applicationYamlKey, &appCfg, &defaultCfg)
}

func enabled(level string) bool {
	configured, found := severities[strings.ToLower(appCfg.Level)]
	if !found {
		configured = severities[defaultCfg.Level]
	}

	return severities[level] >= configured
}

func output(prefix, msg string, fields ...any) {
	vars := make([]string, 0, len(fields)+1)
	for i := 0; i <= len(fields); i++ {
		vars = append(vars, "%v")
	}
	vals := make([]any, 0, len(fields)+1)
	vals = append(vals, msg)
	vals = append(vals, fields...)

	//nolint:errcheck // Nothing to do if stderr is gone.
	_ = log.Output(3, fmt.Sprintf(fmt.Sprintf("%v:%v", prefix, strings.Join(vars, " ")), vals...)) //nolint:gomnd // Skips output and its caller.
}

func Error(err error, fields ...any) {
	if err == nil || !enabled("error") {
		return
	}
	output("ERROR", err.Error(), fields...)
}

func Debug(msg string, fields ...any) {
	if !enabled("debug") {
		return
	}
	output("DEBUG", msg, fields...)
}

func Info(msg string, fields ...any) {
	if !enabled("info") {
		return
	}
	output("INFO", msg, fields...)
}

func Warn(msg string, fields ...any) {
	if !enabled("warn") {
		return
	}
	output("WARN", msg, fields...)
}

func Fatal(anything any, fields ...any) {
	if anything == nil {
		return
	}
	defer os.Exit(1)
	Error(asError(anything), fields...)
}

func Panic(anything any, fields ...any) {
	if anything == nil {
		return
	}
	defer func() {
		panic(anything)
	}()
	Error(asError(anything), fields...)
}

func asError(anything any) error {
	switch obj := anything.(type) {
	case error:
		return obj
	case string:
		return errors.New(obj)
	default:
		return errors.Errorf("%#v", obj)
	}
}

func Level() string {
	return appCfg.Level
}
