// SPDX-License-Identifier: ice License 1.0

package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//nolint:gochecknoinits // Because we load the configs once, for the whole runtime
func init() {
	loadFirstApplicationConfigFile()
	dotEnvPath := `.env`
	for range 5 {
		if err := godotenv.Load(dotEnvPath); err == nil {
			break
		}
		dotEnvPath = fmt.Sprintf(`../%v`, dotEnvPath)
	}
}

func MustLoadFromKey(key string, cfg any) {
	if err := viper.UnmarshalKey(key, cfg); err != nil {
		log.Panic(errors.Wrapf(err, "failed to load config by key %q", key))
	}
}

// MustLoadFromKeyWithDefaults loads the key into cfg and then fills every field left zero with the one from defaults.
// Both cfg and defaults have to be pointers to the same struct type.
func MustLoadFromKeyWithDefaults(key string, cfg, defaults any) {
	MustLoadFromKey(key, cfg)
	if err := mergo.Merge(cfg, defaults); err != nil {
		log.Panic(errors.Wrapf(err, "failed to apply defaults for config key %q", key))
	}
}

// A library can be imported by applications without any application.yaml, so a missing file only leaves viper empty.
func loadFirstApplicationConfigFile() {
	for _, f := range findAllApplicationConfigFiles() {
		viper.SetConfigFile(f)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(err)
		}
	}
}

func findAllApplicationConfigFiles() []string {
	var files []string
	var hints []string

	if p, err := os.Getwd(); err == nil {
		hints = append(hints, p)
	}
	if p, err := os.Executable(); err == nil {
		hints = append(hints, path.Dir(filepath.Join(p, "..")))
	}

	for _, dir := range hints {
		for _, pattern := range []string{
			filepath.Join(dir, ".testdata", "application.yaml"),
			filepath.Join(dir, "application.yaml"),
		} {
			files = append(files, glob(pattern)...)
		}
	}
	files = append(files, relativeFiles()...)

	return files
}

func relativeFiles() []string {
	var files []string
	//nolint:dogsled // Because those 3 blank identifiers are useless
	_, callerFile, _, _ := runtime.Caller(0)
	files = append(files, glob(filepath.Join(filepath.Dir(callerFile), "..", "application.yaml"))...)
	files = append(files, glob(filepath.Join(filepath.Dir(callerFile), "..", "..", "application.yaml"))...)

	return files
}

func glob(pattern string) []string {
	f, err := filepath.Glob(pattern)
	if err != nil {
		log.Println(errors.Wrapf(err, "glob failed for [%v]", pattern))

		return nil
	}

	return f
}
