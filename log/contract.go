// SPDX-License-Identifier: ice License 1.0

package log

// Private API.

type (
	cfg struct {
		Encoder string `yaml:"encoder" mapstructure:"encoder"`
		Level   string `yaml:"level" mapstructure:"level"`
	}
)

const (
	applicationYamlKey = "logger"
)

//nolint:gochecknoglobals // Immutable defaults for applications that configure nothing.
var defaultCfg = cfg{Encoder: "console", Level: "info"}
