//go:build !argtypes_noyaml

package commands

import (
	"github.com/thoreinstein/argtypes/internal/config"
	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

// yamlOptions selects the YAML decoder named by the yaml_loader setting.
func yamlOptions(loader string) []argtypes.Option {
	if loader == config.YAMLLoaderGoccy {
		return []argtypes.Option{argtypes.WithYAMLLoader(argtypes.GoccyYAMLLoader())}
	}
	return nil
}
