//go:build argtypes_noyaml

package commands

import (
	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

func yamlOptions(string) []argtypes.Option {
	return nil
}
