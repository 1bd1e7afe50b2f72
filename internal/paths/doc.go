// Package paths resolves the filesystem locations the argtypes CLI reads its
// own configuration from.
//
// Locations follow the XDG Base Directory Specification through
// github.com/adrg/xdg: on Linux the config file lives at
// ~/.config/argtypes/config.yaml. Setting ARGTYPES_CONFIG_DIR overrides the
// directory, which tests use to stay away from the real user config.
package paths
