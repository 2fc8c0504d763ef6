// Package config resolves the build/match Config and the ambient CLI
// knobs from three layered sources, lowest precedence first: compiled-in
// defaults, an optional TOML file loaded through github.com/spf13/viper
// (github.com/pelletier/go-toml/v2 underneath), and named YAML sweep
// presets (gopkg.in/yaml.v3) selected with --preset. CLI
// flags are applied on top by the caller, after Load returns, using
// cobra's Changed() to override only flags the user actually set.
package config
