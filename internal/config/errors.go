package config

import "errors"

// ErrPresetNotFound indicates --preset named a bundle not present in
// the embedded presets document.
var ErrPresetNotFound = errors.New("config: preset not found")
