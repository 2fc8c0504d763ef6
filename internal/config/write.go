package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// WriteDefault serializes cfg as TOML, the format Load reads back. It
// backs `heterolattice config init`, which writes a starting point a
// user can then hand-edit and point --config at.
func WriteDefault(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encoding defaults: %w", err)
	}

	return nil
}
