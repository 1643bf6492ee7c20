package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/aerobeat/absetup/pkg/errors"
)

// Render marshals a manifest back to TOML. Used by genconfig to print or
// write the effective manifest after overrides are applied.
func Render(m *Manifest) (string, error) {
	out, err := gotoml.Marshal(m)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to marshal manifest")
	}
	return string(out), nil
}
