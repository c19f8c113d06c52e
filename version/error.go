package version

import (
	"errors"
	"fmt"
)

var ErrNoVersionProvided = errors.New("no version provided for comparison")

func invalidVersionError(raw string, err error) error {
	return fmt.Errorf("invalid semantic version from '%s': %w", raw, err)
}
