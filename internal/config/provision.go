package config

import (
	"os"

	apperrors "github.com/consensuslabs/model-builder/internal/errors"
)

const outputDirPerm = 0o755

// ensureDir creates path and any missing parents. An existing directory is
// not an error; a file in the way is.
func ensureDir(path string) error {
	if err := os.MkdirAll(path, outputDirPerm); err != nil {
		return apperrors.NewProvisionError(path, err)
	}
	return nil
}
