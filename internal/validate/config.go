package validate

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vibejam/glaze/internal/config"
)

// Config validates the glaze configuration file. A missing file is fine;
// defaults cover everything.
func Config(_ context.Context) Result {
	result := Result{}

	path, err := config.Path()
	if err != nil {
		result.Add(StatusError, "config.yaml", err.Error())
		return result
	}

	if _, err := os.Stat(path); err != nil {
		result.Add(StatusPending, "config.yaml", "not found, defaults in use")
		return result
	}

	loaded, err := config.Load(path)
	if err == nil {
		err = loaded.Validate()
	}
	if err != nil {
		result.Add(StatusError, filepath.Base(path), err.Error())
		return result
	}

	result.Add(StatusSuccess, filepath.Base(path), path)
	return result
}
