package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drewhinkson/stylepanel/internal/config"
)

// Config validates the stylepanel configuration file.
func Config(_ context.Context, rootDir, configPath string) Result {
	result := Result{}

	path := configPath
	if path == "" {
		path = filepath.Join(rootDir, config.FileName)
	}

	if _, err := os.Stat(path); err == nil {
		loadedCfg, err := config.Load(path)
		if err != nil {
			result.AddError(fmt.Sprintf("Config: %v", err))
			result.AddItem(StatusError, filepath.Base(path), err.Error())
			return result
		}
		if err := loadedCfg.Validate(); err != nil {
			result.AddError(fmt.Sprintf("Config: %v", err))
			result.AddItem(StatusError, filepath.Base(path), err.Error())
			return result
		}
		result.AddItem(StatusSuccess, filepath.Base(path), "")
		return result
	}

	result.AddWarning("No " + config.FileName + " found")
	result.AddPending(config.FileName + " not found")
	result.AddItem(StatusPending, config.FileName, "not found")
	return result
}
