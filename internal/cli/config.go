package cli

import (
	"fmt"

	"github.com/mbusb/makeusb/internal/common"
	"github.com/mbusb/makeusb/internal/config"
)

// ConfigValue resolves the effective value of a configuration key: the file
// value when set, the built-in default otherwise.
func ConfigValue(ctx *MakeContext, key string) (string, error) {
	if _, known := config.Defaults[key]; !known {
		return "", &ExitError{Code: ExitUsage, Err: fmt.Errorf("unknown config key: %s", key)}
	}
	return ctx.Config.GetOrDefault(key, ""), nil
}

// SetConfigValue validates and persists a configuration value. The schema
// version is stamped into the file alongside the first write.
func SetConfigValue(ctx *MakeContext, key, value string) error {
	if _, known := config.Defaults[key]; !known {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("unknown config key: %s", key)}
	}
	if key == config.KeyVolumeLabel {
		if err := common.ValidateVolumeLabel(value); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
	}

	if !ctx.Config.Exists(config.KeyConfigVersion) {
		if err := ctx.Config.Set(config.KeyConfigVersion, config.Defaults[config.KeyConfigVersion]); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	if err := ctx.Config.Set(key, value); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	ctx.UI.Successf("%s = %s", key, value)
	return nil
}
