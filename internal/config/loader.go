package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/outslept/whimsy/internal/errors"
	"github.com/outslept/whimsy/internal/logger"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".whimsy.yaml"
	// GlobalConfigDir is the directory for global config, under home.
	GlobalConfigDir = ".config/whimsy"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'whimsy init' to create one, or specify a file with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .whimsy.yaml in current directory
// 3. .whimsy.yaml in parent directories (stops at git root or home)
// 4. ~/.config/whimsy/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		logger.Default().Debug("config: using explicit file %s", explicit)
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		logger.Default().Debug("config: found %s", localConfig)
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			logger.Default().Debug("config: found %s in parent directory", configPath)
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			logger.Default().Debug("config: using global file %s", globalConfig)
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// when no config exists anywhere on the search path. Commands that
// work without a config file go through this.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		logger.Default().Debug("config: no file found, using defaults")
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}

// setDefaults seeds viper so keys missing from the file keep their
// built-in values after Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.color", "auto")
	v.SetDefault("sanitize.tab", "    ")
	v.SetDefault("sanitize.newline", "\n")
	v.SetDefault("sanitize.normalize", "none")
	v.SetDefault("widgets.spinner", "braille")
	v.SetDefault("widgets.progress_width", 30)
	v.SetDefault("widgets.filter_height", 10)
}
