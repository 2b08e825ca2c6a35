package cmn

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const VERSION = "0.1.0"
const CONFIG_NAME = "config.yaml"
const CONFIG_ENV = "HWPARAMS_CONFIG"

var AppName = "hwparams"
var ConfPath = CONFIG_NAME

type SConfig struct {
	Verbosity string `yaml:"verbosity"`  // log verbosity
	CoinsFile string `yaml:"coins_file"` // extra coin definitions merged over the predefined ones
}

var Config *SConfig = DefaultConfig()

func DefaultConfig() *SConfig {
	return &SConfig{
		Verbosity: "warn",
	}
}

// InitConfig sets up the console logger on out and loads the config file.
// path overrides $HWPARAMS_CONFIG, which overrides <data folder>/config.yaml.
func InitConfig(out io.Writer, path string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, NoColor: true})

	if path == "" {
		path = os.Getenv(CONFIG_ENV)
	}
	if path == "" {
		dataFolder, err := GetDataFolder()
		if err != nil {
			log.Warn().Msgf("error getting data folder: %v", err)
		} else {
			path = filepath.Join(dataFolder, CONFIG_NAME)
		}
	}

	if path != "" {
		ConfPath = path
		if err := RestoreConfig(path); err != nil {
			return err
		}
	}

	SetVerbosity(Config.Verbosity)
	log.Debug().Msgf("Config: %s, log level: %s", ConfPath, zerolog.GlobalLevel())
	return nil
}

func SetVerbosity(verbosity string) {
	level, err := zerolog.ParseLevel(verbosity)
	if err != nil || verbosity == "" {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
}

// RestoreConfig reads path into Config. A missing file keeps the defaults.
func RestoreConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Msgf("no config file found: %v", err)
			return nil
		}
		return fmt.Errorf("error reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config %s: %w", path, err)
	}

	if cfg.CoinsFile != "" && !filepath.IsAbs(cfg.CoinsFile) {
		cfg.CoinsFile = filepath.Join(filepath.Dir(path), cfg.CoinsFile)
	}

	Config = cfg
	return nil
}

func SaveConfig(path string) error {
	data, err := yaml.Marshal(Config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}

// GetDataFolder returns <user config dir>/hwparams. The folder is not
// created: a missing config file keeps the defaults.
func GetDataFolder() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config folder: %w", err)
	}
	return filepath.Join(base, AppName), nil
}
