package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChandlerVer5/vite-plugin-utools/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Option keys.
const (
	KeyConfigFile = "config_file"
	KeyGlobalName = "global_name"
	KeyTypesFile  = "types_file"
	KeyAutoType   = "auto_type"
)

// Options are the resolved build options.
type Options struct {
	ConfigFile string `mapstructure:"config_file"`
	GlobalName string `mapstructure:"global_name"`
	TypesFile  string `mapstructure:"types_file"`
	AutoType   bool   `mapstructure:"auto_type"`
}

// Keys lists the settable option keys.
var Keys = []string{KeyConfigFile, KeyGlobalName, KeyTypesFile, KeyAutoType}

// FilePath returns the project options file for workDir.
func FilePath(workDir string) string {
	return filepath.Join(workDir, branding.ProjectFile())
}

// Load builds a viper instance reading the project file in workDir and the
// environment. A missing project file is not an error.
func Load(workDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyConfigFile, "plugin.json")
	v.SetDefault(KeyGlobalName, "preload")
	v.SetDefault(KeyTypesFile, "preload.d.ts")
	v.SetDefault(KeyAutoType, false)

	v.SetConfigFile(FilePath(workDir))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", FilePath(workDir), err)
	}
	return v, nil
}

// Decode returns the options held by v.
func Decode(v *viper.Viper) (*Options, error) {
	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	return &opts, nil
}

// Set writes a key-value pair to the project file in workDir.
func Set(workDir, key, value string) error {
	if err := CheckKey(key); err != nil {
		return err
	}

	v, err := Load(workDir)
	if err != nil {
		return err
	}
	v.Set(key, value)

	configFile := FilePath(workDir)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// CheckKey returns an error unless key is one of Keys.
func CheckKey(key string) error {
	for _, k := range Keys {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown option %q (valid: %s)", key, strings.Join(Keys, ", "))
}

func isNotExist(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}
