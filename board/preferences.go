package board

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window      WindowPreferences
		LastProject string `yaml:"lastproject"`
		YmlError    error  `yaml:"-"`
	}

	WindowPreferences struct {
		Width  int
		Height int
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	path, err := customConfigPath(filename)
	if err != nil {
		return false, err
	}
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.Unmarshal(bytes, target)
	return true, err
}

func customConfigPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pywave", filename), nil
}

// MakePreferences loads the embedded defaults, overridden by the user's
// preferences.yml if one exists. A broken user file is reported through
// YmlError but never prevents startup.
func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

// Save writes the preferences to the user's config directory, creating it
// if needed.
func (p Preferences) Save() error {
	path, err := customConfigPath("preferences.yml")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	bytes, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0644)
}
