package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadReport tells where a configuration came from.
type LoadReport struct {
	// Path is the file that was used, empty for the built-in defaults.
	Path string
	// Skipped holds one error per search location that exists but could
	// not be read, parsed or validated.
	Skipped []error
}

// LoadShooter loads the configuration for a shooter variant.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Only an explicit customPath can produce an error.
func LoadShooter(gameID, customPath string) (ShooterConfig, error) {
	cfg, _, err := LoadShooterReport(gameID, customPath)
	return cfg, err
}

// LoadShooterReport is LoadShooter that also reports the search locations
// it had to skip. Missing files are not reported.
func LoadShooterReport(gameID, customPath string) (ShooterConfig, LoadReport, error) {
	var report LoadReport
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, report, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parseShooter(gameID, data)
		if err != nil {
			return ShooterConfig{}, report, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		report.Path = customPath
		return cfg, report, nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			report.Skipped = append(report.Skipped, fmt.Errorf("config: cannot read %s: %w", path, err))
			continue
		}
		cfg, err := parseShooter(gameID, data)
		if err != nil {
			report.Skipped = append(report.Skipped, fmt.Errorf("config: ignoring %s: %w", path, err))
			continue
		}
		report.Path = path
		return cfg, report, nil
	}

	if embedded := GetDefaultYAML(gameID); embedded != nil {
		if cfg, err := parseShooter(gameID, embedded); err == nil {
			return cfg, report, nil
		}
	}
	return DefaultShooterConfig(gameID), report, nil
}

// parseShooter decodes YAML on top of the hardcoded defaults so partial
// files only override the fields they name, then validates the result.
func parseShooter(gameID string, data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig(gameID)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
