package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadFileDefaults reads a flat YAML document keyed by environment variable
// names (APP_PORT: 9000) and returns the values as strings.
// An empty path yields no defaults.
func loadFileDefaults(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		values[key] = fmt.Sprint(value)
	}
	log.WithField("path", path).Infof("Loaded %d configuration defaults from file", len(values))
	return values, nil
}
