package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mediabuff/eventpp/pkg/eventpp/callbacklist"
	"github.com/mediabuff/eventpp/pkg/eventpp/eventqueue"
)

// FromFile loads configuration from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}

// LoadListPolicy reads path and returns the callbacklist.ListPolicy it
// describes, in one call. Equivalent to FromFile followed by
// ListPolicyFromConfig.
func LoadListPolicy(path string) (callbacklist.ListPolicy, error) {
	cfg, err := FromFile(path)
	if err != nil {
		return callbacklist.ListPolicy{}, err
	}
	return ListPolicyFromConfig(cfg), nil
}

// LoadQueuePolicy reads path and returns the eventqueue.QueuePolicy[Key] it
// describes, in one call. Equivalent to FromFile followed by
// QueuePolicyFromConfig. As with QueuePolicyFromConfig, the caller must
// still set Lookup (and optionally OnDispatchError) on the result, since a
// config file cannot express live Go values.
func LoadQueuePolicy[Key comparable](path string) (eventqueue.QueuePolicy[Key], error) {
	cfg, err := FromFile(path)
	if err != nil {
		return eventqueue.QueuePolicy[Key]{}, err
	}
	return QueuePolicyFromConfig[Key](cfg), nil
}
