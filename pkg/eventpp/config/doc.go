/*
Package config provides type-safe configuration extraction from map[string]any,
plus constructors that turn a Config into the policy types callbacklist and
eventqueue expect.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
This is useful for extracting configuration values from YAML/JSON structures
without verbose type assertions and nil checks.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "threading":            "single",
	    "default_wait_timeout": "5s",
	})

	listPolicy := config.ListPolicyFromConfig(cfg)
	queuePolicy := config.QueuePolicyFromConfig[string](cfg)

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("eventpp.yaml")
	if err != nil {
	    log.Fatal(err)
	}

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation. However, if the original map is modified
externally, behavior is undefined.
*/
package config
