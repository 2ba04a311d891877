package config

import (
	"github.com/mediabuff/eventpp/pkg/eventpp/callbacklist"
	"github.com/mediabuff/eventpp/pkg/eventpp/eventqueue"
)

// ListPolicyFromConfig builds a callbacklist.ListPolicy from cfg.
// Recognized keys:
//   - "threading": "multi" (default) or "single"
func ListPolicyFromConfig(cfg Config) callbacklist.ListPolicy {
	policy := callbacklist.DefaultListPolicy()
	if cfg.String("threading", "multi") == "single" {
		policy.Threading = callbacklist.ThreadingSingle
	}
	return policy
}

// QueuePolicyFromConfig builds an eventqueue.QueuePolicy[Key] from cfg.
// Recognized keys:
//   - "argument_passing_mode": "value" (default) or "reference"
//   - "default_wait_timeout": a duration string, e.g. "5s"
//
// Lookup and OnDispatchError are not configurable from a file, since they
// carry live Go values (a Registry's method, a callback closure), so
// callers set those fields on the returned policy directly:
//
//	policy := config.QueuePolicyFromConfig[string](cfg)
//	policy.Lookup = registry.Lookup
func QueuePolicyFromConfig[Key comparable](cfg Config) eventqueue.QueuePolicy[Key] {
	var policy eventqueue.QueuePolicy[Key]
	if cfg.String("argument_passing_mode", "value") == "reference" {
		policy.ArgumentPassingMode = eventqueue.ByReference
	}
	policy.DefaultWaitTimeout = cfg.Duration("default_wait_timeout", 0)
	return policy
}
