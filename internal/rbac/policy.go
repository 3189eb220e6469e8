package rbac

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy is the on-disk form of registry overrides
//
//	roles:
//	  event_head: 75
//	capabilities:
//	  promote_members: 90
type Policy struct {
	Roles        map[Role]int       `yaml:"roles"`
	Capabilities map[Capability]int `yaml:"capabilities"`
}

// Options converts the policy into registry options
func (p *Policy) Options() []Option {
	var opts []Option
	for role, priority := range p.Roles {
		opts = append(opts, WithRolePriority(role, priority))
	}
	for capability, min := range p.Capabilities {
		opts = append(opts, WithCapabilityMinPriority(capability, min))
	}
	return opts
}

// ParsePolicy decodes a YAML policy document
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse role policy: %w", err)
	}
	return &p, nil
}

// LoadPolicy reads a YAML policy file. An empty path yields an empty policy.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return &Policy{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role policy %s: %w", path, err)
	}
	return ParsePolicy(data)
}
