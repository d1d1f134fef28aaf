package cli

import (
	"fmt"
	"strings"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
)

// ContinuePolicy decides whether the interactive loop keeps going after a
// cycle, given the outcome of the reload step.
type ContinuePolicy string

const (
	// ContinueAlways keeps looping whatever the reload outcome was.
	ContinueAlways ContinuePolicy = "always"
	// ContinueOnReloadSuccess stops the loop after a reload that did not succeed.
	ContinueOnReloadSuccess ContinuePolicy = "reload-success"
)

var continuePolicies = []ContinuePolicy{ContinueAlways, ContinueOnReloadSuccess}

// ParseContinuePolicy returns the policy named by value.
func ParseContinuePolicy(value string) (ContinuePolicy, error) {
	for _, policy := range continuePolicies {
		if string(policy) == value {
			return policy, nil
		}
	}
	names := make([]string, 0, len(continuePolicies))
	for _, policy := range continuePolicies {
		names = append(names, string(policy))
	}
	return "", fmt.Errorf("unknown continue policy %q, must be one of %s", value, strings.Join(names, ", "))
}

// ShouldContinue reports whether another cycle should start.
// A reload that was skipped because reloading is disabled is passed as an OK result.
func (p ContinuePolicy) ShouldContinue(reload external.Result) bool {
	switch p {
	case ContinueOnReloadSuccess:
		return reload.Succeeded()
	default:
		return true
	}
}

// String implements pflag.Value.
func (p *ContinuePolicy) String() string {
	if *p == "" {
		return string(ContinueAlways)
	}
	return string(*p)
}

// Set implements pflag.Value.
func (p *ContinuePolicy) Set(value string) error {
	policy, err := ParseContinuePolicy(value)
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Type implements pflag.Value.
func (p *ContinuePolicy) Type() string {
	return "policy"
}
