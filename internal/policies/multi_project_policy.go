package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"snyk-scan-eval/internal/ports"
	"snyk-scan-eval/internal/types"
)

// DefaultMultiProjectPatterns lists package managers known to report one
// declared manifest as several scanned projects.
var DefaultMultiProjectPatterns = []string{"gradle"}

// MultiProjectPolicy decides which package managers may report more scan
// events than declared manifests. Patterns are exact names, prefixes
// ending in "*", or "*" alone.
type MultiProjectPolicy struct {
	Patterns []string
	exact    map[types.PackageManagerID]struct{}
	prefixes []string
	wildcard bool
}

func NewMultiProjectPolicy(patterns []string) (MultiProjectPolicy, error) {
	policy := MultiProjectPolicy{}
	for _, pattern := range patterns {
		if _, ok := parsePattern(pattern); !ok {
			return MultiProjectPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid multi-project pattern %q", pattern))
		}
		policy.Patterns = append(policy.Patterns, strings.TrimSpace(pattern))
	}
	policy.compile()
	return policy, nil
}

// DefaultMultiProjectPolicy matches only gradle.
func DefaultMultiProjectPolicy() MultiProjectPolicy {
	policy, _ := NewMultiProjectPolicy(DefaultMultiProjectPatterns)
	return policy
}

func (p MultiProjectPolicy) MayMultiplyReport(id types.PackageManagerID) bool {
	if p.wildcard {
		return true
	}
	if _, ok := p.exact[id]; ok {
		return true
	}
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(string(id), prefix) {
			return true
		}
	}
	return false
}

type patternKind int

const (
	patternExact patternKind = iota
	patternPrefix
	patternWildcard
	patternInvalid
)

type parsedPattern struct {
	kind patternKind
	name string
}

func (p *MultiProjectPolicy) compile() {
	p.exact = map[types.PackageManagerID]struct{}{}
	p.prefixes = nil
	p.wildcard = false
	for _, pattern := range p.Patterns {
		parsed, ok := parsePattern(pattern)
		if !ok {
			continue
		}
		switch parsed.kind {
		case patternWildcard:
			p.wildcard = true
		case patternExact:
			p.exact[types.PackageManagerID(parsed.name)] = struct{}{}
		case patternPrefix:
			p.prefixes = append(p.prefixes, parsed.name)
		}
	}
}

func parsePattern(value string) (parsedPattern, bool) {
	pattern := strings.TrimSpace(value)
	if pattern == "" || strings.ContainsAny(pattern, " \t") {
		return parsedPattern{kind: patternInvalid}, false
	}
	if pattern == "*" {
		return parsedPattern{kind: patternWildcard}, true
	}
	if strings.HasSuffix(pattern, "*") {
		name := strings.TrimSuffix(pattern, "*")
		if strings.Contains(name, "*") {
			return parsedPattern{kind: patternInvalid}, false
		}
		return parsedPattern{kind: patternPrefix, name: name}, true
	}
	if strings.Contains(pattern, "*") {
		return parsedPattern{kind: patternInvalid}, false
	}
	return parsedPattern{kind: patternExact, name: pattern}, true
}

var _ ports.MultiProjectPolicyPort = MultiProjectPolicy{}
