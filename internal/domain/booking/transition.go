package booking

import (
	"fmt"
	"strings"
)

type Transition struct {
	From Status
	To   Status
}

// Policy restricts status changes. The zero policy allows any transition,
// matching current yard practice; deployments can tighten it with an
// allowlist without a code change.
type Policy struct {
	allowed map[Transition]struct{}
}

func AllowAllPolicy() Policy {
	return Policy{}
}

func NewPolicy(transitions ...Transition) Policy {
	m := make(map[Transition]struct{}, len(transitions))
	for _, t := range transitions {
		m[t] = struct{}{}
	}
	return Policy{allowed: m}
}

// ParsePolicy reads comma-separated FROM>TO pairs of canonical status
// tokens, e.g. "QUEUED>IN_PROGRESS,IN_PROGRESS>SERVED". An empty spec
// yields the allow-all policy.
func ParsePolicy(spec string) (Policy, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return AllowAllPolicy(), nil
	}

	parts := strings.Split(spec, ",")
	transitions := make([]Transition, 0, len(parts))
	for _, part := range parts {
		fromToken, toToken, ok := strings.Cut(strings.TrimSpace(part), ">")
		if !ok {
			return Policy{}, fmt.Errorf("malformed transition %q", part)
		}
		from, err := ParseStatus(fromToken)
		if err != nil {
			return Policy{}, fmt.Errorf("transition %q: %w", part, err)
		}
		to, err := ParseStatus(toToken)
		if err != nil {
			return Policy{}, fmt.Errorf("transition %q: %w", part, err)
		}
		transitions = append(transitions, Transition{From: from, To: to})
	}
	return NewPolicy(transitions...), nil
}

func (p Policy) Allows(from, to Status) bool {
	if p.allowed == nil {
		return true
	}
	_, ok := p.allowed[Transition{From: from, To: to}]
	return ok
}

// IsRestrictive reports whether the policy needs the current status to
// judge a change. The allow-all policy never does.
func (p Policy) IsRestrictive() bool {
	return p.allowed != nil
}
