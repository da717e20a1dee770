package agent

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

var ErrUnknownAgent = errors.New("unknown agent")

// Factory builds a fresh agent. seed feeds agents that use randomness.
type Factory func(seed uint64) Agent

// Registry maps agent identifiers to their constructors.
type Registry map[string]Factory

// DefaultRegistry returns every built-in agent.
func DefaultRegistry() Registry {
	return Registry{
		"CenterAgent":     func(uint64) Agent { return NewCenterAgent() },
		"FirstLegalAgent": func(uint64) Agent { return NewFirstLegalAgent() },
		"RandomAgent":     func(seed uint64) Agent { return NewRandomAgent(rand.NewSource(seed)) },
		"StayLowAgent":    func(uint64) Agent { return NewStayLowAgent() },
		"TieAgent":        func(uint64) Agent { return NewTieAgent() },
	}
}

// IDs returns the registered identifiers in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Lookup resolves an identifier.
func (r Registry) Lookup(id string) (Factory, error) {
	factory, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownAgent, id, strings.Join(r.IDs(), ", "))
	}
	return factory, nil
}

// Contestants instantiates one agent per identifier. Duplicate identifiers
// are numbered in order of appearance, e.g. RandomAgent-1, RandomAgent-2.
// Slot i is seeded with seed+i.
func (r Registry) Contestants(ids []string, seed uint64) ([]*Contestant, error) {
	counts := map[string]int{}
	contestants := make([]*Contestant, 0, len(ids))
	for i, id := range ids {
		factory, err := r.Lookup(id)
		if err != nil {
			return nil, err
		}
		counts[id]++
		contestants = append(contestants, &Contestant{
			Name:  fmt.Sprintf("%s-%d", id, counts[id]),
			Agent: factory(seed + uint64(i)),
		})
	}
	return contestants, nil
}
