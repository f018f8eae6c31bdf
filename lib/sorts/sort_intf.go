package sorts

import (
	"math/rand/v2"
	"strings"

	"github.com/benz9527/xalgo/lib/infra"
)

type PivotPolicy uint8

const (
	// PivotFirst takes the head of each partition as pivot.
	// Already sorted or reverse sorted input degrades to O(n^2)
	// with O(n) recursion depth.
	PivotFirst PivotPolicy = iota
	PivotMiddle
	PivotMedianOfThree
	PivotRandom
	_pivotMax
)

var pivotPolicyNames = [...]string{
	PivotFirst:         "first",
	PivotMiddle:        "middle",
	PivotMedianOfThree: "median3",
	PivotRandom:        "random",
}

func (p PivotPolicy) String() string {
	if p >= _pivotMax {
		return "unknown"
	}
	return pivotPolicyNames[p]
}

func ParsePivotPolicy(name string) (PivotPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return PivotFirst, nil
	}
	for i, n := range pivotPolicyNames {
		if n == name {
			return PivotPolicy(i), nil
		}
	}
	return PivotFirst, infra.NewErrorStack("[sorts] unknown pivot policy: " + name)
}

// pivotPicker returns the index of the pivot in the non-empty s.
type pivotPicker[E any] func(s []E, cmp func(a, b E) int) int

type quickSortCfg struct {
	policy PivotPolicy
	rng    *rand.Rand
}

type QuickSortOption func(cfg *quickSortCfg) error

// WithPivotPolicy leaves the config untouched if the policy is unknown.
func WithPivotPolicy(policy PivotPolicy) QuickSortOption {
	return func(cfg *quickSortCfg) error {
		if policy >= _pivotMax {
			return infra.NewErrorStack("[sorts] unknown pivot policy: " + policy.String())
		}
		cfg.policy = policy
		return nil
	}
}

// WithPivotRandSource makes PivotRandom reproducible.
func WithPivotRandSource(src rand.Source) QuickSortOption {
	return func(cfg *quickSortCfg) error {
		if src == nil {
			return infra.NewErrorStack("[sorts] nil pivot rand source")
		}
		cfg.rng = rand.New(src)
		return nil
	}
}
