package filter

import (
	"path/filepath"

	"github.com/dyluth/blud/pkg/bloodtype"
)

// Criteria defines filtering criteria for parent combinations.
// All filters are ANDed together - an outcome must match ALL criteria to pass.
type Criteria struct {
	MotherGlob     string              // Glob pattern for the mother's type ("A*", "*-"), empty = no filter
	FatherGlob     string              // Glob pattern for the father's type, empty = no filter
	Child          bloodtype.BloodType // Child type that must be possible, empty = no filter
	MinProbability float64             // Minimum percentage for Child (exclusive of 0), 0 = any non-zero chance
}

// Validate checks that glob patterns are well formed and the child type,
// if set, is canonical.
func (c *Criteria) Validate() error {
	for _, pattern := range []string{c.MotherGlob, c.FatherGlob} {
		if pattern == "" {
			continue
		}
		if _, err := filepath.Match(pattern, string(bloodtype.APos)); err != nil {
			return err
		}
	}
	if c.Child != "" {
		if err := c.Child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Matches returns true if the outcome matches all filter criteria.
// Empty/zero criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(o bloodtype.Outcome) bool {
	if !matchGlob(c.MotherGlob, string(o.Mother)) {
		return false
	}
	if !matchGlob(c.FatherGlob, string(o.Father)) {
		return false
	}

	if c.Child != "" {
		p := o.Distribution.Get(c.Child)
		if p == 0 || p < c.MinProbability {
			return false
		}
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.MotherGlob != "" ||
		c.FatherGlob != "" ||
		c.Child != ""
}

// Apply returns the outcomes that match, preserving order.
func (c *Criteria) Apply(outcomes []bloodtype.Outcome) []bloodtype.Outcome {
	if !c.HasFilters() {
		return outcomes
	}
	matched := make([]bloodtype.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if c.Matches(o) {
			matched = append(matched, o)
		}
	}
	return matched
}

// matchGlob reports whether value matches pattern; an empty pattern matches
// everything and a malformed one matches nothing.
func matchGlob(pattern, value string) bool {
	if pattern == "" {
		return true
	}
	matched, err := filepath.Match(pattern, value)
	return err == nil && matched
}
