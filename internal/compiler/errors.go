// Package compiler turns authored section configurations into validated,
// versioned layout snapshots.  Compile errors are typed so the authoring
// surface can show the operator exactly which section or section pair is
// at fault; they are never downgraded or auto-corrected.
package compiler

import (
	"fmt"
	"strings"
)

// InvalidSectionConfigError reports a section whose configuration violates a
// structural invariant (bad shape tag, inverted radii, profile mismatch...).
type InvalidSectionConfigError struct {
	SectionID string
	Reason    string
}

func (e *InvalidSectionConfigError) Error() string {
	return fmt.Sprintf("invalid section config %q: %s", e.SectionID, e.Reason)
}

// CapacityMismatchError reports a section whose generated seat count does not
// equal its declared capacity.  Silent truncation or padding would corrupt
// stable identifiers, so the compile fails instead.
type CapacityMismatchError struct {
	SectionID string
	Expected  int
	Generated int
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("section %q declared capacity %d but generated %d seats", e.SectionID, e.Expected, e.Generated)
}

// OverlapPair names two sections whose padded boundaries intersect.
type OverlapPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// SectionOverlapError reports every pair of sections occupying the same
// visual space.  A single overlapping pair is enough to fail the compile;
// all pairs are listed so the operator can fix the layout in one pass.
type SectionOverlapError struct {
	Pairs []OverlapPair
}

func (e *SectionOverlapError) Error() string {
	parts := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		parts[i] = fmt.Sprintf("%s/%s", p.A, p.B)
	}
	return fmt.Sprintf("section boundaries overlap: %s", strings.Join(parts, ", "))
}
