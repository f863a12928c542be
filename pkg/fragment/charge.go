package fragment

import (
	"fmt"
	"strings"

	"github.com/ChrisMcGann/FragKey/pkg/core"
)

// chargeIons derives multiply charged ions from the singly charged set.
// An ion is eligible only if its fragment spans enough residues to carry the
// extra protons: position >= 2*chargeState - 1.
func chargeIons(ions []Ion, chargeState int) []Ion {
	hMass := core.ProtonMass * float64(chargeState-1)
	minPos := 2*chargeState - 1
	chargeStr := fmt.Sprintf("%d+", chargeState)

	var charged []Ion
	for _, ion := range ions {
		if ion.Position < minPos {
			continue
		}
		charged = append(charged, Ion{
			MZ:       (ion.MZ + hMass) / float64(chargeState),
			Label:    strings.Replace(ion.Label, "+", chargeStr, 1),
			Position: ion.Position,
		})
	}
	return charged
}

// mergeIons merges two position-sorted ion lists into one. The merge is
// stable: ions sharing a position keep their relative order, with entries
// from a preceding entries from b.
func mergeIons(a, b []Ion) []Ion {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}

	merged := make([]Ion, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Position <= b[j].Position {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
