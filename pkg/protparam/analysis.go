// Package protparam computes standard protein parameters from a raw amino
// acid sequence: molecular weight, aromaticity, instability index,
// isoelectric point, secondary structure fractions and residue composition.
// It is self contained and knows nothing about the predictor; callers hand
// it the validated sequence string and display the returned values.

package protparam

import (
	"errors"
	"fmt"
	"math"
)

var ErrEmptySequence = errors.New("cannot analyze an empty sequence")

// SecondaryStructure holds the fraction of residues that tend to occur in
// each conformation class. Classes overlap (L counts for helix and sheet),
// so the three values need not sum to 1.
type SecondaryStructure struct {
	Helix float64 `json:"helix"`
	Turn  float64 `json:"turn"`
	Sheet float64 `json:"sheet"`
}

// Analysis bundles every computed parameter for one sequence.
type Analysis struct {
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`

	MolecularWeight    float64            `json:"molecular_weight"`
	Aromaticity        float64            `json:"aromaticity"`
	InstabilityIndex   float64            `json:"instability_index"`
	IsoelectricPoint   float64            `json:"isoelectric_point"`
	SecondaryStructure SecondaryStructure `json:"secondary_structure_fraction"`

	// Composition maps every residue of the alphabet to its fraction of the
	// sequence, including residues that do not occur.
	Composition map[string]float64 `json:"composition"`
}

// Analyze computes all parameters for seq. The sequence must be non-empty
// and contain only standard residue symbols; the HTTP boundary validates
// before calling, so an error here means a programming mistake upstream.
func Analyze(seq string) (*Analysis, error) {

	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	for i := 0; i < len(seq); i++ {
		if _, ok := residueWeights[seq[i]]; !ok {
			return nil, fmt.Errorf("unknown residue %q at position %d", seq[i], i+1)
		}
	}

	a := &Analysis{
		Sequence:           seq,
		Length:             len(seq),
		MolecularWeight:    molecularWeight(seq),
		Aromaticity:        classFraction(seq, aromaticResidues),
		InstabilityIndex:   instabilityIndex(seq),
		IsoelectricPoint:   isoelectricPoint(seq),
		SecondaryStructure: secondaryStructure(seq),
		Composition:        composition(seq),
	}

	return a, nil
}

// molecularWeight sums the average residue masses, removing one water per
// peptide bond.
func molecularWeight(seq string) float64 {
	var total float64
	for i := 0; i < len(seq); i++ {
		total += residueWeights[seq[i]]
	}
	return total - float64(len(seq)-1)*water
}

func classFraction(seq string, class map[byte]bool) float64 {
	count := 0
	for i := 0; i < len(seq); i++ {
		if class[seq[i]] {
			count++
		}
	}
	return float64(count) / float64(len(seq))
}

// instabilityIndex is the length-normalized sum of dipeptide instability
// weights. Values above 40 suggest an unstable protein in vivo.
func instabilityIndex(seq string) float64 {
	var total float64
	for i := 0; i+1 < len(seq); i++ {
		total += diwv[seq[i]][seq[i+1]]
	}
	return total * 10.0 / float64(len(seq))
}

func secondaryStructure(seq string) SecondaryStructure {
	return SecondaryStructure{
		Helix: classFraction(seq, helixResidues),
		Turn:  classFraction(seq, turnResidues),
		Sheet: classFraction(seq, sheetResidues),
	}
}

func composition(seq string) map[string]float64 {
	counts := make(map[byte]int, len(residueWeights))
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}

	out := make(map[string]float64, len(residueWeights))
	for aa := range residueWeights {
		out[string(aa)] = float64(counts[aa]) / float64(len(seq))
	}
	return out
}

// isoelectricPoint finds the pH at which the net charge crosses zero.
// Charge is monotonically decreasing in pH, so plain bisection on [0, 14]
// converges fast.
func isoelectricPoint(seq string) float64 {
	lo, hi := 0.0, 14.0
	for hi-lo > 1e-4 {
		mid := (lo + hi) / 2
		if chargeAtPH(seq, mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func chargeAtPH(seq string, ph float64) float64 {
	// Terminal groups are always present once.
	charge := positiveCharge(pkNTerminus, ph) - negativeCharge(pkCTerminus, ph)

	for i := 0; i < len(seq); i++ {
		if pk, ok := positivePKs[seq[i]]; ok {
			charge += positiveCharge(pk, ph)
		}
		if pk, ok := negativePKs[seq[i]]; ok {
			charge -= negativeCharge(pk, ph)
		}
	}
	return charge
}

func positiveCharge(pk, ph float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, ph-pk))
}

func negativeCharge(pk, ph float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, pk-ph))
}
