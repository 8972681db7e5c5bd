// Amino acid alphabet and the integer encoding fed to the predictor.

package model

const (
	// Alphabet lists the 20 standard amino acids. A residue's code is its
	// 1-based position in this string; 0 is reserved for padding.
	Alphabet = "ACDEFGHIKLMNPQRSTVWY"

	// MaxSequenceLength is the fixed predictor input length. Sequences are
	// padded or truncated to exactly this many positions.
	MaxSequenceLength = 150
)

// AlphabetSize is the number of valid residue symbols, excluding padding.
const AlphabetSize = len(Alphabet)

var aa_to_int = buildResidueIndex()

func buildResidueIndex() map[rune]int {
	m := make(map[rune]int, AlphabetSize)
	for i, aa := range Alphabet {
		m[aa] = i + 1
	}
	return m
}

// ResidueIndex returns the 1-based code for aa, or 0 and false when aa is
// not part of the alphabet.
func ResidueIndex(aa rune) (int, bool) {
	idx, ok := aa_to_int[aa]
	return idx, ok
}
