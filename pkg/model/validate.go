package model

import (
	"errors"
	"fmt"
)

// Defining possible error
var ErrSequenceTooLong = errors.New("sequence too long: maximum is 150 residues")

type InvalidResidueError struct {
	Residue  rune
	Position int // 1-based, counted over runes
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue %q at position %d: valid symbols are %s",
		e.Residue, e.Position, Alphabet)
}

// ValidateSequence applies the request-boundary rules: reject sequences over
// MaxSequenceLength and sequences containing any symbol outside the
// alphabet. Encode itself stays lenient, so callers that skip validation
// still get a fixed-length vector back.
func ValidateSequence(seq string) error {
	pos := 0
	for _, aa := range seq {
		pos++
		if _, ok := aa_to_int[aa]; !ok {
			return &InvalidResidueError{Residue: aa, Position: pos}
		}
	}

	if pos > MaxSequenceLength {
		return ErrSequenceTooLong
	}

	return nil
}
