package model

// Encode maps seq onto an integer vector of exactly max_len positions.
//
// Residues outside the alphabet are dropped entirely, which shifts the
// following residues left; they are NOT written as 0. The filtered sequence
// is then truncated on the right to max_len and right-padded with 0. The
// drop-instead-of-placeholder behaviour is load bearing: downstream encodes
// "AXA" as [1 1 0 ...], not [1 0 1 ...].
//
// Encode never fails. Length enforcement for user input lives in
// ValidateSequence; this function accepts anything.
func Encode(seq string, max_len int) []int {
	encoded := make([]int, 0, max_len)

	for _, aa := range seq {
		idx, ok := aa_to_int[aa]
		if !ok {
			continue
		}
		if len(encoded) == max_len {
			break
		}
		encoded = append(encoded, idx)
	}

	for len(encoded) < max_len {
		encoded = append(encoded, 0)
	}

	return encoded
}
