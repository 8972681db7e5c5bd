// Package pdb renders predicted points as a minimal PDB model block, one
// CA pseudo-atom per point. The column layout has to stay exact: the output
// is handed verbatim to a PDB-parsing viewer.

package pdb

import (
	"fmt"
	"strings"

	"github.com/yumyai/protfold/pkg/nnet"
)

// ATOM line columns: record name, serial, atom name CA, residue ALA,
// chain A, residue number, x/y/z as 8.3 fixed point, then constant
// occupancy 1.00, B-factor 0.00 and element C. 78 columns total.
const atomLineFormat = "ATOM  %5d  CA  ALA A%4d    %8.3f%8.3f%8.3f  1.00  0.00           C"

// LineWidth is the exact width of every ATOM line produced here.
const LineWidth = 78

// FormatModel writes points as a single MODEL/ENDMDL block. Atom serials
// and residue numbers are 1-based and follow point order.
func FormatModel(points []nnet.Point) string {
	var b strings.Builder

	b.WriteString("MODEL\n")
	for i, pt := range points {
		fmt.Fprintf(&b, atomLineFormat, i+1, i+1, pt.X, pt.Y, pt.Z)
		b.WriteByte('\n')
	}
	b.WriteString("ENDMDL\n")

	return b.String()
}
