package pdb

import (
	"strings"
	"testing"

	"github.com/yumyai/protfold/pkg/nnet"
)

func TestFormatModelTwoPoints(t *testing.T) {

	points := []nnet.Point{
		{X: 1.5, Y: -2.25, Z: 0},
		{X: 12.125, Y: 3, Z: -0.5},
	}

	out := FormatModel(points)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected MODEL + 2 ATOM + ENDMDL, got %d lines: %q", len(lines), out)
	}
	if lines[0] != "MODEL" {
		t.Errorf("block must start with MODEL, got %q", lines[0])
	}
	if lines[3] != "ENDMDL" {
		t.Errorf("block must end with ENDMDL, got %q", lines[3])
	}

	for i, line := range lines[1:3] {
		if len(line) != LineWidth {
			t.Errorf("ATOM line %d is %d columns, want %d: %q", i+1, len(line), LineWidth, line)
		}
		if !strings.HasPrefix(line, "ATOM  ") {
			t.Errorf("ATOM line %d has wrong record name: %q", i+1, line)
		}
	}
}

func TestFormatModelColumns(t *testing.T) {

	out := FormatModel([]nnet.Point{{X: 1.5, Y: -2.25, Z: 0}})

	want := "ATOM      1  CA  ALA A   1       1.500  -2.250   0.000  1.00  0.00           C"
	lines := strings.Split(out, "\n")
	if lines[1] != want {
		t.Errorf("ATOM line mismatch\n got: %q\nwant: %q", lines[1], want)
	}
}

func TestFormatModelEmpty(t *testing.T) {

	out := FormatModel(nil)
	if out != "MODEL\nENDMDL\n" {
		t.Errorf("empty model block mismatch: %q", out)
	}
}

func TestFormatModelSerialNumbers(t *testing.T) {

	points := make([]nnet.Point, 12)
	out := FormatModel(points)

	if !strings.Contains(out, "ATOM     12  CA  ALA A  12") {
		t.Errorf("expected 1-based serials up to 12 in:\n%s", out)
	}
}
