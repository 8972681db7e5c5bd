package nnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Small shape for tests; the full 150-step network is slow to run per case
// and proves nothing extra.
func testConfig() Config {
	return Config{MaxLen: 12, VocabSize: 21, NumPoints: 4, Seed: 7}
}

func encodedOf(cfg Config, codes ...int) []int {
	out := make([]int, cfg.MaxLen)
	copy(out, codes)
	return out
}

func TestPredictOutputCountIsFixed(t *testing.T) {

	cfg := testConfig()
	p := NewPredictor(cfg)

	tests := []struct {
		name  string
		codes []int
	}{
		{name: "AllPadding", codes: nil},
		{name: "SingleResidue", codes: []int{5}},
		{name: "FullWindow", codes: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := p.Predict(encodedOf(cfg, tt.codes...))
			require.NoError(t, err)
			require.Len(t, points, cfg.NumPoints)
		})
	}
}

func TestPredictIsDeterministicPerSeed(t *testing.T) {

	cfg := testConfig()
	encoded := encodedOf(cfg, 1, 2, 3, 20)

	a, err := NewPredictor(cfg).Predict(encoded)
	require.NoError(t, err)
	b, err := NewPredictor(cfg).Predict(encoded)
	require.NoError(t, err)

	require.Equal(t, a, b)

	other := cfg
	other.Seed = cfg.Seed + 1
	c, err := NewPredictor(other).Predict(encoded)
	require.NoError(t, err)

	require.NotEqual(t, a, c)
}

func TestPredictOutputsAreFinite(t *testing.T) {

	cfg := testConfig()
	points, err := NewPredictor(cfg).Predict(encodedOf(cfg, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9))
	require.NoError(t, err)

	for i, pt := range points {
		for _, v := range []float64{pt.X, pt.Y, pt.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("point %d has non-finite coordinate: %+v", i, pt)
			}
		}
	}
}

func TestPredictRejectsBadInput(t *testing.T) {

	cfg := testConfig()
	p := NewPredictor(cfg)

	_, err := p.Predict(make([]int, cfg.MaxLen-1))
	require.Error(t, err)

	bad := encodedOf(cfg)
	bad[3] = cfg.VocabSize // one past the last residue code
	_, err = p.Predict(bad)
	require.Error(t, err)

	bad[3] = -1
	_, err = p.Predict(bad)
	require.Error(t, err)
}

func TestDefaultConfigShape(t *testing.T) {

	cfg := DefaultConfig()
	require.Equal(t, 150, cfg.MaxLen)
	require.Equal(t, 21, cfg.VocabSize)
	require.Equal(t, 50, cfg.NumPoints)
}
