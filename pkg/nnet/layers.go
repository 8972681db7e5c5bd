package nnet

import (
	"math"
	"math/rand"
)

// initializer hands out Glorot-uniform weight matrices from one shared RNG,
// so layer construction order pins the whole weight set for a given seed.
type initializer struct {
	rng *rand.Rand
}

func (in *initializer) matrix(rows, cols int) [][]float64 {
	limit := math.Sqrt(6.0 / float64(rows+cols))
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = in.rng.Float64()*2*limit - limit
		}
	}
	return m
}

func (in *initializer) zeros(n int) []float64 {
	return make([]float64, n)
}

// Embedding maps integer residue codes to dense vectors by table lookup.
type Embedding struct {
	Table [][]float64 // VocabSize × dim
}

func NewEmbedding(ini *initializer, vocab, dim int) *Embedding {
	return &Embedding{Table: ini.matrix(vocab, dim)}
}

// Forward returns one table row per input code. Rows alias the table and
// must not be written to by callers.
func (e *Embedding) Forward(codes []int) [][]float64 {
	out := make([][]float64, len(codes))
	for t, code := range codes {
		out[t] = e.Table[code]
	}
	return out
}

// Conv1D is a same-padded 1D convolution over the time axis with optional
// ReLU activation.
type Conv1D struct {
	Kernel [][][]float64 // filters × kernel × inDim
	Bias   []float64
}

func NewConv1D(ini *initializer, inDim, filters, kernel int) *Conv1D {
	k := make([][][]float64, filters)
	for f := range k {
		k[f] = ini.matrix(kernel, inDim)
	}
	return &Conv1D{Kernel: k, Bias: ini.zeros(filters)}
}

func (c *Conv1D) Forward(x [][]float64) [][]float64 {
	steps := len(x)
	inDim := len(x[0])
	kernel := len(c.Kernel[0])
	half := kernel / 2

	out := make([][]float64, steps)
	for t := 0; t < steps; t++ {
		row := make([]float64, len(c.Kernel))
		for f := range c.Kernel {
			sum := c.Bias[f]
			for dk := 0; dk < kernel; dk++ {
				tt := t + dk - half
				if tt < 0 || tt >= steps {
					continue
				}
				w := c.Kernel[f][dk]
				xv := x[tt]
				for i := 0; i < inDim; i++ {
					sum += w[i] * xv[i]
				}
			}
			if sum < 0 { // ReLU
				sum = 0
			}
			row[f] = sum
		}
		out[t] = row
	}
	return out
}

// BatchNorm applies per-feature normalization using fixed inference
// statistics. With nothing trained the running mean stays 0 and the running
// variance 1, so this is a near-identity with the usual epsilon skew.
type BatchNorm struct {
	Gamma []float64
	Beta  []float64
	Mean  []float64
	Var   []float64
	Eps   float64
}

func NewBatchNorm(dim int) *BatchNorm {
	bn := &BatchNorm{
		Gamma: make([]float64, dim),
		Beta:  make([]float64, dim),
		Mean:  make([]float64, dim),
		Var:   make([]float64, dim),
		Eps:   1e-3,
	}
	for i := 0; i < dim; i++ {
		bn.Gamma[i] = 1
		bn.Var[i] = 1
	}
	return bn
}

func (b *BatchNorm) Forward(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for t, xv := range x {
		row := make([]float64, len(xv))
		for i, v := range xv {
			row[i] = b.Gamma[i]*(v-b.Mean[i])/math.Sqrt(b.Var[i]+b.Eps) + b.Beta[i]
		}
		out[t] = row
	}
	return out
}

// Dense is a fully connected layer on a single vector.
type Dense struct {
	W    [][]float64 // out × in
	B    []float64
	Relu bool
}

func NewDense(ini *initializer, inDim, outDim int, relu bool) *Dense {
	return &Dense{W: ini.matrix(outDim, inDim), B: ini.zeros(outDim), Relu: relu}
}

func (d *Dense) Forward(v []float64) []float64 {
	out := make([]float64, len(d.W))
	for o, w := range d.W {
		sum := d.B[o]
		for i, x := range v {
			sum += w[i] * x
		}
		if d.Relu && sum < 0 {
			sum = 0
		}
		out[o] = sum
	}
	return out
}

// GlobalAveragePooling collapses the time axis to a per-feature mean.
func GlobalAveragePooling(x [][]float64) []float64 {
	dim := len(x[0])
	out := make([]float64, dim)
	for _, xv := range x {
		for i, v := range xv {
			out[i] += v
		}
	}
	n := float64(len(x))
	for i := range out {
		out[i] /= n
	}
	return out
}

func concatFeatures(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for t := range a {
		row := make([]float64, 0, len(a[t])+len(b[t]))
		row = append(row, a[t]...)
		row = append(row, b[t]...)
		out[t] = row
	}
	return out
}
