package nnet

import "math"

// DotProductAttention is parameterless self-attention: query, key and value
// are all x. Each output step is a softmax-weighted mixture of every step in
// the sequence, weighted by dot-product similarity.
func DotProductAttention(x [][]float64) [][]float64 {
	steps := len(x)
	dim := len(x[0])

	out := make([][]float64, steps)
	scores := make([]float64, steps)

	for t := 0; t < steps; t++ {
		maxScore := math.Inf(-1)
		for s := 0; s < steps; s++ {
			scores[s] = dot(x[t], x[s])
			if scores[s] > maxScore {
				maxScore = scores[s]
			}
		}

		// softmax, shifted by the row max for stability
		var norm float64
		for s := 0; s < steps; s++ {
			scores[s] = math.Exp(scores[s] - maxScore)
			norm += scores[s]
		}

		row := make([]float64, dim)
		for s := 0; s < steps; s++ {
			w := scores[s] / norm
			for i, v := range x[s] {
				row[i] += w * v
			}
		}
		out[t] = row
	}

	return out
}

func dot(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}
	return sum
}
