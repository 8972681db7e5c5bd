package nnet

import "math"

// LSTM is a standard single-direction LSTM that always returns the full
// hidden sequence. Gate order follows the usual input/forget/cell/output
// convention; the forget bias starts at 1 so untrained cells still carry
// state forward.
type LSTM struct {
	Hidden int

	Wi, Wf, Wc, Wo [][]float64 // hidden × in
	Ui, Uf, Uc, Uo [][]float64 // hidden × hidden
	Bi, Bf, Bc, Bo []float64
}

func NewLSTM(ini *initializer, inDim, hidden int) *LSTM {
	l := &LSTM{
		Hidden: hidden,
		Wi:     ini.matrix(hidden, inDim),
		Wf:     ini.matrix(hidden, inDim),
		Wc:     ini.matrix(hidden, inDim),
		Wo:     ini.matrix(hidden, inDim),
		Ui:     ini.matrix(hidden, hidden),
		Uf:     ini.matrix(hidden, hidden),
		Uc:     ini.matrix(hidden, hidden),
		Uo:     ini.matrix(hidden, hidden),
		Bi:     ini.zeros(hidden),
		Bf:     ini.zeros(hidden),
		Bc:     ini.zeros(hidden),
		Bo:     ini.zeros(hidden),
	}
	for i := range l.Bf {
		l.Bf[i] = 1
	}
	return l
}

func (l *LSTM) Forward(x [][]float64) [][]float64 {
	h := make([]float64, l.Hidden)
	c := make([]float64, l.Hidden)
	out := make([][]float64, len(x))

	for t, xv := range x {
		next_h := make([]float64, l.Hidden)
		next_c := make([]float64, l.Hidden)

		for j := 0; j < l.Hidden; j++ {
			i_gate := sigmoid(gatePreact(l.Wi[j], l.Ui[j], l.Bi[j], xv, h))
			f_gate := sigmoid(gatePreact(l.Wf[j], l.Uf[j], l.Bf[j], xv, h))
			o_gate := sigmoid(gatePreact(l.Wo[j], l.Uo[j], l.Bo[j], xv, h))
			c_cand := math.Tanh(gatePreact(l.Wc[j], l.Uc[j], l.Bc[j], xv, h))

			next_c[j] = f_gate*c[j] + i_gate*c_cand
			next_h[j] = o_gate * math.Tanh(next_c[j])
		}

		h, c = next_h, next_c
		out[t] = h
	}

	return out
}

func gatePreact(w, u []float64, b float64, x, h []float64) float64 {
	sum := b
	for i, v := range x {
		sum += w[i] * v
	}
	for i, v := range h {
		sum += u[i] * v
	}
	return sum
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
