// Package nn implements the CBOW embedding-sum network and its trainer.
package nn

import (
	"math"
	"math/rand"
)

// Config holds network shape and training hyperparameters.
type Config struct {
	EmbedDim     int
	HiddenSize   int
	ContextSize  int // window size on each side of the target
	LearningRate float64
	Epochs       int
	Seed         int64
	Verbose      bool
}

// DefaultConfig returns the default hyperparameters.
func DefaultConfig() Config {
	return Config{
		EmbedDim:     10,
		HiddenSize:   128,
		ContextSize:  2,
		LearningRate: 0.001,
		Epochs:       10,
		Seed:         1,
	}
}

// Network holds all learnable parameters as flat row-major slices.
//
// The left half of a sample's context is looked up in EmbedLeft, the right
// half in EmbedRight. Both halves pass through the same first dense layer
// (W1, B1) with a ReLU, the two hidden vectors are summed, and W2/B2 project
// the sum to per-vocabulary logits.
type Network struct {
	VocabSize   int
	EmbedDim    int
	HiddenSize  int
	ContextSize int

	EmbedLeft  []float64 // VocabSize x EmbedDim
	EmbedRight []float64 // VocabSize x EmbedDim
	W1         []float64 // HiddenSize x (ContextSize*EmbedDim)
	B1         []float64 // HiddenSize
	W2         []float64 // VocabSize x HiddenSize
	B2         []float64 // VocabSize
}

// NewNetwork creates a network for the given vocabulary size. Embedding
// entries are uniform in (-0.5/dim, 0.5/dim); dense weights are uniform
// scaled by the inverse square root of their fan-in; biases start at zero.
func NewNetwork(vocabSize int, cfg Config, rng *rand.Rand) *Network {
	in := cfg.ContextSize * cfg.EmbedDim
	n := &Network{
		VocabSize:   vocabSize,
		EmbedDim:    cfg.EmbedDim,
		HiddenSize:  cfg.HiddenSize,
		ContextSize: cfg.ContextSize,
		EmbedLeft:   make([]float64, vocabSize*cfg.EmbedDim),
		EmbedRight:  make([]float64, vocabSize*cfg.EmbedDim),
		W1:          make([]float64, cfg.HiddenSize*in),
		B1:          make([]float64, cfg.HiddenSize),
		W2:          make([]float64, vocabSize*cfg.HiddenSize),
		B2:          make([]float64, vocabSize),
	}

	for i := range n.EmbedLeft {
		n.EmbedLeft[i] = (rng.Float64() - 0.5) / float64(cfg.EmbedDim)
	}
	for i := range n.EmbedRight {
		n.EmbedRight[i] = (rng.Float64() - 0.5) / float64(cfg.EmbedDim)
	}
	scale := 1.0 / math.Sqrt(float64(in))
	for i := range n.W1 {
		n.W1[i] = (rng.Float64()*2 - 1) * scale
	}
	scale = 1.0 / math.Sqrt(float64(cfg.HiddenSize))
	for i := range n.W2 {
		n.W2[i] = (rng.Float64()*2 - 1) * scale
	}
	return n
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	c := *n
	c.EmbedLeft = append([]float64(nil), n.EmbedLeft...)
	c.EmbedRight = append([]float64(nil), n.EmbedRight...)
	c.W1 = append([]float64(nil), n.W1...)
	c.B1 = append([]float64(nil), n.B1...)
	c.W2 = append([]float64(nil), n.W2...)
	c.B2 = append([]float64(nil), n.B2...)
	return &c
}

// Embedding returns the learned vector for a token ID: the sum of its
// left-table and right-table rows.
func (n *Network) Embedding(id int) []float64 {
	D := n.EmbedDim
	vec := make([]float64, D)
	for d := 0; d < D; d++ {
		vec[d] = n.EmbedLeft[id*D+d] + n.EmbedRight[id*D+d]
	}
	return vec
}

// Logits runs the forward pass for one context and returns the unnormalized
// per-vocabulary scores. No softmax is applied.
func (n *Network) Logits(ctx []int) []float64 {
	return n.forward(ctx).logits
}

// activation caches the intermediate values of one forward pass for the
// backward pass.
type activation struct {
	xL, xR []float64 // concatenated context embeddings, ContextSize*EmbedDim each
	zL, zR []float64 // pre-ReLU hidden activations
	h      []float64 // relu(zL) + relu(zR)
	logits []float64
}

func (n *Network) forward(ctx []int) *activation {
	C, D, H, V := n.ContextSize, n.EmbedDim, n.HiddenSize, n.VocabSize
	in := C * D
	act := &activation{
		xL:     make([]float64, in),
		xR:     make([]float64, in),
		zL:     make([]float64, H),
		zR:     make([]float64, H),
		h:      make([]float64, H),
		logits: make([]float64, V),
	}

	for p := 0; p < C; p++ {
		l, r := ctx[p], ctx[C+p]
		copy(act.xL[p*D:(p+1)*D], n.EmbedLeft[l*D:(l+1)*D])
		copy(act.xR[p*D:(p+1)*D], n.EmbedRight[r*D:(r+1)*D])
	}

	for j := 0; j < H; j++ {
		zL, zR := n.B1[j], n.B1[j]
		row := n.W1[j*in : (j+1)*in]
		for i, w := range row {
			zL += w * act.xL[i]
			zR += w * act.xR[i]
		}
		act.zL[j] = zL
		act.zR[j] = zR
		act.h[j] = relu(zL) + relu(zR)
	}

	for k := 0; k < V; k++ {
		u := n.B2[k]
		row := n.W2[k*H : (k+1)*H]
		for j, w := range row {
			u += w * act.h[j]
		}
		act.logits[k] = u
	}
	return act
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// softmaxLoss returns the softmax distribution over the logits and the
// cross-entropy loss for the target index, computed in a max-shifted
// log-sum-exp form.
func softmaxLoss(logits []float64, target int) ([]float64, float64) {
	maxv := logits[0]
	for _, v := range logits[1:] {
		if v > maxv {
			maxv = v
		}
	}
	probs := make([]float64, len(logits))
	sum := 0.0
	for i, v := range logits {
		e := math.Exp(v - maxv)
		probs[i] = e
		sum += e
	}
	for i := range probs {
		probs[i] /= sum
	}
	loss := math.Log(sum) + maxv - logits[target]
	return probs, loss
}
