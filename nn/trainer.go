package nn

import (
	"log/slog"

	"github.com/happyhackingspace/cbow/internal/corpus"
)

// Step runs one training step on a single sample: forward pass, closed-form
// backward pass, and an in-place gradient-descent update of every parameter.
// Returns the cross-entropy loss at the pre-update parameters. Numerical
// problems are not guarded against; a NaN loss propagates into the weights.
func Step(net *Network, s corpus.Sample, lr float64) float64 {
	act := net.forward(s.Context)
	V, H, D, C := net.VocabSize, net.HiddenSize, net.EmbedDim, net.ContextSize
	in := C * D

	// dLoss/dlogits = softmax(logits) - onehot(target)
	dlogits, loss := softmaxLoss(act.logits, s.Target)
	dlogits[s.Target] -= 1

	// Output layer. dh is accumulated from the pre-update weights.
	dh := make([]float64, H)
	for k := 0; k < V; k++ {
		g := dlogits[k]
		row := net.W2[k*H : (k+1)*H]
		for j, w := range row {
			dh[j] += g * w
		}
		for j := range row {
			row[j] -= lr * g * act.h[j]
		}
		net.B2[k] -= lr * g
	}

	// Shared hidden layer: the ReLU mask is applied per branch, the weight
	// gradient sums both branches.
	dzL := make([]float64, H)
	dzR := make([]float64, H)
	for j := 0; j < H; j++ {
		if act.zL[j] > 0 {
			dzL[j] = dh[j]
		}
		if act.zR[j] > 0 {
			dzR[j] = dh[j]
		}
	}

	dxL := make([]float64, in)
	dxR := make([]float64, in)
	for j := 0; j < H; j++ {
		gL, gR := dzL[j], dzR[j]
		if gL == 0 && gR == 0 {
			continue
		}
		row := net.W1[j*in : (j+1)*in]
		for i, w := range row {
			dxL[i] += gL * w
			dxR[i] += gR * w
		}
		for i := range row {
			row[i] -= lr * (gL*act.xL[i] + gR*act.xR[i])
		}
		net.B1[j] -= lr * (gL + gR)
	}

	// Embedding rows. A token appearing twice in the context receives both
	// updates.
	for p := 0; p < C; p++ {
		l, r := s.Context[p], s.Context[C+p]
		for d := 0; d < D; d++ {
			net.EmbedLeft[l*D+d] -= lr * dxL[p*D+d]
			net.EmbedRight[r*D+d] -= lr * dxR[p*D+d]
		}
	}

	return loss
}

// Train runs cfg.Epochs passes over the samples in order, one Step per
// sample, and returns the accumulated loss of each epoch. Samples are not
// shuffled and there is no convergence criterion: the epoch count alone
// terminates training. Zero epochs leaves the network untouched.
func Train(net *Network, samples []corpus.Sample, cfg Config) []float64 {
	losses := make([]float64, 0, cfg.Epochs)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		total := 0.0
		for _, s := range samples {
			total += Step(net, s, cfg.LearningRate)
		}
		losses = append(losses, total)
		slog.Debug("CBOW training epoch", "epoch", epoch+1, "loss", total)
	}
	return losses
}
