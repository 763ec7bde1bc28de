// Package cbow trains Continuous Bag-of-Words word embeddings over a small
// corpus.
//
// The model predicts a center word from the words around it: each context
// word is looked up in an embedding table, the left and right halves of the
// window pass through a shared hidden layer with a ReLU, the two hidden
// vectors are summed, and a final projection scores every vocabulary word.
//
//	emb, _ := cbow.Train(text, nil)
//	fmt.Println(emb.Losses())          // per-epoch training loss
//	fmt.Println(emb.Nearest("the", 5)) // cosine neighbors of "the"
package cbow

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/happyhackingspace/cbow/internal/corpus"
	"github.com/happyhackingspace/cbow/nn"
)

// Config holds network shape and training hyperparameters.
type Config = nn.Config

// DefaultConfig returns the default hyperparameters: 10-dimensional
// embeddings, 128 hidden units, a 2-token window on each side, learning rate
// 0.001, 10 epochs.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// Embedder holds a trained model together with its vocabulary.
type Embedder struct {
	vocab  *corpus.Vocabulary
	net    *nn.Network
	losses []float64
}

// Neighbor is one nearest-neighbor query result.
type Neighbor struct {
	Word       string
	Similarity float64
}

// Train builds a vocabulary and context-window samples from the text and
// trains a CBOW model on them. A nil config uses DefaultConfig. Tokens are
// split on whitespace only; samples follow corpus order with no shuffling
// and parameters are updated once per sample.
func Train(text string, cfg *Config) (*Embedder, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}

	tokens := corpus.Tokenize(text)
	vocab := corpus.Build(tokens)
	samples := corpus.BuildSamples(vocab.Encode(tokens), c.ContextSize)
	if len(samples) == 0 {
		return nil, fmt.Errorf("cbow: corpus has %d tokens, need at least %d for context size %d",
			len(tokens), 2*c.ContextSize+1, c.ContextSize)
	}

	rng := rand.New(rand.NewSource(c.Seed))
	net := nn.NewNetwork(vocab.Size(), c, rng)
	losses := nn.Train(net, samples, c)

	return &Embedder{vocab: vocab, net: net, losses: losses}, nil
}

// TrainHTML extracts the visible text from an HTML document and trains on it.
func TrainHTML(htmlStr string, cfg *Config) (*Embedder, error) {
	text, err := corpus.ExtractText(strings.NewReader(htmlStr))
	if err != nil {
		return nil, fmt.Errorf("cbow: %w", err)
	}
	return Train(text, cfg)
}

// Losses returns the accumulated training loss of each epoch.
func (e *Embedder) Losses() []float64 {
	return e.losses
}

// Words returns the vocabulary in index order.
func (e *Embedder) Words() []string {
	return append([]string(nil), e.vocab.ToStr...)
}

// Vector returns the learned embedding for a word (the sum of its left-table
// and right-table rows), or nil if the word is not in the vocabulary.
func (e *Embedder) Vector(word string) []float64 {
	id := e.vocab.Index(word)
	if id < 0 {
		return nil
	}
	return e.net.Embedding(id)
}

// Nearest returns up to n vocabulary words ranked by cosine similarity to
// the given word, excluding the word itself. Returns nil if the word is not
// in the vocabulary.
func (e *Embedder) Nearest(word string, n int) []Neighbor {
	id := e.vocab.Index(word)
	if id < 0 {
		return nil
	}
	ref := e.net.Embedding(id)

	neighbors := make([]Neighbor, 0, e.vocab.Size()-1)
	for other := 0; other < e.vocab.Size(); other++ {
		if other == id {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Word:       e.vocab.Token(other),
			Similarity: cosine(ref, e.net.Embedding(other)),
		})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	if n < len(neighbors) {
		neighbors = neighbors[:n]
	}
	return neighbors
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
