// Package corpus turns raw text into the (context, target) samples a CBOW
// model trains on.
package corpus

import "strings"

// Tokenize splits text on whitespace. No normalization is performed:
// case is preserved and punctuation stays attached to its token.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Vocabulary maps between tokens and integer IDs.
type Vocabulary struct {
	ToID  map[string]int
	ToStr []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		ToID: make(map[string]int),
	}
}

// Build creates a vocabulary from a token sequence, assigning IDs in
// first-occurrence order.
func Build(tokens []string) *Vocabulary {
	v := NewVocabulary()
	for _, tok := range tokens {
		v.Add(tok)
	}
	return v
}

// Add adds a token to the vocabulary if not already present, returns its ID.
func (v *Vocabulary) Add(tok string) int {
	if id, ok := v.ToID[tok]; ok {
		return id
	}
	id := len(v.ToStr)
	v.ToID[tok] = id
	v.ToStr = append(v.ToStr, tok)
	return id
}

// Index returns the ID for a token, or -1 if not found.
func (v *Vocabulary) Index(tok string) int {
	if id, ok := v.ToID[tok]; ok {
		return id
	}
	return -1
}

// Token returns the token for an ID, or "" if out of range.
func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.ToStr) {
		return ""
	}
	return v.ToStr[id]
}

// Size returns the number of entries.
func (v *Vocabulary) Size() int {
	return len(v.ToStr)
}

// Encode maps a token sequence to its ID sequence.
func (v *Vocabulary) Encode(tokens []string) []int {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		ids[i] = v.Index(tok)
	}
	return ids
}

// Sample is one training example: the IDs of the surrounding context words
// and the ID of the center word they predict.
type Sample struct {
	Context []int // 2*contextSize IDs: left-outer, left-inner, right-inner, right-outer
	Target  int
}

// BuildSamples slides a window over the ID sequence and emits one sample per
// position with a full context on both sides. Positions within contextSize of
// either end are skipped, so L tokens yield L - 2*contextSize samples (zero
// when the corpus is shorter than the window). Corpus order is preserved.
func BuildSamples(ids []int, contextSize int) []Sample {
	if len(ids) < 2*contextSize+1 {
		return nil
	}
	samples := make([]Sample, 0, len(ids)-2*contextSize)
	for i := contextSize; i < len(ids)-contextSize; i++ {
		ctx := make([]int, 0, 2*contextSize)
		for j := i - contextSize; j < i; j++ {
			ctx = append(ctx, ids[j])
		}
		for j := i + 1; j <= i+contextSize; j++ {
			ctx = append(ctx, ids[j])
		}
		samples = append(samples, Sample{Context: ctx, Target: ids[i]})
	}
	return samples
}
