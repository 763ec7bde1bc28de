package corpus

import (
	"strings"
	"testing"
)

func TestTokenizeKeepsPunctuation(t *testing.T) {
	tokens := Tokenize("When all at once I saw a crowd,\nA host, of golden daffodils;")
	want := []string{"When", "all", "at", "once", "I", "saw", "a", "crowd,", "A", "host,", "of", "golden", "daffodils;"}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize("   \n\t  "); len(got) != 0 {
		t.Errorf("Tokenize(whitespace) = %v, want empty", got)
	}
}

func TestVocabularyBijection(t *testing.T) {
	tokens := Tokenize("to be or not to be that is the question")
	v := Build(tokens)

	if v.Size() != 8 {
		t.Fatalf("Size = %d, want 8", v.Size())
	}
	// Every token maps to a unique index in [0, Size), every index used once.
	seen := make(map[int]string)
	for tok, id := range v.ToID {
		if id < 0 || id >= v.Size() {
			t.Errorf("index %d for %q out of range", id, tok)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("index %d assigned to both %q and %q", id, prev, tok)
		}
		seen[id] = tok
		if v.Token(id) != tok {
			t.Errorf("Token(%d) = %q, want %q", id, v.Token(id), tok)
		}
	}
	if len(seen) != v.Size() {
		t.Errorf("%d indices used, want %d", len(seen), v.Size())
	}

	if v.Index("to") != 0 || v.Index("be") != 1 {
		t.Error("IDs not assigned in first-occurrence order")
	}
	if v.Index("missing") != -1 {
		t.Error("Index of unknown token should be -1")
	}
}

func TestBuildSamplesCount(t *testing.T) {
	for _, tc := range []struct {
		length, contextSize, want int
	}{
		{0, 2, 0},
		{4, 2, 0},
		{5, 2, 1},
		{12, 2, 8},
		{5, 1, 3},
	} {
		ids := make([]int, tc.length)
		for i := range ids {
			ids[i] = i
		}
		got := BuildSamples(ids, tc.contextSize)
		if len(got) != tc.want {
			t.Errorf("BuildSamples(len %d, context %d) yields %d samples, want %d",
				tc.length, tc.contextSize, len(got), tc.want)
		}
	}
}

func TestBuildSamplesFiveTokenBoundary(t *testing.T) {
	tokens := Tokenize("a b c d e")
	v := Build(tokens)
	samples := BuildSamples(v.Encode(tokens), 2)

	if len(samples) != 1 {
		t.Fatalf("got %d samples, want 1", len(samples))
	}
	s := samples[0]
	if v.Token(s.Target) != "c" {
		t.Errorf("target = %q, want %q", v.Token(s.Target), "c")
	}
	var ctx []string
	for _, id := range s.Context {
		ctx = append(ctx, v.Token(id))
	}
	if strings.Join(ctx, " ") != "a b d e" {
		t.Errorf("context = %v, want [a b d e]", ctx)
	}
}

func TestBuildSamplesShape(t *testing.T) {
	tokens := Tokenize("the quick brown fox jumps over the lazy dog")
	v := Build(tokens)
	ids := v.Encode(tokens)
	const contextSize = 2

	samples := BuildSamples(ids, contextSize)
	if len(samples) != len(ids)-2*contextSize {
		t.Fatalf("got %d samples, want %d", len(samples), len(ids)-2*contextSize)
	}
	for n, s := range samples {
		if len(s.Context) != 2*contextSize {
			t.Errorf("sample %d context length = %d, want %d", n, len(s.Context), 2*contextSize)
		}
		for _, id := range s.Context {
			if id < 0 || id >= v.Size() {
				t.Errorf("sample %d has out-of-vocabulary index %d", n, id)
			}
		}
		// Corpus order: sample n targets position n+contextSize.
		if s.Target != ids[n+contextSize] {
			t.Errorf("sample %d target = %d, want %d", n, s.Target, ids[n+contextSize])
		}
	}
}

func TestExtractText(t *testing.T) {
	const page = `<html><head>
<style>body { color: red }</style>
<script>var x = "ignored";</script>
</head><body>
<h1>Daffodils</h1>
<p>I wandered lonely as a <b>cloud</b></p>
<!-- a comment -->
<noscript>also ignored</noscript>
</body></html>`

	text, err := ExtractText(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	want := "Daffodils I wandered lonely as a cloud"
	if text != want {
		t.Errorf("ExtractText = %q, want %q", text, want)
	}
}
