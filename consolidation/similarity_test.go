package consolidation

import (
	"math"
	"testing"
)

func TestAnalyzeStemmedPlural(t *testing.T) {
	singles := []UnlinkedVariant{
		variant("A-SM", "A", "gold ring", "SM", 0),
	}
	families := []VariantFamily{
		{Identity: "gold rings", Members: []UnlinkedVariant{
			variant("B-SM", "B", "gold rings", "SM", 0),
			variant("B-ML", "B", "gold rings", "ML", 1),
		}},
	}

	misses := NewNearMissAnalyzer(DefaultSimilarityThreshold).Analyze(singles, families, IdentityByName)
	if len(misses) != 1 {
		t.Fatalf("Analyze() = %v, want one near-miss", misses)
	}
	miss := misses[0]
	if miss.Identity != "gold ring" || miss.Candidate != "gold rings" {
		t.Errorf("pair = %q/%q", miss.Identity, miss.Candidate)
	}
	if miss.Method != MethodStemmedTokens || miss.Similarity != 1.0 {
		t.Errorf("method/score = %q/%.2f, want stemmed_tokens/1.00", miss.Method, miss.Similarity)
	}
}

func TestAnalyzeTypo(t *testing.T) {
	singles := []UnlinkedVariant{
		variant("A-SM", "A", "gold ring", "SM", 0),
		variant("B-SM", "B", "gold rimg", "SM", 0),
	}

	misses := NewNearMissAnalyzer(DefaultSimilarityThreshold).Analyze(singles, nil, IdentityByName)
	if len(misses) != 1 {
		t.Fatalf("Analyze() = %v, want one near-miss", misses)
	}
	miss := misses[0]
	if miss.Method != MethodLevenshtein {
		t.Errorf("method = %q, want levenshtein", miss.Method)
	}
	if miss.Similarity < DefaultSimilarityThreshold {
		t.Errorf("score = %.3f, below threshold", miss.Similarity)
	}
}

func TestAnalyzeUnrelatedIdentities(t *testing.T) {
	singles := []UnlinkedVariant{
		variant("A-SM", "A", "gold ring", "SM", 0),
		variant("B-SM", "B", "silver bracelet", "SM", 0),
	}

	misses := NewNearMissAnalyzer(DefaultSimilarityThreshold).Analyze(singles, nil, IdentityByName)
	if len(misses) != 0 {
		t.Errorf("Analyze() = %v, want none", misses)
	}
}

func TestAnalyzeDeterministicOrder(t *testing.T) {
	singles := []UnlinkedVariant{
		variant("C-SM", "C", "gold rings", "SM", 0),
		variant("A-SM", "A", "gold ring", "SM", 0),
		variant("B-SM", "B", "gold ringe", "SM", 0),
	}

	analyzer := NewNearMissAnalyzer(DefaultSimilarityThreshold)
	first := analyzer.Analyze(singles, nil, IdentityByName)
	second := analyzer.Analyze(singles, nil, IdentityByName)

	if len(first) != len(second) {
		t.Fatalf("run sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("miss %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
	for i := 1; i < len(first); i++ {
		prev, curr := first[i-1], first[i]
		if prev.Identity > curr.Identity || (prev.Identity == curr.Identity && prev.Candidate > curr.Candidate) {
			t.Errorf("output not sorted at %d: %+v before %+v", i, prev, curr)
		}
	}
}

func TestLevenshteinRatio(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   float64
	}{
		{"ring", "ring", 1.0},
		{"ring", "rings", 0.8},
		{"", "ring", 0.0},
		{"abcd", "abed", 0.75},
	}
	for _, tt := range tests {
		if got := levenshteinRatio(tt.s1, tt.s2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("levenshteinRatio(%q, %q) = %.3f, want %.3f", tt.s1, tt.s2, got, tt.want)
		}
	}
}

func TestTrigramJaccard(t *testing.T) {
	if got := trigramJaccard("ring", "ring"); got != 1.0 {
		t.Errorf("identical strings = %.2f, want 1.0", got)
	}
	if got := trigramJaccard("ring", "xyzq"); got != 0.0 {
		t.Errorf("disjoint strings = %.2f, want 0.0", got)
	}
	if got := trigramJaccard("", ""); got != 1.0 {
		t.Errorf("empty strings = %.2f, want 1.0", got)
	}
}
