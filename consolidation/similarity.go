package consolidation

import (
	"sort"
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// Similarity methods reported by the near-miss analyzer
const (
	MethodStemmedTokens = "stemmed_tokens"
	MethodLevenshtein   = "levenshtein"
	MethodTrigram       = "trigram"
)

// DefaultSimilarityThreshold minimum score for a near-miss candidate
const DefaultSimilarityThreshold = 0.85

// NearMiss is a diagnostic pairing of a discarded single-variant identity
// with a close identity elsewhere in the run. It never affects grouping:
// the report surfaces it for a human to review and, if confirmed, to fix
// the source data or add an exclusion.
type NearMiss struct {
	Identity   string  `json:"identity"`
	Candidate  string  `json:"candidate"`
	Similarity float64 `json:"similarity"`
	Method     string  `json:"method"`
}

// NearMissAnalyzer finds identities that almost matched. English
// stemming collapses singular/plural spelling drift ("ring" vs "rings"),
// Levenshtein and trigram scores catch typos.
type NearMissAnalyzer struct {
	threshold float64

	mu    sync.RWMutex
	cache map[string]string
}

// NewNearMissAnalyzer creates an analyzer with the given score threshold
func NewNearMissAnalyzer(threshold float64) *NearMissAnalyzer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &NearMissAnalyzer{
		threshold: threshold,
		cache:     make(map[string]string),
	}
}

// Analyze compares every discarded single's identity against all family
// identities and all other single identities. Output order is fully
// deterministic: sorted by (identity, candidate).
func (a *NearMissAnalyzer) Analyze(singles []UnlinkedVariant, families []VariantFamily, mode IdentityMode) []NearMiss {
	singleIdentities := make([]string, 0, len(singles))
	seen := make(map[string]struct{})
	for i := range singles {
		identity := mode.Identity(&singles[i])
		if identity == "" {
			continue
		}
		if _, dup := seen[identity]; dup {
			continue
		}
		seen[identity] = struct{}{}
		singleIdentities = append(singleIdentities, identity)
	}
	sort.Strings(singleIdentities)

	familyIdentities := make([]string, len(families))
	for i := range families {
		familyIdentities[i] = families[i].Identity
	}
	sort.Strings(familyIdentities)

	var misses []NearMiss
	for _, identity := range singleIdentities {
		for _, candidate := range familyIdentities {
			if miss, ok := a.compare(identity, candidate); ok {
				misses = append(misses, miss)
			}
		}
		for _, candidate := range singleIdentities {
			// Each unordered pair of singles is reported once
			if candidate <= identity {
				continue
			}
			if miss, ok := a.compare(identity, candidate); ok {
				misses = append(misses, miss)
			}
		}
	}

	sort.Slice(misses, func(i, j int) bool {
		if misses[i].Identity != misses[j].Identity {
			return misses[i].Identity < misses[j].Identity
		}
		return misses[i].Candidate < misses[j].Candidate
	})
	return misses
}

// compare scores one identity pair
func (a *NearMissAnalyzer) compare(identity, candidate string) (NearMiss, bool) {
	if identity == candidate {
		return NearMiss{}, false
	}

	if a.stemmedTokenSetsEqual(identity, candidate) {
		return NearMiss{Identity: identity, Candidate: candidate, Similarity: 1.0, Method: MethodStemmedTokens}, true
	}

	lev := levenshteinRatio(identity, candidate)
	tri := trigramJaccard(identity, candidate)

	score, method := lev, MethodLevenshtein
	if tri > score {
		score, method = tri, MethodTrigram
	}
	if score < a.threshold {
		return NearMiss{}, false
	}
	return NearMiss{Identity: identity, Candidate: candidate, Similarity: score, Method: method}, true
}

// stemmedTokenSetsEqual reports whether two identities share the same
// set of stemmed words
func (a *NearMissAnalyzer) stemmedTokenSetsEqual(s1, s2 string) bool {
	set1 := a.stemmedTokenSet(s1)
	set2 := a.stemmedTokenSet(s2)
	if len(set1) == 0 || len(set1) != len(set2) {
		return false
	}
	for token := range set1 {
		if _, ok := set2[token]; !ok {
			return false
		}
	}
	return true
}

func (a *NearMissAnalyzer) stemmedTokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		set[a.stem(word)] = struct{}{}
	}
	return set
}

// stem returns the cached Snowball stem of a word. Stemming failures
// fall back to the lower-cased word itself.
func (a *NearMissAnalyzer) stem(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}

	a.mu.RLock()
	cached, ok := a.cache[normalized]
	a.mu.RUnlock()
	if ok {
		return cached
	}

	stemmed, err := snowball.Stem(normalized, "english", true)
	if err != nil || stemmed == "" {
		stemmed = normalized
	}

	a.mu.Lock()
	a.cache[normalized] = stemmed
	a.mu.Unlock()
	return stemmed
}

// levenshteinRatio is 1 - distance/maxLen over runes
func levenshteinRatio(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := 0; j <= len(r2); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}
	return 1.0 - float64(prev[len(r2)])/float64(maxLen)
}

// trigramJaccard is the Jaccard index over character trigram sets
func trigramJaccard(s1, s2 string) float64 {
	grams1 := ngrams(s1, 3)
	grams2 := ngrams(s2, 3)
	if len(grams1) == 0 && len(grams2) == 0 {
		return 1.0
	}
	if len(grams1) == 0 || len(grams2) == 0 {
		return 0.0
	}

	intersection := 0
	for gram := range grams1 {
		if _, ok := grams2[gram]; ok {
			intersection++
		}
	}
	union := len(grams1) + len(grams2) - intersection
	return float64(intersection) / float64(union)
}

func ngrams(s string, n int) map[string]struct{} {
	runes := []rune(strings.ToLower(strings.TrimSpace(s)))
	grams := make(map[string]struct{})
	if len(runes) == 0 {
		return grams
	}
	if len(runes) < n {
		grams[string(runes)] = struct{}{}
		return grams
	}
	for i := 0; i <= len(runes)-n; i++ {
		grams[string(runes[i:i+n])] = struct{}{}
	}
	return grams
}
