package facerec

import "math"

// Candidate is one enrolled (identity key, feature vector) pair in the
// gallery.
type Candidate struct {
	Key    string
	Vector []float32
}

// Matcher finds the gallery entry closest to a probe vector. The
// brute-force LinearMatcher is the baseline; the interface leaves room
// for an approximate-nearest-neighbor index once galleries outgrow a
// single facility's membership.
type Matcher interface {
	Match(probe []float32) (key string, similarity float64)
}

// LinearMatcher scans every candidate. O(n) per probe, which is fine
// for a gallery the size of one facility's member list.
type LinearMatcher struct {
	candidates []Candidate
}

// NewLinearMatcher builds a matcher over candidates in the given order.
// Among equal maximum similarities the earliest candidate wins, so the
// caller controls tie-breaking by supplying enrollment order.
func NewLinearMatcher(candidates []Candidate) *LinearMatcher {
	return &LinearMatcher{candidates: candidates}
}

func (m *LinearMatcher) Match(probe []float32) (string, float64) {
	bestKey := ""
	bestSimilarity := 0.0

	for _, candidate := range m.candidates {
		similarity := CosineSimilarity(probe, candidate.Vector)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			bestKey = candidate.Key
		}
	}

	return bestKey, bestSimilarity
}

// CosineSimilarity computes dot(a,b) / (|a| * |b|). Degenerate vectors
// (zero norm, mismatched length) score 0 so they can never match.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
