package facerec

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{"identical unit vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0},
		{"orthogonal vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0.0},
		{"opposite vectors", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"scaling does not matter", []float32{2, 0}, []float32{5, 0}, 1.0},
		{"zero norm scores zero", []float32{0, 0, 0}, []float32{1, 2, 3}, 0.0},
		{"length mismatch scores zero", []float32{1, 0}, []float32{1, 0, 0}, 0.0},
		{"empty vectors score zero", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinearMatcher(t *testing.T) {
	gallery := []Candidate{
		{Key: "S100000000001", Vector: []float32{1, 0, 0}},
		{Key: "S100000000002", Vector: []float32{0, 1, 0}},
		{Key: "S100000000003", Vector: []float32{0, 0, 1}},
	}
	matcher := NewLinearMatcher(gallery)

	t.Run("exact probe returns its owner with similarity 1", func(t *testing.T) {
		key, similarity := matcher.Match([]float32{0, 1, 0})
		if key != "S100000000002" {
			t.Errorf("Match() key = %q, want S100000000002", key)
		}
		if math.Abs(similarity-1.0) > 1e-9 {
			t.Errorf("Match() similarity = %v, want 1.0", similarity)
		}
	})

	t.Run("orthogonal probe has similarity 0", func(t *testing.T) {
		matcher := NewLinearMatcher([]Candidate{{Key: "S100000000001", Vector: []float32{1, 0, 0}}})
		_, similarity := matcher.Match([]float32{0, 1, 0})
		if similarity != 0 {
			t.Errorf("Match() similarity = %v, want 0", similarity)
		}
	})

	t.Run("tie goes to the first enrolled candidate", func(t *testing.T) {
		matcher := NewLinearMatcher([]Candidate{
			{Key: "first", Vector: []float32{1, 0}},
			{Key: "second", Vector: []float32{1, 0}},
		})
		key, _ := matcher.Match([]float32{1, 0})
		if key != "first" {
			t.Errorf("Match() key = %q, want %q", key, "first")
		}
	})

	t.Run("zero-norm candidates never win", func(t *testing.T) {
		matcher := NewLinearMatcher([]Candidate{
			{Key: "degenerate", Vector: []float32{0, 0}},
			{Key: "real", Vector: []float32{0.6, 0.8}},
		})
		key, _ := matcher.Match([]float32{0.6, 0.8})
		if key != "real" {
			t.Errorf("Match() key = %q, want %q", key, "real")
		}
	})

	t.Run("empty gallery returns no key", func(t *testing.T) {
		matcher := NewLinearMatcher(nil)
		key, similarity := matcher.Match([]float32{1, 0})
		if key != "" || similarity != 0 {
			t.Errorf("Match() = (%q, %v), want empty result", key, similarity)
		}
	})
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float32{3, 4})
	want := []float32{0.6, 0.8}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Fatalf("Normalize() = %v, want %v", got, want)
		}
	}

	zero := Normalize([]float32{0, 0})
	if zero[0] != 0 || zero[1] != 0 {
		t.Errorf("Normalize() changed a zero vector: %v", zero)
	}
}
