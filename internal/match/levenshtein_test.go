package match

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"Right", "Right", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Rigth", "Right", 2}, // transposition costs two substitutions

		// Case-sensitive
		{"Hello", "hello", 1},

		// Runes, not bytes
		{"café", "cafe", 1},
		{"naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); reverse != result {
				t.Errorf("Levenshtein is not symmetric for (%q, %q): %d vs %d", tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"hello", "hello", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"café", "cafe", 1.0 - 1.0/4.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedScore(t *testing.T) {
	if score := NormalizedScore("created_at", "CreatedAt"); score != 1.0 {
		t.Errorf("NormalizedScore(created_at, CreatedAt) = %f, want 1", score)
	}

	if score := NormalizedScore("OrderID", "order-id"); score != 1.0 {
		t.Errorf("NormalizedScore(OrderID, order-id) = %f, want 1", score)
	}
}
