package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "apple", want: "apple"},
		{name: "trims and lowercases", input: "  Apple ", want: "apple"},
		{name: "collapses internal whitespace", input: "look \t  after\nit", want: "look after it"},
		{name: "keeps diacritics", input: "  Quả  TÁO ", want: "quả táo"},
		{name: "whitespace only", input: " \t ", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "", b: "abc", want: 3},
		{a: "abc", b: "", want: 3},
		{a: "abc", b: "abc", want: 0},
		{a: "abc", b: "abd", want: 1},
		{a: "abc", b: "ab", want: 1},
		{a: "kitten", b: "sitting", want: 3},
		{a: "saturday", b: "sunday", want: 3},
		{a: "táo", b: "tao", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want float64
	}{
		{a: "", b: "", want: 1.0},
		{a: "apple", b: "apple", want: 1.0},
		{a: "apple", b: "", want: 0.0},
		{a: "apple", b: "appl", want: 0.8},
		{a: "accommodation", b: "accomodation", want: 12.0 / 13.0},
		{a: "quả táo", b: "qua tao", want: 5.0 / 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Properties(t *testing.T) {
	words := []string{"", "a", "apple", "appel", "application", "quả táo", "qua tao", "sách", "kitten", "sitting"}

	for _, a := range words {
		assert.Equal(t, 1.0, Similarity(a, a), a)
		assert.Equal(t, 0, Distance(a, a), a)

		for _, b := range words {
			assert.Equal(t, Similarity(a, b), Similarity(b, a), "%q %q", a, b)
			got := Similarity(a, b)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
			if a != b {
				assert.Positive(t, Distance(a, b), "%q %q", a, b)
			}

			for _, c := range words {
				assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c), "%q %q %q", a, b, c)
			}
		}
	}
}
