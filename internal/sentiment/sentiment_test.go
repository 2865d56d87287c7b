package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompound_Deterministic(t *testing.T) {
	a := NewAnalyzer()

	texts := []string{
		"I love this",
		"I hate this",
		"the meeting is at three",
		"",
	}
	for _, text := range texts {
		assert.Equal(t, a.Compound(text), a.Compound(text), "identical text must yield identical score: %q", text)
	}

	// A second analyzer instance scores identically.
	b := NewAnalyzer()
	assert.Equal(t, a.Compound("I love this"), b.Compound("I love this"))
}

func TestCompound_Range(t *testing.T) {
	a := NewAnalyzer()

	texts := []string{
		"I love this",
		"I hate this",
		"absolutely wonderful, fantastic, the best ever!!!",
		"terrible awful horrible disaster",
		"the quick brown fox jumps over the lazy dog",
		"",
	}
	for _, text := range texts {
		score := a.Compound(text)
		assert.GreaterOrEqual(t, score, -1.0, "text %q", text)
		assert.LessOrEqual(t, score, 1.0, "text %q", text)
	}
}

func TestCompound_Polarity(t *testing.T) {
	a := NewAnalyzer()

	assert.Greater(t, a.Compound("I love this"), 0.0)
	assert.Less(t, a.Compound("I hate this"), 0.0)
	assert.Equal(t, 0.0, a.Compound(""))
}
