package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name     string
		question string
		want     Subject
	}{
		{"mathematics", "How do I solve this integral?", Mathematics},
		{"physics", "Explain quantum tunnelling", Physics},
		{"physics equation", "What is F=ma?", Physics},
		{"chemistry", "What is a covalent bond?", Chemistry},
		{"computer science", "How does a binary search algorithm work?", ComputerScience},
		{"engineering", "Tips for bridge design in civil projects", Engineering},
		{"biology", "How does evolution shape a species?", Biology},
		{"no keyword", "Tell me about the history of Rome", Default},
		{"empty", "", Default},
		{"case insensitive", "CALCULUS PRACTICE", Mathematics},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.question))
		})
	}
}

func TestDetectFirstMatchWins(t *testing.T) {
	// "chemical" 属于化学，化学排在工程之前
	assert.Equal(t, Chemistry, Detect("intro to chemical engineering"))
	// 数学排在物理之前
	assert.Equal(t, Mathematics, Detect("the equation of motion"))
}

func TestDetectEveryKeywordResolvesToItsSubjectOrEarlier(t *testing.T) {
	rank := make(map[Subject]int, len(detectionOrder))
	for i, s := range detectionOrder {
		rank[s] = i
	}
	for s, kws := range keywords {
		for _, kw := range kws {
			got := Detect("question about " + kw)
			require.NotEqual(t, Default, got, kw)
			assert.LessOrEqual(t, rank[got], rank[s], "keyword %q of %s detected as %s", kw, s, got)
		}
	}
}

func TestParse(t *testing.T) {
	s, ok := Parse("physics")
	assert.True(t, ok)
	assert.Equal(t, Physics, s)

	s, ok = Parse("  Computer Science ")
	assert.True(t, ok)
	assert.Equal(t, ComputerScience, s)

	for _, label := range []string{"", "default", "History"} {
		_, ok := Parse(label)
		assert.False(t, ok, label)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Biology, Resolve("What is F=ma?", "Biology"))
	assert.Equal(t, Physics, Resolve("What is F=ma?", ""))
	assert.Equal(t, Physics, Resolve("What is F=ma?", "Astrology"))
}

// 显式的 default 不会锁定通用人设，仍按问题内容判定。
func TestResolveDefaultOverrideFallsBackToDetection(t *testing.T) {
	assert.Equal(t, Physics, Resolve("What is F=ma?", "default"))
	assert.Equal(t, Physics, Resolve("What is F=ma?", "DEFAULT"))

	got := Resolve("tell me a story", "default")
	assert.Equal(t, Default, got)
	assert.Nil(t, got.Label())
}

func TestLabel(t *testing.T) {
	assert.Nil(t, Default.Label())
	require.NotNil(t, Physics.Label())
	assert.Equal(t, "Physics", *Physics.Label())
}

func TestTablesCoverEverySubject(t *testing.T) {
	for _, s := range append(All(), Default) {
		assert.NotEmpty(t, personas[s], s)
		assert.NotEmpty(t, fallbacks[s], s)
	}
	for _, s := range All() {
		assert.NotEmpty(t, keywords[s], s)
	}
}

func TestPersonaAndFallbackForUnknownSubject(t *testing.T) {
	unknown := Subject("Astrology")
	assert.Equal(t, personas[Default], unknown.Persona())

	text := unknown.Fallback("why is the sky blue")
	assert.Contains(t, text, "General Study Advice")
	assert.Contains(t, text, `"why is the sky blue"`)
}

func TestFallbackEmbedsQuestion(t *testing.T) {
	text := Physics.Fallback("What is F=ma?")
	assert.Contains(t, text, "Physics Study Guide")
	assert.Contains(t, text, `"What is F=ma?"`)
	assert.NotContains(t, text, questionPlaceholder)
}
