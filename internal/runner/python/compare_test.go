package python

import (
	"testing"

	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"
)

func TestGradeEqualityLadder(t *testing.T) {
	tests := []struct {
		name     string
		actual   values.Value
		expected values.Value
		passed   bool
	}{
		{
			name:     "direct value equality",
			actual:   values.NewNumber(55),
			expected: values.NewNumber(55),
			passed:   true,
		},
		{
			name:     "string normalized equality",
			actual:   values.NewString("  cba "),
			expected: values.NewString("cba"),
			passed:   true,
		},
		{
			name:     "numeric coercion string vs number",
			actual:   values.NewString("55"),
			expected: values.NewNumber(55),
			passed:   true,
		},
		{
			name:     "numeric coercion int vs float",
			actual:   values.NewNumber(55),
			expected: values.NewString("55.0"),
			passed:   true,
		},
		{
			name:     "boolean expected is strict",
			actual:   values.NewString("true"),
			expected: values.NewBool(true),
			passed:   false,
		},
		{
			name:     "boolean matches boolean",
			actual:   values.NewBool(false),
			expected: values.NewBool(false),
			passed:   true,
		},
		{
			name:     "list order matters",
			actual:   values.NewList(values.NewNumber(2), values.NewNumber(1)),
			expected: values.NewList(values.NewNumber(1), values.NewNumber(2)),
			passed:   false,
		},
		{
			name:     "list elementwise equality",
			actual:   values.NewList(values.NewNumber(1), values.NewNumber(2)),
			expected: values.NewList(values.NewNumber(1), values.NewNumber(2)),
			passed:   true,
		},
		{
			name:     "plain mismatch",
			actual:   values.NewString("world"),
			expected: values.NewString("hello"),
			passed:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, _, _ := grade(tt.actual, tt.expected)
			if passed != tt.passed {
				t.Fatalf("expected passed=%v, got %v", tt.passed, passed)
			}
		})
	}
}

func TestSimilarityScore(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
		min      float64
		max      float64
	}{
		{"identical after trim", " abc ", "abc", 100, 100},
		{"empty actual", "", "abc", 0, 0},
		{"empty expected", "abc", "", 0, 0},
		{"four percent off floors at 75", "104", "100", 75, 75},
		{"under one percent floors at 95", "100.5", "100", 95, 95},
		{"nine percent off floors at 50", "109", "100", 50, 74},
		{"far off numbers get edit distance", "200", "100", 0, 67},
		{"disjoint strings score low", "xyz", "abc", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarityScore(tt.actual, tt.expected)
			if got < tt.min || got > tt.max {
				t.Fatalf("expected score in [%v, %v], got %v", tt.min, tt.max, got)
			}
		})
	}
}

func TestGradePartialCredit(t *testing.T) {
	passed, similarity, partial := grade(values.NewString("104"), values.NewString("100"))
	if passed {
		t.Fatal("expected a failed comparison")
	}
	if similarity < 75 {
		t.Fatalf("expected similarity >= 75, got %v", similarity)
	}
	if !partial {
		t.Fatal("expected partial credit at similarity >= 50")
	}
}

func TestGradeNoPartialCreditBelowFifty(t *testing.T) {
	passed, similarity, partial := grade(values.NewString("zzzzzz"), values.NewString("a"))
	if passed || partial {
		t.Fatalf("expected hard fail, got passed=%v partial=%v (similarity %v)", passed, partial, similarity)
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	actual := values.NewString("104")
	expected := values.NewNumber(100)
	p1, s1, c1 := grade(actual, expected)
	for i := 0; i < 10; i++ {
		p2, s2, c2 := grade(actual, expected)
		if p1 != p2 || s1 != s2 || c1 != c2 {
			t.Fatalf("verdict changed between runs: (%v %v %v) vs (%v %v %v)",
				p1, s1, c1, p2, s2, c2)
		}
	}
}
