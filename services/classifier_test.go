package services

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
)

func TestKeywordClassifier_CanonicalNamesResolve(t *testing.T) {
	c := NewKeywordClassifier(models.ReferenceEmotionNames())

	for _, in := range []string{"Happiness", "happiness", "HAPPINESS"} {
		label, err := c.Classify(context.Background(), in)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", in, err)
		}
		if label != "Happiness" {
			t.Fatalf("Classify(%q) = %q, want Happiness", in, label)
		}
	}
}

func TestKeywordClassifier_Synonyms(t *testing.T) {
	c := NewKeywordClassifier(models.ReferenceEmotionNames())

	cases := map[string]string{
		"I want to feel happy today": "Happiness",
		"so angry right now":         "Anger",
		"calm and relaxed.":          "Calmness",
		"a bit scared":               "Fear",
	}
	for in, want := range cases {
		label, err := c.Classify(context.Background(), in)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", in, err)
		}
		if label != want {
			t.Fatalf("Classify(%q) = %q, want %q", in, label, want)
		}
	}
}

func TestCapitalize_NonASCII(t *testing.T) {
	cases := map[string]string{
		"happiness": "Happiness",
		"étonné":    "Étonné",
		"über":      "Über",
		"":          "",
	}
	for in, want := range cases {
		got := capitalize(in)
		if got != want {
			t.Fatalf("capitalize(%q) = %q, want %q", in, got, want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("capitalize(%q) produced invalid UTF-8: %q", in, got)
		}
	}
}

func TestKeywordClassifier_NoMatch(t *testing.T) {
	c := NewKeywordClassifier(models.ReferenceEmotionNames())

	if _, err := c.Classify(context.Background(), "quarterly revenue projections"); err != ErrNoMatch {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
