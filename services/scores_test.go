package services

import (
	"testing"
)

func TestGetScores_PreservesFilterOrderAndDropsUnknown(t *testing.T) {
	db := newTestDB(t)
	seedEmotion(t, db, "Happiness", 1, map[string]float64{"yellow": 5.3, "aqua": 2.3})
	store := NewScoreStore(db)

	values, err := store.GetScores("Happiness", []string{"aqua", "neon", "yellow"})
	if err != nil {
		t.Fatalf("GetScores failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d: %+v", len(values), values)
	}
	if values[0].Colour != "aqua" || values[1].Colour != "yellow" {
		t.Fatalf("filter order not preserved: %+v", values)
	}
	if values[0].Score != 2.3 || values[1].Score != 5.3 {
		t.Fatalf("unexpected scores: %+v", values)
	}
}

func TestGetScores_UnknownEmotion(t *testing.T) {
	db := newTestDB(t)
	store := NewScoreStore(db)

	if _, err := store.GetScores("Boredom", []string{"red"}); err != ErrEmotionNotFound {
		t.Fatalf("expected ErrEmotionNotFound, got %v", err)
	}
}

func TestApplyUpdates_WritesScoresAndSampleSize(t *testing.T) {
	db := newTestDB(t)
	id := seedEmotion(t, db, "Anger", 1, map[string]float64{"red": 8.6, "black": 4.5})
	store := NewScoreStore(db)

	err := store.ApplyUpdates(db, id, map[string]float64{"red": 9.1, "black": 2.25}, 2)
	if err != nil {
		t.Fatalf("ApplyUpdates failed: %v", err)
	}

	if got := currentScore(t, db, id, "red"); got != 9.1 {
		t.Fatalf("expected red 9.1, got %v", got)
	}
	if got := currentScore(t, db, id, "black"); got != 2.25 {
		t.Fatalf("expected black 2.25, got %v", got)
	}
	if got := currentSampleSize(t, db, id); got != 2 {
		t.Fatalf("expected sample_size 2, got %d", got)
	}
}

func TestAllEmotionNames(t *testing.T) {
	db := newTestDB(t)
	seedEmotion(t, db, "Anger", 1, nil)
	seedEmotion(t, db, "Calmness", 1, nil)
	store := NewScoreStore(db)

	names, err := store.AllEmotionNames()
	if err != nil {
		t.Fatalf("AllEmotionNames failed: %v", err)
	}
	if len(names) != 2 || names[0] != "Anger" || names[1] != "Calmness" {
		t.Fatalf("unexpected names: %v", names)
	}
}
