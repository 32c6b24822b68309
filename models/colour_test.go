package models

import "testing"

func TestColours_CatalogSizeAndOrder(t *testing.T) {
	colours := Colours()
	if len(colours) != 15 {
		t.Fatalf("expected 15 catalog colours, got %d", len(colours))
	}
	if colours[0].Identifier != "black" || colours[14].Identifier != "light_green" {
		t.Fatalf("catalog order changed: first=%s last=%s", colours[0].Identifier, colours[14].Identifier)
	}
}

func TestHexOf(t *testing.T) {
	hex, err := HexOf("sky_blue")
	if err != nil {
		t.Fatalf("HexOf failed: %v", err)
	}
	if hex != "#87CEEB" {
		t.Fatalf("expected #87CEEB, got %s", hex)
	}
}

func TestHexOf_Unknown(t *testing.T) {
	if _, err := HexOf("ultraviolet"); err != ErrUnknownColour {
		t.Fatalf("expected ErrUnknownColour, got %v", err)
	}
}

func TestReferenceDataset_CoversAllColours(t *testing.T) {
	for _, name := range ReferenceEmotionNames() {
		scores := ReferenceScoresFor(name)
		if scores == nil {
			t.Fatalf("no reference scores for %s", name)
		}
		for _, colour := range Colours() {
			score, ok := scores[colour.Identifier]
			if !ok {
				t.Fatalf("%s missing colour %s", name, colour.Identifier)
			}
			if score < 0 || score > 10 {
				t.Fatalf("%s/%s reference score out of range: %v", name, colour.Identifier, score)
			}
		}
	}
}
