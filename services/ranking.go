package services

import (
	"sort"

	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
)

// RankedColour is one entry of the display list.
type RankedColour struct {
	Colour string  `json:"colour"`
	Score  float64 `json:"score"`
	Hex    string  `json:"hex"`
}

// Rank orders colours by score descending. Ties keep the input order, which
// decides what users see first and therefore what they judge first.
func Rank(colours []RankedColour) []RankedColour {
	ranked := make([]RankedColour, len(colours))
	copy(ranked, colours)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// RankScores attaches display hex values and ranks. Score values must come
// from the store, which only holds catalog colours.
func RankScores(values []ColourValue) ([]RankedColour, error) {
	colours := make([]RankedColour, 0, len(values))
	for _, v := range values {
		hex, err := models.HexOf(v.Colour)
		if err != nil {
			return nil, err
		}
		colours = append(colours, RankedColour{Colour: v.Colour, Score: v.Score, Hex: hex})
	}
	return Rank(colours), nil
}
