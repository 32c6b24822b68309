package models

// Reference emotion/colour dataset. Seeds the cold-start scores and is the
// left-hand side of the results comparison charts. Read-only after init.

var referenceEmotionOrder = []string{
	"Anger",
	"Calmness",
	"Contempt",
	"Disgust",
	"Envy",
	"Fear",
	"Happiness",
	"Jealousy",
	"Sadness",
	"Surprise",
}

var referenceScores = map[string]map[string]float64{
	"Anger":     {"black": 4.5, "red": 8.6, "gray": 1.0, "yellow": 0, "light_purple": 0, "sky_blue": 0, "jade": 0, "green": 0, "aqua": 0, "indigo": 0.5, "blue": 0, "bright_pink": 0, "chocolate": 0, "dark_yellow": 0, "light_green": 0},
	"Calmness":  {"black": 0, "red": 0, "gray": 0, "yellow": 0, "light_purple": 2.3, "sky_blue": 3.1, "jade": 0, "green": 0, "aqua": 1.6, "indigo": 0, "blue": 2.4, "bright_pink": 0, "chocolate": 0, "dark_yellow": 0, "light_green": 0},
	"Contempt":  {"black": 1.7, "red": 0, "gray": 1.0, "yellow": 0, "light_purple": 1.2, "sky_blue": 0, "jade": 0, "green": 0.5, "aqua": 0, "indigo": 0, "blue": 0.5, "bright_pink": 0.6, "chocolate": 0.7, "dark_yellow": 0.8, "light_green": 0},
	"Disgust":   {"black": 0, "red": 0, "gray": 0, "yellow": 0, "light_purple": 0, "sky_blue": 0, "jade": 0.5, "green": 0.5, "aqua": 0, "indigo": 0, "blue": 0, "bright_pink": 0, "chocolate": 3.6, "dark_yellow": 3.2, "light_green": 3.1},
	"Envy":      {"black": 0, "red": 1.7, "gray": 0, "yellow": 0, "light_purple": 0, "sky_blue": 0, "jade": 2.7, "green": 3.0, "aqua": 0, "indigo": 0, "blue": 0, "bright_pink": 0, "chocolate": 0, "dark_yellow": 0, "light_green": 1.4},
	"Fear":      {"black": 5.7, "red": 2.5, "gray": 1.6, "yellow": 1.0, "light_purple": 0, "sky_blue": 0, "jade": 0, "green": 0, "aqua": 0, "indigo": 0.9, "blue": 0, "bright_pink": 0, "chocolate": 0, "dark_yellow": 0, "light_green": 0},
	"Happiness": {"black": 0, "red": 0, "gray": 0, "yellow": 5.3, "light_purple": 0, "sky_blue": 2.6, "jade": 0, "green": 0, "aqua": 2.3, "indigo": 0, "blue": 0.6, "bright_pink": 1.4, "chocolate": 0, "dark_yellow": 0, "light_green": 0},
	"Jealousy":  {"black": 0, "red": 2.6, "gray": 0, "yellow": 0, "light_purple": 0, "sky_blue": 0, "jade": 2.4, "green": 2.3, "aqua": 0, "indigo": 0, "blue": 0, "bright_pink": 0, "chocolate": 0, "dark_yellow": 0, "light_green": 1.4},
	"Sadness":   {"black": 2.4, "red": 0, "gray": 4.2, "yellow": 0, "light_purple": 0, "sky_blue": 0, "jade": 0, "green": 0, "aqua": 0, "indigo": 3.4, "blue": 0, "bright_pink": 0, "chocolate": 0.8, "dark_yellow": 0, "light_green": 0},
	"Surprise":  {"black": 0, "red": 0, "gray": 0, "yellow": 2.6, "light_purple": 0.9, "sky_blue": 0.6, "jade": 0, "green": 0, "aqua": 2.1, "indigo": 0, "blue": 0, "bright_pink": 2.6, "chocolate": 0, "dark_yellow": 0, "light_green": 0},
}

// ReferenceEmotionNames returns the canonical emotion labels in a fixed order.
func ReferenceEmotionNames() []string {
	return referenceEmotionOrder
}

// ReferenceScoresFor returns the dataset scores for one emotion, or nil if
// the name is not canonical. Callers must not modify the returned map.
func ReferenceScoresFor(emotionName string) map[string]float64 {
	return referenceScores[emotionName]
}
