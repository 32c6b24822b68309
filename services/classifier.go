package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	openai "github.com/sashabaranov/go-openai"
)

// ErrNoMatch means the description did not resolve to any canonical emotion.
var ErrNoMatch = errors.New("no emotion matched the description")

// Classifier maps free-form text to a canonical emotion label.
type Classifier interface {
	Classify(ctx context.Context, description string) (string, error)
}

type OpenAIClassifier struct {
	client *openai.Client
	labels []string
	log    *logger.Logger
}

func NewOpenAIClassifier(apiKey string, labels []string, log *logger.Logger) *OpenAIClassifier {
	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		labels: labels,
		log:    log,
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, description string) (string, error) {
	systemMessage := fmt.Sprintf(`You map a short description of a desired emotional state to exactly one of these emotions:

%s

Answer with the single emotion name only. If none of them fits, answer NONE.`,
		strings.Join(c.labels, ", "),
	)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       openai.GPT4oMini,
			Temperature: 0,
			MaxTokens:   10,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
				{Role: openai.ChatMessageRoleUser, Content: description},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("classifying description: %w", err)
	}

	answer := capitalize(strings.TrimSpace(resp.Choices[0].Message.Content))
	for _, label := range c.labels {
		if answer == label {
			return label, nil
		}
	}

	c.log.Info("classifier returned no known emotion", "answer", answer)
	return "", ErrNoMatch
}

// KeywordClassifier is the zero-config fallback used when no OpenAI key is
// configured. Canonical names always resolve; a small synonym table covers
// the common ways users phrase them.
type KeywordClassifier struct {
	labels   []string
	synonyms map[string]string
}

func NewKeywordClassifier(labels []string) *KeywordClassifier {
	return &KeywordClassifier{
		labels: labels,
		synonyms: map[string]string{
			"angry":     "Anger",
			"mad":       "Anger",
			"furious":   "Anger",
			"calm":      "Calmness",
			"relaxed":   "Calmness",
			"peaceful":  "Calmness",
			"disgusted": "Disgust",
			"envious":   "Envy",
			"scared":    "Fear",
			"afraid":    "Fear",
			"anxious":   "Fear",
			"happy":     "Happiness",
			"joy":       "Happiness",
			"joyful":    "Happiness",
			"cheerful":  "Happiness",
			"jealous":   "Jealousy",
			"sad":       "Sadness",
			"unhappy":   "Sadness",
			"gloomy":    "Sadness",
			"surprised": "Surprise",
			"amazed":    "Surprise",
		},
	}
}

func (c *KeywordClassifier) Classify(_ context.Context, description string) (string, error) {
	normalized := capitalize(strings.TrimSpace(description))
	for _, label := range c.labels {
		if normalized == label {
			return label, nil
		}
	}

	for _, word := range strings.Fields(strings.ToLower(description)) {
		word = strings.Trim(word, ".,!?")
		if label, ok := c.synonyms[word]; ok {
			return label, nil
		}
	}
	return "", ErrNoMatch
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
