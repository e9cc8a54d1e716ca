package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Verdict is the parsed response of one judge call. Score is on the
// judge's native 0..10 scale; scorers normalize it themselves.
type Verdict struct {
	Score      float64            `json:"score"`
	Reason     string             `json:"reason"`
	SubScores  map[string]float64 `json:"sub_scores,omitempty"`
	Strengths  []string           `json:"strengths,omitempty"`
	Weaknesses []string           `json:"weaknesses,omitempty"`
}

// Judge is a stateless LLM collaborator reached over the network. An
// error return means the judge was unreachable; a malformed model
// response instead yields the neutral verdict {score: 5, reason: <error>}.
type Judge interface {
	Evaluate(ctx context.Context, prompt string) (*Verdict, error)
}

// JudgeConfig configures the OpenAI-backed judge.
type JudgeConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// OpenAIJudge implements Judge over the chat completions API with a low
// temperature and a bounded completion length.
type OpenAIJudge struct {
	client      *openai.Client
	model       string
	timeout     time.Duration
	maxTokens   int
	temperature float32
}

// NewOpenAIJudge creates a judge client. Defaults: gpt-4o-mini,
// temperature 0.1, 1024 completion tokens, 30s timeout.
func NewOpenAIJudge(cfg JudgeConfig) *OpenAIJudge {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	temperature := cfg.Temperature
	if temperature <= 0 || temperature > 0.2 {
		temperature = 0.1
	}
	return &OpenAIJudge{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		timeout:     timeout,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Evaluate implements Judge.
func (j *OpenAIJudge) Evaluate(ctx context.Context, prompt string) (*Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       j.model,
		Temperature: j.temperature,
		MaxTokens:   j.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a strict evaluation judge. Respond with a single JSON object and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("judge call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("judge returned no choices")
	}

	return ParseVerdict(resp.Choices[0].Message.Content), nil
}

// ParseVerdict extracts the first balanced JSON object from a model
// response and validates its score. Any failure collapses to the neutral
// verdict so the calling scorer can decide whether to fall back.
func ParseVerdict(response string) *Verdict {
	raw, ok := firstJSONObject(response)
	if !ok {
		return &Verdict{Score: 5, Reason: "no JSON object found in judge response"}
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return &Verdict{Score: 5, Reason: fmt.Sprintf("malformed judge response: %v", err)}
	}
	if verdict.Score < 0 || verdict.Score > 10 {
		return &Verdict{Score: 5, Reason: fmt.Sprintf("judge score %.1f outside 0..10", verdict.Score)}
	}
	return &verdict
}

// firstJSONObject returns the first balanced {...} substring, tracking
// string literals so braces inside them do not count.
func firstJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, c := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
