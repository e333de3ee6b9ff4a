package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/datemath"
)

type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey string) *AIService {
	return NewAIServiceWithConfig(openai.DefaultConfig(apiKey))
}

// NewAIServiceWithConfig creates an AIService for a custom endpoint.
func NewAIServiceWithConfig(config openai.ClientConfig) *AIService {
	return &AIService{
		client: openai.NewClientWithConfig(config),
		model:  openai.GPT4o,
	}
}

type dashboardSnapshot struct {
	Today      string               `json:"today"`
	Statistics analytics.Statistics `json:"statistics"`
	TeamLoad   analytics.TeamLoad   `json:"team_load"`
}

// SummarizeDashboard writes a short narrative of the portfolio state
func (s *AIService) SummarizeDashboard(ctx context.Context, today time.Time, stats analytics.Statistics, load analytics.TeamLoad) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	snapshot, err := json.Marshal(dashboardSnapshot{
		Today:      datemath.Format(today),
		Statistics: stats,
		TeamLoad:   load,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode dashboard: %w", err)
	}

	prompt := fmt.Sprintf(`You are assisting the lead of a data-migration team.
Below is today's dashboard as JSON.

%s

Write at most five short sentences for the team lead:
- overall completion rate and how many projects are late
- how efficient the team has been against its estimates
- whether the team can take on new work, based on team_load
- the most frequent difficulty, if any
Plain text only, no markdown, no lists.`, snapshot)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return content, nil
}
