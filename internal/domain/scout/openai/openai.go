// Package openai backs the scout provider registry with OpenAI-compatible
// chat completion APIs.
package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"dugout-server-go/internal/domain/roster"
	"dugout-server-go/internal/domain/scout"
)

const (
	defaultMaxTokens   = 200
	defaultTemperature = 0.7
)

// Provider generates player descriptions through a chat completion model.
type Provider struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      scout.Logger
}

func init() {
	scout.Register("openai", NewProvider)
}

// NewProvider builds the OpenAI-backed provider.
func NewProvider(config *scout.Config) (scout.Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("missing OpenAI API key")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	provider := &Provider{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       config.ModelName,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      config.Logger,
	}
	if provider.maxTokens <= 0 {
		provider.maxTokens = defaultMaxTokens
	}
	if provider.temperature <= 0 {
		provider.temperature = defaultTemperature
	}

	return provider, nil
}

// Describe asks the model for a short scouting blurb. Any upstream failure
// degrades to the deterministic stat-line description so the caller always
// gets text back.
func (p *Provider) Describe(ctx context.Context, player roster.Player) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(player),
			},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("[SCOUT] completion failed for %s, using fallback: %v", player.Name, err)
		}
		return scout.FallbackDescription(player), nil
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		if p.logger != nil {
			p.logger.Warn("[SCOUT] empty completion for %s, using fallback", player.Name)
		}
		return scout.FallbackDescription(player), nil
	}

	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(p roster.Player) string {
	return fmt.Sprintf(
		"Generate a concise baseball player description for %s who plays %s. "+
			"Include analysis of their key career stats: Games: %d, At-bats: %d, Hits: %d, "+
			"Home runs: %d, RBIs: %d, Batting average: %.3f, On-base percentage: %.3f, "+
			"Slugging percentage: %.3f. Make it read like professional baseball commentary, "+
			"three to four sentences long.",
		p.Name, p.Position, p.Games, p.AtBats, p.Hits, p.HomeRuns, p.RBI, p.AVG, p.OBP, p.SLG,
	)
}
