package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/applicant-intake/internal/domain/ai"
	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
	"github.com/bryanwahyu/applicant-intake/internal/infra/ai/prompt"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second

	researchMaxTokens = 500
	assessMaxTokens   = 1500
	qualifyMaxTokens  = 300
)

type Client struct {
	*openai.Client
	Model   string
	Timeout time.Duration
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{Client: openai.NewClient(apiKey), Model: model, Timeout: timeout}
}

// ResearchProfile runs the optional profile-research call.
func (c *Client) ResearchProfile(ctx context.Context, profileURL string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionRequest{
		Model:       c.model(),
		Temperature: 0.7,
		MaxTokens:   researchMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetResearchSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetResearchUserPrompt(profileURL)},
		},
	})
}

// AssessApplicant runs the free-text assessment call.
func (c *Client) AssessApplicant(ctx context.Context, app *applications.Application, profileResearch string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionRequest{
		Model:       c.model(),
		Temperature: 0.7,
		MaxTokens:   assessMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetAssessSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetAssessUserPrompt(app, profileResearch)},
		},
	})
}

// QualifyApplicant runs the classification call and parses the JSON response.
func (c *Client) QualifyApplicant(ctx context.Context, app *applications.Application, assessment string) (ai.Qualification, error) {
	raw, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model:       c.model(),
		Temperature: 0.5,
		MaxTokens:   qualifyMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetQualifySystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetQualifyUserPrompt(app, assessment)},
		},
	})
	if err != nil {
		return ai.Qualification{}, err
	}
	q, err := prompt.ParseQualification(raw)
	if err != nil {
		return ai.Qualification{}, err
	}
	return ai.Qualification{Category: q.Category, Reason: q.Reason}, nil
}

func (c *Client) model() string {
	if c.Model == "" {
		return defaultModel
	}
	return c.Model
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", ai.ErrQuotaExceeded
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
