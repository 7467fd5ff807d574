package krishi

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// groqProvider reaches Groq through its OpenAI-compatible endpoint.
type groqProvider struct {
	client *openai.Client
}

func newGroqProvider(cfg Config) (providerClient, error) {
	if cfg.GroqAPIKey == "" {
		return nil, &ConfigError{Reason: "GROQ_API_KEY is not set"}
	}
	oc := openai.DefaultConfig(cfg.GroqAPIKey)
	oc.BaseURL = cfg.GroqBaseURL
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	return &groqProvider{client: openai.NewClientWithConfig(oc)}, nil
}

func (p *groqProvider) Complete(ctx context.Context, plan callPlan) (callResult, error) {
	var msg openai.ChatCompletionMessage
	if plan.ImageURL != "" {
		msg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: plan.Prompt},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: plan.ImageURL},
				},
			},
		}
	} else {
		msg = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: plan.Prompt,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:    plan.Model,
		Messages: []openai.ChatCompletionMessage{msg},
	}
	if plan.JSONObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return callResult{}, &TransportError{StatusCode: apiErr.HTTPStatusCode, Err: err}
		}
		return callResult{}, &TransportError{Err: err}
	}

	cr := callResult{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	if len(resp.Choices) > 0 {
		cr.Text = resp.Choices[0].Message.Content
	}
	return cr, nil
}
