package krishi

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type googleProvider struct {
	client *genai.Client
}

func newGoogleProvider(cfg Config) (providerClient, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, &ConfigError{Reason: "GOOGLE_API_KEY is not set"}
	}
	gc, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.GoogleAPIKey,
	})
	if err != nil {
		return nil, &ConfigError{Reason: "google client init failed: " + err.Error()}
	}
	return &googleProvider{client: gc}, nil
}

func (p *googleProvider) Complete(ctx context.Context, plan callPlan) (callResult, error) {
	cfg := &genai.GenerateContentConfig{}
	if plan.JSONObject {
		cfg.ResponseMIMEType = "application/json"
	}

	parts := []*genai.Part{{Text: plan.Prompt}}
	if plan.ImageURL != "" {
		mime, data, err := decodeDataURL(plan.ImageURL)
		if err != nil {
			return callResult{}, &TransportError{Err: err}
		}
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: mime, Data: data}})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	res, err := p.client.Models.GenerateContent(ctx, plan.Model, contents, cfg)
	if err != nil {
		return callResult{}, &TransportError{Err: err}
	}
	return toCallResultFromGenAI(res), nil
}

func toCallResultFromGenAI(res *genai.GenerateContentResponse) callResult {
	cr := callResult{}
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return cr
	}
	for _, part := range res.Candidates[0].Content.Parts {
		if part.Text == "" {
			continue
		}
		// If multiple text parts, concatenate with a newline.
		if cr.Text == "" {
			cr.Text = part.Text
		} else {
			cr.Text += "\n" + part.Text
		}
	}
	if res.UsageMetadata != nil {
		cr.PromptTokens = int(res.UsageMetadata.PromptTokenCount)
		cr.CompletionTokens = int(res.UsageMetadata.CandidatesTokenCount)
		cr.TotalTokens = int(res.UsageMetadata.TotalTokenCount)
	}
	return cr
}

// decodeDataURL splits a data:<mime>;base64,<payload> URL into raw bytes for
// the inline-data part Gemini expects.
func decodeDataURL(u string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("data URL is not base64-encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image payload: %w", err)
	}
	if mime == "" {
		mime = "image/jpeg"
	}
	return mime, data, nil
}
