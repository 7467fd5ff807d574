package krishi

import "context"

// providerClient is the internal interface each completion backend implements.
type providerClient interface {
	// Complete executes a single-turn request according to the given call plan.
	Complete(ctx context.Context, plan callPlan) (callResult, error)
}

// callPlan is a normalized, backend-agnostic instruction set for one request.
type callPlan struct {
	Model  string
	Prompt string

	// ImageURL, when set, is a data URL attached as a second content part
	// alongside the prompt text.
	ImageURL string

	// JSONObject asks the backend for a JSON-object-shaped response body.
	JSONObject bool
}

// callResult is the backend-agnostic result of one completion.
type callResult struct {
	Text string

	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
