package krishi

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// User-facing failure prefixes. Everything from crop lookup through JSON
// parsing surfaces under the prefix of the task that was running.
const (
	prefixDiagnose   = "Failed to analyze image"
	prefixFertilizer = "Failed to calculate fertilizer"
	prefixPesticide  = "Failed to calculate pesticide"
	prefixAdvisory   = "Failed to get chat response"
)

// Diagnose analyzes a crop photo for disease. image is either a raw base64
// JPEG payload or an already-prefixed data URL.
func (c *Client) Diagnose(ctx context.Context, image string, crop CropType, lang Language) (DiagnosisResult, error) {
	profile, err := LookupCrop(crop)
	if err != nil {
		return DiagnosisResult{}, taskError(prefixDiagnose, err)
	}

	plan := callPlan{
		Model:      c.modelFor(taskVision),
		Prompt:     buildDiagnosisPrompt(crop, profile, lang),
		ImageURL:   ensureDataURL(image),
		JSONObject: true,
	}
	obj, err := c.runJSONTask(ctx, plan, "diagnose", crop)
	if err != nil {
		return DiagnosisResult{}, taskError(prefixDiagnose, err)
	}
	return normalizeDiagnosis(obj), nil
}

// PlanFertilizer produces a staged fertilizer schedule with total quantities
// for the stated area, plus organic options and a per-unit reference list.
func (c *Client) PlanFertilizer(ctx context.Context, crop CropType, area float64, unit AreaUnit, lang Language) (FertilizerPlan, error) {
	profile, err := LookupCrop(crop)
	if err != nil {
		return FertilizerPlan{}, taskError(prefixFertilizer, err)
	}

	plan := callPlan{
		Model:      c.modelFor(taskText),
		Prompt:     buildFertilizerPrompt(crop, profile, area, unit, ToAcres(area, unit), lang),
		JSONObject: true,
	}
	obj, err := c.runJSONTask(ctx, plan, "fertilizer", crop)
	if err != nil {
		return FertilizerPlan{}, taskError(prefixFertilizer, err)
	}
	return normalizeFertilizer(obj, crop, area, unit, lang), nil
}

// PlanPesticide produces a pesticide application schedule and the mixing
// dose for one 16-liter sprayer tank.
func (c *Client) PlanPesticide(ctx context.Context, crop CropType, area float64, unit AreaUnit, lang Language) (PesticidePlan, error) {
	if _, err := LookupCrop(crop); err != nil {
		return PesticidePlan{}, taskError(prefixPesticide, err)
	}

	plan := callPlan{
		Model:      c.modelFor(taskText),
		Prompt:     buildPesticidePrompt(crop, area, unit, lang),
		JSONObject: true,
	}
	obj, err := c.runJSONTask(ctx, plan, "pesticide", crop)
	if err != nil {
		return PesticidePlan{}, taskError(prefixPesticide, err)
	}
	return normalizePesticide(obj, crop, area, unit, lang), nil
}

// Advise answers a free-form farming question. The response is plain text in
// the language the user wrote in, not JSON, so it skips parse and normalize.
func (c *Client) Advise(ctx context.Context, message string, lang Language) (string, error) {
	pc, err := c.ensureProvider()
	if err != nil {
		return "", taskError(prefixAdvisory, err)
	}

	plan := callPlan{
		Model:  c.modelFor(taskText),
		Prompt: buildAdvisoryPrompt(message, lang),
	}
	res, err := c.complete(ctx, pc, plan)
	if err != nil {
		return "", taskError(prefixAdvisory, err)
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		text = "I apologize, but I couldn't generate a response at this time."
	}
	return text, nil
}

// runJSONTask issues one completion and parses its text payload into an
// untyped JSON object. An empty completion degrades to an empty object so
// the normalizer can fill in defaults.
func (c *Client) runJSONTask(ctx context.Context, plan callPlan, task string, crop CropType) (map[string]any, error) {
	pc, err := c.ensureProvider()
	if err != nil {
		return nil, err
	}
	res, err := c.complete(ctx, pc, plan)
	if err != nil {
		return nil, err
	}
	c.cfg.Logger.Debug("completion finished",
		zap.String("task", task),
		zap.String("crop", string(crop)),
		zap.String("model", plan.Model),
		zap.Int("totalTokens", res.TotalTokens),
	)

	raw := res.Text
	if raw == "" {
		raw = "{}"
	}
	obj, err := parseObject(raw)
	if err != nil {
		// The raw payload stays in logs only; callers never see it.
		c.cfg.Logger.Error("model returned non-JSON payload",
			zap.String("task", task),
			zap.String("model", plan.Model),
			zap.String("raw", raw),
		)
		return nil, err
	}
	return obj, nil
}

// ensureDataURL normalizes a bare base64 payload into a JPEG data URL.
// Already-prefixed data URLs pass through unchanged.
func ensureDataURL(image string) string {
	if strings.HasPrefix(image, "data:") {
		return image
	}
	return "data:image/jpeg;base64," + image
}
