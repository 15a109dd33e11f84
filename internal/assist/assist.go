// Package assist is the generative estimation boundary: plant
// messages, free-text metric estimation and food image analysis. All
// calls are treated as pure, possibly-failing functions; nothing here
// mutates engine state.
package assist

import (
	"context"
	"fmt"

	"bloom/internal/engine"
)

// Static fallback lines, used when no API key is configured or a call
// fails mid-flight.
const (
	FallbackMessage = "Remember to drink water and track your habits!"
	ErrorMessage    = "I'm ready to grow with you today!"
)

// DefaultModel is the chat model used when config does not name one.
const DefaultModel = "gpt-4o-mini"

// New returns the configured assistant: OpenAI-backed when an API key
// is present, otherwise the static offline fallback.
func New(apiKey, model string) engine.Assistant {
	if apiKey == "" {
		return Offline{}
	}
	if model == "" {
		model = DefaultModel
	}
	return NewOpenAI(apiKey, model)
}

// Offline is the no-key assistant: static message, no estimates.
type Offline struct{}

var _ engine.Assistant = Offline{}

func (Offline) PlantMessage(context.Context, engine.PlantState, []engine.Habit, string) string {
	return FallbackMessage
}

func (Offline) EstimateMetric(context.Context, string, string) (int, error) {
	return 0, fmt.Errorf("estimation unavailable: no API key configured")
}

func (Offline) AnalyzeImage(context.Context, []byte) (*engine.FoodEstimate, error) {
	return nil, fmt.Errorf("image analysis unavailable: no API key configured")
}
