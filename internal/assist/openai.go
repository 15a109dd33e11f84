package assist

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"bloom/internal/engine"
)

var _ engine.Assistant = (*OpenAI)(nil)

// ChatService is the slice of the OpenAI client used here. Tests
// substitute a canned implementation.
type ChatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI implements the estimation service using a chat model. Every
// call degrades safely: the plant message falls back to a static line
// and the estimators report an error the caller treats as "no value".
type OpenAI struct {
	chat  ChatService
	model openai.ChatModel
}

// NewOpenAI creates an assistant backed by the OpenAI API.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		chat:  client.Chat.Completions,
		model: openai.ChatModel(model),
	}
}

// PlantMessage writes a short in-character message from the plant.
func (o *OpenAI) PlantMessage(ctx context.Context, plant engine.PlantState, habits []engine.Habit, userName string) string {
	if userName == "" {
		userName = "Friend"
	}
	today := plant.LastInteractionDate
	completed := 0
	for i := range habits {
		if habits[i].CompletedOn(today) {
			completed++
		}
	}

	prompt := fmt.Sprintf(`You are a magical, friendly digital plant named "Bloom".
The user's name is %s.

Current Status:
- Stage: %s
- Health: %s
- Habits Completed Today: %d/%d

Task: Write a very short, cute, and encouraging message (max 20 words) from the plant's perspective to the user.

If health is WITHERED or DEAD, sound sad but hopeful for water (habits).
If health is WILTING, sound thirsty.
If health is THRIVING, sound happy and energetic.
If they completed all habits, celebrate!`, userName, plant.Stage, plant.Health, completed, len(habits))

	text, err := o.complete(ctx, openai.UserMessage(prompt))
	if err != nil {
		slog.Warn("plant message failed", "error", err)
		return ErrorMessage
	}
	return strings.TrimSpace(text)
}

// EstimateMetric asks the model to convert a free-text description
// into a value in the habit's unit.
func (o *OpenAI) EstimateMetric(ctx context.Context, description, unit string) (int, error) {
	prompt := fmt.Sprintf(`You are a nutrition and unit conversion assistant.
User input: %q
Target Unit: %q

Task: Estimate the numeric value for the user's input in the requested unit.
For example, if input is "2 eggs" and unit is "kcal", return approx calories (e.g. 140).
If input is "10 mins running" and unit is "kcal", return approx calories burned.

Return ONLY the number (integer). Do not add text. If impossible to estimate, return 0.`, description, unit)

	text, err := o.complete(ctx, openai.UserMessage(prompt))
	if err != nil {
		return 0, fmt.Errorf("estimate metric: %w", err)
	}
	n, ok := parseLeadingNumber(text)
	if !ok {
		return 0, fmt.Errorf("estimate metric: no number in response %q", text)
	}
	return n, nil
}

// AnalyzeImage identifies a food photo and estimates its calories.
func (o *OpenAI) AnalyzeImage(ctx context.Context, image []byte) (*engine.FoodEstimate, error) {
	prompt := `Analyze this image of food.
Identify the main dish or items.
Estimate the total calories for the portion shown.

Return the response in this specific JSON format:
{
  "name": "Short description of food",
  "calories": 000
}
Only return JSON.`

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
	text, err := o.complete(ctx, openai.UserMessageParts(
		openai.ImagePart(dataURL),
		openai.TextPart(prompt),
	))
	if err != nil {
		return nil, fmt.Errorf("analyze image: %w", err)
	}

	raw, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("analyze image: no JSON in response %q", text)
	}
	var parsed struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("analyze image: parse response: %w", err)
	}
	return &engine.FoodEstimate{Name: parsed.Name, Calories: int(parsed.Calories)}, nil
}

func (o *OpenAI) complete(ctx context.Context, msg openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := o.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{msg}),
		Model:    openai.F(o.model),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
