package assist

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"bloom/internal/engine"
)

// fakeChat returns a canned response (or error) for every call.
type fakeChat struct {
	content string
	err     error
}

func (f *fakeChat) New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func fakeAssistant(content string, err error) *OpenAI {
	return &OpenAI{chat: &fakeChat{content: content, err: err}, model: DefaultModel}
}

func TestPlantMessageDegradesOnFailure(t *testing.T) {
	ctx := context.Background()
	plant := engine.NewPlant("2026-03-01")

	a := fakeAssistant("  Keep growing, Fern! 🌱 ", nil)
	if got := a.PlantMessage(ctx, plant, nil, "Fern"); got != "Keep growing, Fern! 🌱" {
		t.Fatalf("PlantMessage=%q", got)
	}

	a = fakeAssistant("", errors.New("network down"))
	if got := a.PlantMessage(ctx, plant, nil, "Fern"); got != ErrorMessage {
		t.Fatalf("failed call returned %q, want fallback", got)
	}
}

func TestEstimateMetric(t *testing.T) {
	ctx := context.Background()

	a := fakeAssistant("approximately 140 kcal", nil)
	n, err := a.EstimateMetric(ctx, "2 eggs", "kcal")
	if err != nil || n != 140 {
		t.Fatalf("EstimateMetric=(%d, %v)", n, err)
	}

	a = fakeAssistant("I cannot tell", nil)
	if _, err := a.EstimateMetric(ctx, "???", "kcal"); err == nil {
		t.Fatalf("digit-free response accepted")
	}

	a = fakeAssistant("", errors.New("network down"))
	if _, err := a.EstimateMetric(ctx, "2 eggs", "kcal"); err == nil {
		t.Fatalf("transport error swallowed")
	}
}

func TestAnalyzeImage(t *testing.T) {
	ctx := context.Background()
	img := []byte{0xff, 0xd8, 0xff}

	a := fakeAssistant("Here you go:\n{\"name\": \"Caesar Salad\", \"calories\": 520}\nEnjoy!", nil)
	est, err := a.AnalyzeImage(ctx, img)
	if err != nil {
		t.Fatalf("AnalyzeImage: %v", err)
	}
	if est.Name != "Caesar Salad" || est.Calories != 520 {
		t.Fatalf("estimate: %+v", est)
	}

	a = fakeAssistant("that is not food", nil)
	if _, err := a.AnalyzeImage(ctx, img); err == nil {
		t.Fatalf("JSON-free response accepted")
	}
}

func TestOfflineAssistant(t *testing.T) {
	ctx := context.Background()

	a := New("", "")
	if _, ok := a.(Offline); !ok {
		t.Fatalf("no key should yield Offline, got %T", a)
	}
	if got := a.PlantMessage(ctx, engine.NewPlant("2026-03-01"), nil, "Fern"); got != FallbackMessage {
		t.Fatalf("offline message %q", got)
	}
	if _, err := a.EstimateMetric(ctx, "2 eggs", "kcal"); err == nil {
		t.Fatalf("offline estimate succeeded")
	}
	if _, err := a.AnalyzeImage(ctx, nil); err == nil {
		t.Fatalf("offline image analysis succeeded")
	}
}
