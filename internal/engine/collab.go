package engine

import "context"

// Directory is the external friend/party directory. Lookups that find
// nothing return (nil, nil); errors are transport failures.
type Directory interface {
	FindProfile(ctx context.Context, code string) (*FriendProfile, error)
	CreateParty(ctx context.Context, name string, owner FriendProfile) (*Party, error)
	JoinParty(ctx context.Context, code string, joiner FriendProfile) (*Party, error)
}

// FoodEstimate is the result of analyzing a food image.
type FoodEstimate struct {
	Name     string
	Calories int
}

// Assistant is the generative estimation service. All three calls are
// treated as pure, possibly-failing functions: PlantMessage degrades
// to a static string internally and never fails; the estimators return
// an error when no value could be produced. Results are applied to
// state through a fresh synchronous mutation, never from inside the
// call itself.
type Assistant interface {
	PlantMessage(ctx context.Context, plant PlantState, habits []Habit, userName string) string
	EstimateMetric(ctx context.Context, description, unit string) (int, error)
	AnalyzeImage(ctx context.Context, image []byte) (*FoodEstimate, error)
}
