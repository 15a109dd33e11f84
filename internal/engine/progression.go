package engine

// CompletionXP is the experience delta for one habit completion event
// (and the amount removed again when a completion is undone).
const CompletionXP = 10

// stageOrder lists growth tiers from first to last.
var stageOrder = []PlantStage{
	StageSeed,
	StageSprout,
	StageSapling,
	StageTree,
	StageFlowering,
	StageMythical,
}

// xpThresholds is the experience required to leave each stage.
// MYTHICAL has no entry: it is terminal.
var xpThresholds = map[PlantStage]int{
	StageSeed:      50,
	StageSprout:    150,
	StageSapling:   350,
	StageTree:      700,
	StageFlowering: 1200,
}

func stageIndex(s PlantStage) int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return 0
}

// NextStage returns the stage after the given one. MYTHICAL is its own
// successor.
func NextStage(s PlantStage) PlantStage {
	i := stageIndex(s)
	if i >= len(stageOrder)-1 {
		return StageMythical
	}
	return stageOrder[i+1]
}

// Reward applies one completion (or undo) event to the plant.
//
// A completion grants experience and heals the plant a single step
// (WITHERED→WILTING, WILTING→THRIVING) before stage advancement is
// checked. An undo removes experience with a floor of zero and leaves
// health alone. Stage advancement loops so the rule stays correct if
// thresholds are ever edited to be closer together than one reward.
func Reward(p *PlantState, justCompleted bool) {
	if justCompleted {
		p.Experience += CompletionXP
		switch p.Health {
		case HealthWithered:
			p.Health = HealthWilting
		case HealthWilting:
			p.Health = HealthThriving
		}
	} else {
		p.Experience -= CompletionXP
		if p.Experience < 0 {
			p.Experience = 0
		}
	}

	for p.Stage != StageMythical && p.Experience >= xpThresholds[p.Stage] {
		p.Stage = NextStage(p.Stage)
	}
}

// StageProgress reports how far through the current stage the plant
// is, as a percentage. MYTHICAL always reports 100.
func StageProgress(p PlantState) float64 {
	threshold, ok := xpThresholds[p.Stage]
	if !ok {
		return 100
	}
	prev := 0
	if i := stageIndex(p.Stage); i > 0 {
		prev = xpThresholds[stageOrder[i-1]]
	}

	ratio := float64(p.Experience-prev) / float64(threshold-prev)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

// NewPlant returns a freshly planted seed stamped with today's date.
func NewPlant(today string) PlantState {
	return PlantState{
		Stage:               StageSeed,
		Health:              HealthThriving,
		Experience:          0,
		Level:               1,
		LastInteractionDate: today,
	}
}

// RevivePlant resets the plant to a fresh seed. The engine does not
// itself require the plant to be DEAD; callers gate revival on the
// DEAD state.
func RevivePlant(p *PlantState, today string) {
	*p = NewPlant(today)
}
