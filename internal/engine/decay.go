package engine

// DecayReport records what the session-start decay rule did.
type DecayReport struct {
	GapDays int
	Before  PlantHealth
	After   PlantHealth
}

// Downgraded reports whether health actually changed.
func (r DecayReport) Downgraded() bool { return r.Before != r.After }

// ApplyDecay runs the session-start health rule: the plant's health is
// downgraded by the number of whole calendar days since the last
// interaction, then the interaction date is stamped to today
// regardless of outcome.
//
// The rule never improves health (only completion events heal) and is
// driven purely by elapsed time at load: opening the app after ten
// missed days goes straight to DEAD without passing through the
// intermediate tiers.
func ApplyDecay(p *PlantState, today string) DecayReport {
	gap := DaysBetween(p.LastInteractionDate, today)
	report := DecayReport{GapDays: gap, Before: p.Health, After: p.Health}

	switch {
	case gap <= 1:
		// Logged in today or yesterday: nothing to do.
	case gap == 2:
		report.After = HealthWilting
	case gap == 3:
		report.After = HealthWithered
	default:
		report.After = HealthDead
	}

	if healthRank(report.After) > healthRank(p.Health) {
		p.Health = report.After
	} else {
		report.After = p.Health
	}
	p.LastInteractionDate = today
	return report
}

// healthRank orders health tiers from best to worst for the
// never-improve guard.
func healthRank(h PlantHealth) int {
	switch h {
	case HealthThriving:
		return 0
	case HealthWilting:
		return 1
	case HealthWithered:
		return 2
	case HealthDead:
		return 3
	default:
		return 0
	}
}
