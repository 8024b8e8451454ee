package personalize

import (
	"github.com/stepwiselabs/stepwise/internal/memory"
)

// minInferredConfidence is the floor below which an inferred estimate is
// ignored in favor of the default.
const minInferredConfidence = 0.6

// Concept-difficulty override thresholds.
const (
	conceptMinAttempts   = 3
	conceptMinDifficulty = 0.7
)

// Nudge escalation tiers. Two signals feed escalation (persisted memory and
// the live session); they combine by taking the max tier, not by adding.
const (
	tier1Dismissals = 3
	tier1Rate       = 0.6
	tier1ExtraSecs  = 10
	tier1ExtraMs    = 5_000

	tier2Dismissals = 5
	tier2Rate       = 0.75
	tier2ExtraSecs  = 20
	tier2ExtraMs    = 10_000
)

// SessionContext describes the current session for decision purposes.
type SessionContext struct {
	ConceptIDs []string
}

// SessionSignals are live, not-yet-persisted observations from this session.
type SessionSignals struct {
	NudgesOffered   int
	NudgesDismissed int
	ConfusionEvents int
}

// Decision is the merged, explainable output of the policy engine.
type Decision struct {
	Settings    Settings    `json:"settings"`
	Nudge       NudgePolicy `json:"nudge"`
	Sources     []string    `json:"sources"`
	ReasonCodes []string    `json:"reasonCodes"`
	Summary     string      `json:"summary"`
}

// fieldPick records how one setting field was resolved.
type fieldPick struct {
	name   string
	value  string
	source string
}

// Decide merges defaults, explicit preferences, inferred estimates and live
// session signals into one decision. Pure: same inputs, same output.
//
// Precedence per field, independently: explicit wins outright; otherwise an
// inferred estimate is used only when its confidence is at least 0.6 and it
// was updated within the estimate TTL; otherwise the default. The
// concept-difficulty override beats inference but never an explicit choice.
func Decide(mem *memory.StudentMemoryDoc, explicit *memory.ExplicitPreferences, sctx *SessionContext, signals *SessionSignals, nowMs int64) Decision {
	if explicit != nil && explicit.DisabledPersonalization {
		return Decision{
			Settings:    DefaultSettings(),
			Nudge:       DefaultNudgePolicy(),
			Sources:     []string{SourceExplicit},
			ReasonCodes: []string{ReasonPersonalizationOff},
			Summary:     disabledSummary,
		}
	}

	defaults := DefaultSettings()

	pace := resolveField("pace", explicitStr(explicit, func(p *memory.ExplicitPreferences) *string { return p.Pace }), mem, nowMs, string(defaults.Pace))
	verbosity := resolveField("verbosity", explicitStr(explicit, func(p *memory.ExplicitPreferences) *string { return p.Verbosity }), mem, nowMs, string(defaults.Verbosity))
	modality := resolveField("modality", explicitStr(explicit, func(p *memory.ExplicitPreferences) *string { return p.Modality }), mem, nowMs, string(defaults.Modality))
	style := resolveField("teachingStyle", explicitStr(explicit, func(p *memory.ExplicitPreferences) *string { return p.TeachingStyle }), mem, nowMs, string(defaults.TeachingStyle))

	explainEvery := defaults.ExplainEveryStep
	explainSource := SourceDefault
	if explicit != nil && explicit.ExplainEveryStep != nil {
		explainEvery = *explicit.ExplainEveryStep
		explainSource = SourceExplicit
	} else if est, ok := usableEstimate(mem, "explainEveryStep", nowMs); ok {
		explainEvery = est.Value == "true"
		explainSource = SourceInferred
	}
	explain := fieldPick{name: "explainEveryStep", value: boolStr(explainEvery), source: explainSource}

	// Concept-difficulty override: the highest-scoring qualifying concept in
	// this session forces slow pace and detailed verbosity, unless the field
	// was chosen explicitly.
	var hardConcept *memory.ConceptStats
	if mem != nil && sctx != nil {
		hardConcept = hardestQualifyingConcept(mem, sctx.ConceptIDs)
	}
	if hardConcept != nil {
		if pace.source != SourceExplicit {
			pace.value = string(PaceSlow)
			pace.source = SourceInferred
		}
		if verbosity.source != SourceExplicit {
			verbosity.value = string(VerbosityDetailed)
			verbosity.source = SourceInferred
		}
	}

	// Nudge cooldown escalation.
	nudge := DefaultNudgePolicy()
	memTier := 0
	if mem != nil {
		dismissed, rate := mem.NudgeDismissStats()
		memTier = escalationTier(dismissed, rate)
	}
	sessTier := 0
	if signals != nil {
		sessTier = escalationTier(signals.NudgesDismissed, dismissRate(signals))
	}
	tier := max(memTier, sessTier)
	switch tier {
	case 1:
		nudge.MinSecondsBetweenNudges += tier1ExtraSecs
		nudge.SuppressForStepMs += tier1ExtraMs
	case 2:
		nudge.MinSecondsBetweenNudges += tier2ExtraSecs
		nudge.SuppressForStepMs += tier2ExtraMs
	}

	settings := Settings{
		Pace:             Pace(pace.value),
		Verbosity:        Verbosity(verbosity.value),
		Modality:         Modality(modality.value),
		TeachingStyle:    TeachingStyle(style.value),
		ExplainEveryStep: explainEvery,
	}

	allPicks := []fieldPick{pace, verbosity, modality, style, explain}
	reasons := reasonCodes(allPicks, hardConcept, memTier, sessTier)

	return Decision{
		Settings:    settings,
		Nudge:       nudge,
		Sources:     collectSources(allPicks),
		ReasonCodes: reasons,
		Summary:     buildSummary(allPicks, hardConcept, tier),
	}
}

// resolveField applies the per-field precedence chain.
func resolveField(name string, explicitVal *string, mem *memory.StudentMemoryDoc, nowMs int64, def string) fieldPick {
	p := fieldPick{name: name, value: def, source: SourceDefault}
	if explicitVal != nil && *explicitVal != "" {
		p.value = *explicitVal
		p.source = SourceExplicit
	} else if est, ok := usableEstimate(mem, name, nowMs); ok {
		p.value = est.Value
		p.source = SourceInferred
	}
	return p
}

// usableEstimate returns an inferred estimate that clears both the
// confidence floor and the freshness window.
func usableEstimate(mem *memory.StudentMemoryDoc, field string, nowMs int64) (memory.PreferenceEstimate, bool) {
	if mem == nil {
		return memory.PreferenceEstimate{}, false
	}
	est, ok := mem.Preferences[field]
	if !ok {
		return memory.PreferenceEstimate{}, false
	}
	if est.Confidence < minInferredConfidence {
		return memory.PreferenceEstimate{}, false
	}
	if nowMs-est.UpdatedAtMs > memory.EstimateTTLMs {
		return memory.PreferenceEstimate{}, false
	}
	return est, true
}

// hardestQualifyingConcept picks the highest-difficulty concept among the
// session's concepts that has enough evidence to act on.
func hardestQualifyingConcept(mem *memory.StudentMemoryDoc, conceptIDs []string) *memory.ConceptStats {
	var best *memory.ConceptStats
	for _, id := range conceptIDs {
		cs, ok := mem.Concepts[id]
		if !ok || cs == nil {
			continue
		}
		if cs.TotalAttempts < conceptMinAttempts || cs.DifficultyScore < conceptMinDifficulty {
			continue
		}
		if best == nil || cs.DifficultyScore > best.DifficultyScore {
			best = cs
		}
	}
	return best
}

// escalationTier maps dismissal stats to a cooldown tier. The higher tier
// wins when both thresholds are met.
func escalationTier(dismissed int, rate float64) int {
	if dismissed >= tier2Dismissals && rate >= tier2Rate {
		return 2
	}
	if dismissed >= tier1Dismissals && rate >= tier1Rate {
		return 1
	}
	return 0
}

func dismissRate(s *SessionSignals) float64 {
	if s.NudgesOffered == 0 {
		return 0
	}
	return float64(s.NudgesDismissed) / float64(s.NudgesOffered)
}

func explicitStr(p *memory.ExplicitPreferences, get func(*memory.ExplicitPreferences) *string) *string {
	if p == nil {
		return nil
	}
	return get(p)
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func collectSources(picks []fieldPick) []string {
	seen := map[string]bool{}
	var out []string
	// Stable order: explicit, inferred, default.
	for _, src := range []string{SourceExplicit, SourceInferred, SourceDefault} {
		for _, p := range picks {
			if p.source == src && !seen[src] {
				seen[src] = true
				out = append(out, src)
			}
		}
	}
	return out
}

func reasonCodes(picks []fieldPick, hardConcept *memory.ConceptStats, memTier, sessTier int) []string {
	var out []string
	if hardConcept != nil {
		out = append(out, ReasonConceptDifficultyHigh)
	}
	hasExplicit, hasInferred := false, false
	for _, p := range picks {
		switch p.source {
		case SourceExplicit:
			hasExplicit = true
		case SourceInferred:
			hasInferred = true
		}
	}
	if hasExplicit {
		out = append(out, ReasonExplicitPreference)
	}
	if hasInferred {
		out = append(out, ReasonInferredPreference)
	}
	if memTier > 0 {
		out = append(out, ReasonNudgeEscalationMemory)
	}
	if sessTier > 0 {
		out = append(out, ReasonNudgeEscalationSession)
	}
	return out
}
