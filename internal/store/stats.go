package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stepwiselabs/stepwise/ent/llmrequestevent"
	"github.com/stepwiselabs/stepwise/ent/nudgeevent"
	"github.com/stepwiselabs/stepwise/ent/sessionevent"
)

func (r *eventRepo) SessionCount(ctx context.Context, studentID string) (int, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("started"))
	if studentID != "" {
		q = q.Where(sessionevent.StudentID(studentID))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (r *eventRepo) NudgeStats(ctx context.Context, studentID string) (NudgeStats, error) {
	q := r.client.NudgeEvent.Query()
	if studentID != "" {
		q = q.Where(nudgeevent.StudentID(studentID))
	}
	events, err := q.All(ctx)
	if err != nil {
		return NudgeStats{}, fmt.Errorf("query nudge events: %w", err)
	}

	var stats NudgeStats
	for _, e := range events {
		switch e.Action {
		case "offered":
			stats.Offered++
		case "accepted":
			stats.Accepted++
		case "dismissed":
			stats.Dismissed++
		}
	}
	return stats, nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]ProviderUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(llmrequestevent.BySequence()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byProvider := make(map[string]*ProviderUsage)
	var order []string
	for _, e := range events {
		u, ok := byProvider[e.Provider]
		if !ok {
			u = &ProviderUsage{Provider: e.Provider}
			byProvider[e.Provider] = u
			order = append(order, e.Provider)
		}
		u.Requests++
		if !e.Success {
			u.Failures++
		}
		u.OutputTokens += e.OutputTokens
		u.TotalLatency += time.Duration(e.LatencyMs) * time.Millisecond
	}

	usage := make([]ProviderUsage, 0, len(order))
	for _, p := range order {
		usage = append(usage, *byProvider[p])
	}
	return usage, nil
}
