package tutor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/stepwiselabs/stepwise/internal/confusion"
	"github.com/stepwiselabs/stepwise/internal/memory"
	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/steps"
	"github.com/stepwiselabs/stepwise/internal/store"
)

// HandleConfusionSignal records a struggle indication and, if the nudge
// policy allows, offers help for the step the signal points at. The offer
// is a question, never an unprompted re-explanation.
func (o *Orchestrator) HandleConfusionSignal(ctx context.Context, sig protocol.ConfusionSignal) {
	o.mu.Lock()
	o.signals.ConfusionEvents++

	step := o.resolveSignalStepLocked(sig)
	nowMs := o.cfg.Clock.NowMs()
	decision := o.decideLocked()
	policy := decision.Nudge

	action := "nudge_offered"
	var reason string
	switch {
	case step == nil:
		action, reason = "ignored", "no_steps"
	case o.lastNudgeAtMs > 0 && nowMs-o.lastNudgeAtMs < int64(policy.MinSecondsBetweenNudges)*1000:
		action, reason = "suppressed", "cooldown"
	case o.suppressUntil[step.ID] > nowMs:
		action, reason = "suppressed", "step_recently_nudged"
	}

	stepID := ""
	if step != nil {
		stepID = step.ID
	}
	o.memDoc.AppendEvidence(evidenceNow(memory.EvidenceConfusionSignal, stepID, sig.Reason))

	var offer *protocol.NudgeOffered
	if action == "nudge_offered" {
		offerID := uuid.NewString()
		o.pendingOffers[offerID] = step.ID
		o.lastNudgeAtMs = nowMs
		o.suppressUntil[step.ID] = nowMs + policy.SuppressForStepMs
		o.nudgesOffered++
		o.signals.NudgesOffered++
		o.memDoc.AppendEvidence(evidenceNow(memory.EvidenceNudgeOffered, step.ID, sig.Reason))
		offer = &protocol.NudgeOffered{
			OfferID:   offerID,
			StepID:    step.ID,
			StepIndex: step.Index,
			Source:    sig.Source,
			Reason:    sig.Reason,
			Severity:  sig.Severity,
			AtMs:      nowMs,
		}
	}
	o.saveMemoryLocked()
	o.mu.Unlock()

	o.appendConfusionEvent(ctx, sig, stepID, action)
	if offer != nil {
		o.appendNudgeEvent(ctx, store.NudgeEventData{
			SessionID: o.cfg.SessionID,
			StudentID: o.cfg.StudentID,
			OfferID:   offer.OfferID,
			StepID:    offer.StepID,
			Source:    sig.Source,
			Reason:    sig.Reason,
			Severity:  severityScore(sig.Severity),
			Action:    "offered",
		})
		o.send(*offer)
		return
	}

	idx := (*int)(nil)
	if step != nil {
		i := step.Index
		idx = &i
	}
	o.send(protocol.AIConfusionHandled{
		StepID:    stepID,
		StepIndex: idx,
		Action:    action,
		Reason:    reason,
	})
}

// HandleNudgeDismissed records the student waving off a nudge. Dismissals
// raise the session's escalation signals, which lengthens future cooldowns.
func (o *Orchestrator) HandleNudgeDismissed(ctx context.Context, msg protocol.NudgeDismissed) {
	o.mu.Lock()
	o.signals.NudgesDismissed++
	o.memDoc.AppendEvidence(evidenceNow(memory.EvidenceNudgeDismissed, msg.StepID, ""))
	o.saveMemoryLocked()

	offerID := ""
	for id, stepID := range o.pendingOffers {
		if stepID == msg.StepID {
			offerID = id
			delete(o.pendingOffers, id)
			break
		}
	}
	o.mu.Unlock()

	o.appendNudgeEvent(ctx, store.NudgeEventData{
		SessionID: o.cfg.SessionID,
		StudentID: o.cfg.StudentID,
		OfferID:   offerID,
		StepID:    msg.StepID,
		Action:    "dismissed",
	})
}

// HandleHelpResponse resolves an open nudge offer. Accepting triggers a
// re-explanation of the offered step; declining counts as a dismissal.
func (o *Orchestrator) HandleHelpResponse(ctx context.Context, msg protocol.ConfusionHelpResponse) {
	o.mu.Lock()
	stepID, ok := o.pendingOffers[msg.OfferID]
	if !ok {
		o.mu.Unlock()
		o.send(protocol.ErrorNotice{Code: "unknown_offer", Message: "no open offer " + msg.OfferID})
		return
	}
	delete(o.pendingOffers, msg.OfferID)

	accepted := msg.Choice == "accept"
	var step *steps.EquationStep
	if accepted {
		o.memDoc.AppendEvidence(evidenceNow(memory.EvidenceNudgeAccepted, stepID, ""))
		step = stepByID(o.extractor.History(), stepID)
	} else {
		o.signals.NudgesDismissed++
		o.memDoc.AppendEvidence(evidenceNow(memory.EvidenceNudgeDismissed, stepID, ""))
	}
	o.saveMemoryLocked()
	o.mu.Unlock()

	action := "dismissed"
	if accepted {
		action = "accepted"
	}
	o.appendNudgeEvent(ctx, store.NudgeEventData{
		SessionID: o.cfg.SessionID,
		StudentID: o.cfg.StudentID,
		OfferID:   msg.OfferID,
		StepID:    stepID,
		Action:    action,
	})

	if accepted && step != nil {
		o.reexplain(*step, "simpler")
	}
}

// resolveSignalStepLocked picks the step a confusion signal refers to:
// the explicit hint, then a natural-language reference in the signal text,
// then the audible or most recent step.
func (o *Orchestrator) resolveSignalStepLocked(sig protocol.ConfusionSignal) *steps.EquationStep {
	hist := o.extractor.History()
	if sig.StepIDHint != "" {
		if s := stepByID(hist, sig.StepIDHint); s != nil {
			return s
		}
	}
	if sig.Text != "" {
		if s := confusion.ResolveStepRef(sig.Text, hist); s != nil {
			return s
		}
	}
	return o.activeOrLastStepLocked()
}

func (o *Orchestrator) appendNudgeEvent(ctx context.Context, data store.NudgeEventData) {
	if o.cfg.Events == nil {
		return
	}
	if err := o.cfg.Events.AppendNudgeEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: append nudge event: %v\n", err)
	}
}

func (o *Orchestrator) appendConfusionEvent(ctx context.Context, sig protocol.ConfusionSignal, resolvedStepID, action string) {
	if o.cfg.Events == nil {
		return
	}
	err := o.cfg.Events.AppendConfusionEvent(ctx, store.ConfusionEventData{
		SessionID:      o.cfg.SessionID,
		StudentID:      o.cfg.StudentID,
		Source:         sig.Source,
		Reason:         sig.Reason,
		Severity:       severityScore(sig.Severity),
		StepIDHint:     sig.StepIDHint,
		ResolvedStepID: resolvedStepID,
		Action:         action,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: append confusion event: %v\n", err)
	}
}

// severityScore maps the wire severity label to a score in [0,1].
func severityScore(severity string) float64 {
	switch severity {
	case "low":
		return 0.3
	case "medium":
		return 0.6
	case "high":
		return 0.9
	default:
		return 0.5
	}
}

// evidenceNow builds an evidence event stamped with wall-clock time.
func evidenceNow(kind, stepID, reason string) memory.EvidenceEvent {
	return memory.EvidenceEvent{
		Kind:   kind,
		StepID: stepID,
		AtMs:   time.Now().UnixMilli(),
		Reason: reason,
	}
}
