// Package protocol defines the JSON message schema spoken over a session's
// duplex channel. Messages are tagged unions keyed by a "type" discriminator;
// decoding dispatches exhaustively on that tag rather than probing fields.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Client → server message types.
const (
	TypeUserMessage           = "user_message"
	TypeUserInterrupt         = "user_interrupt"
	TypeReexplainStep         = "reexplain_step"
	TypeSelectStepNL          = "select_step_nl"
	TypeConfusionSignal       = "confusion_signal"
	TypeNudgeDismissed        = "confusion_nudge_dismissed"
	TypeResumeFromStep        = "resume_from_step"
	TypeConfusionHelpResponse = "confusion_help_response"
	TypeResetSession          = "reset_session"
	TypeClose                 = "close"
)

// ClientMessage is the closed set of messages a client may send.
type ClientMessage interface {
	clientMessage()
}

// UserMessage carries free student input (a problem or a question).
type UserMessage struct {
	Text string `json:"text"`
}

// UserInterrupt asks the tutor to stop talking immediately.
type UserInterrupt struct{}

// ReexplainStep asks for one specific step again, optionally in a style.
type ReexplainStep struct {
	StepID string `json:"stepId"`
	Style  string `json:"style,omitempty"`
}

// SelectStepNL selects a step by natural-language reference.
type SelectStepNL struct {
	Text string `json:"text"`
}

// ConfusionSignal reports a detected struggle indication.
type ConfusionSignal struct {
	Source       string `json:"source"` // explicit_phrase, repeated_mistake, silence
	Reason       string `json:"reason"`
	Severity     string `json:"severity"`
	Text         string `json:"text,omitempty"`
	StepIDHint   string `json:"stepIdHint,omitempty"`
	ObservedAtMs int64  `json:"observedAtMs"`
}

// NudgeDismissed reports that the student waved off an offered nudge.
type NudgeDismissed struct {
	StepID string `json:"stepId"`
	AtMs   int64  `json:"atMs"`
}

// ResumeFromStep asks the tutor to continue from a known step.
type ResumeFromStep struct {
	StepID string `json:"stepId"`
	Source string `json:"source"` // scrub, button, voice
}

// ConfusionHelpResponse answers an offered nudge.
type ConfusionHelpResponse struct {
	OfferID string `json:"offerId"`
	StepID  string `json:"stepId"`
	Choice  string `json:"choice"` // accept, decline
	AtMs    int64  `json:"atMs"`
}

// ResetSession starts over with a new problem, dropping all session state.
type ResetSession struct{}

// Close ends the session channel.
type Close struct{}

func (UserMessage) clientMessage()           {}
func (UserInterrupt) clientMessage()         {}
func (ReexplainStep) clientMessage()         {}
func (SelectStepNL) clientMessage()          {}
func (ConfusionSignal) clientMessage()       {}
func (NudgeDismissed) clientMessage()        {}
func (ResumeFromStep) clientMessage()        {}
func (ConfusionHelpResponse) clientMessage() {}
func (ResetSession) clientMessage()          {}
func (Close) clientMessage()                 {}

// ErrUnknownType indicates a message whose discriminator is not part of the
// protocol. The channel survives it; the message does not.
type ErrUnknownType struct {
	Type string
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown message type %q", e.Type)
}

// ParseClientMessage decodes one inbound frame by its type discriminator.
func ParseClientMessage(data []byte) (ClientMessage, error) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Type {
	case TypeUserMessage:
		return decodeInto[UserMessage](data)
	case TypeUserInterrupt:
		return UserInterrupt{}, nil
	case TypeReexplainStep:
		return decodeInto[ReexplainStep](data)
	case TypeSelectStepNL:
		return decodeInto[SelectStepNL](data)
	case TypeConfusionSignal:
		return decodeInto[ConfusionSignal](data)
	case TypeNudgeDismissed:
		return decodeInto[NudgeDismissed](data)
	case TypeResumeFromStep:
		return decodeInto[ResumeFromStep](data)
	case TypeConfusionHelpResponse:
		return decodeInto[ConfusionHelpResponse](data)
	case TypeResetSession:
		return ResetSession{}, nil
	case TypeClose:
		return Close{}, nil
	default:
		return nil, &ErrUnknownType{Type: env.Type}
	}
}

func decodeInto[T ClientMessage](data []byte) (ClientMessage, error) {
	var msg T
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode %T: %w", msg, err)
	}
	return msg, nil
}
