package protocol

import (
	"encoding/json"

	"github.com/stepwiselabs/stepwise/internal/steps"
)

// Server → client message types.
const (
	TypeTeacherThinking     = "teacher_thinking"
	TypeTeacherExplaining   = "teacher_explaining"
	TypeTeacherReexplaining = "teacher_reexplaining"
	TypeTeacherInterrupted  = "teacher_interrupted"
	TypeTeacherWaiting      = "teacher_waiting"
	TypeAIMessageChunk      = "ai_message_chunk"
	TypeEquationStep        = "equation_step"
	TypeAIMessage           = "ai_message"
	TypeAIInterrupted       = "ai_interrupted"
	TypeAIResumed           = "ai_resumed"
	TypeAIReexplained       = "ai_reexplained"
	TypeAIConfusionHandled  = "ai_confusion_handled"
	TypeNudgeOffered        = "confusion_nudge_offered"
	TypeAIAudioChunk        = "ai_audio_chunk"
	TypeStepAudioStart      = "step_audio_start"
	TypeStepAudioEnd        = "step_audio_end"
	TypeAudioStatus         = "audio_status"
	TypeErrorNotice         = "error"
)

// ServerMessage is an outbound protocol event. Encode adds the
// discriminator; the concrete structs carry only their payloads.
type ServerMessage interface {
	messageType() string
}

// TeacherThinking signals the tutor is building a response.
type TeacherThinking struct{}

// TeacherExplaining signals streaming explanation is in progress.
type TeacherExplaining struct {
	StepIndex *int `json:"stepIndex,omitempty"`
}

// TeacherReexplaining signals a re-explanation of an earlier step.
type TeacherReexplaining struct {
	StepIndex *int `json:"stepIndex,omitempty"`
}

// TeacherInterrupted signals the student cut the tutor off.
type TeacherInterrupted struct {
	LastCompletedStepIndex int `json:"lastCompletedStepIndex"`
}

// TeacherWaiting signals the tutor is idle, waiting for input.
type TeacherWaiting struct{}

// AIMessageChunk is one streamed text delta.
type AIMessageChunk struct {
	TextDelta string `json:"textDelta"`
	IsFinal   bool   `json:"isFinal"`
}

// EquationStep announces a newly extracted step. The step's fields are
// spread inline on the wire, alongside the type discriminator.
type EquationStep struct {
	steps.EquationStep
}

// AIMessage is the complete explanation text, sent once streaming ends.
type AIMessage struct {
	Text string `json:"text"`
}

// AIInterrupted confirms generation was cancelled.
type AIInterrupted struct{}

// AIResumed confirms an explanation resumed from an earlier step.
type AIResumed struct {
	ResumeFromStepIndex int `json:"resumeFromStepIndex"`
}

// AIReexplained confirms a step was re-explained.
type AIReexplained struct {
	ReexplainedStepIndex int `json:"reexplainedStepIndex"`
}

// AIConfusionHandled reports how a confusion signal was resolved.
type AIConfusionHandled struct {
	StepID    string `json:"stepId,omitempty"`
	StepIndex *int   `json:"stepIndex,omitempty"`
	Action    string `json:"action"` // reexplained, nudge_offered, ignored
	Reason    string `json:"reason,omitempty"`
}

// NudgeOffered proposes help for a step the student seems stuck on.
type NudgeOffered struct {
	OfferID   string `json:"offerId"`
	StepID    string `json:"stepId"`
	StepIndex int    `json:"stepIndex"`
	Source    string `json:"source"`
	Reason    string `json:"reason"`
	Severity  string `json:"severity"`
	AtMs      int64  `json:"atMs"`
}

// AIAudioChunk carries one synthesized audio chunk for a step.
type AIAudioChunk struct {
	AudioBase64   string `json:"audioBase64"`
	AudioMimeType string `json:"audioMimeType,omitempty"`
	StepID        string `json:"stepId"`
}

// StepAudioStart marks the playback start of a step's audio.
type StepAudioStart struct {
	StepID string `json:"stepId"`
	AtMs   int64  `json:"atMs"`
}

// StepAudioEnd marks the playback end of a step's audio.
type StepAudioEnd struct {
	StepID string `json:"stepId"`
	AtMs   int64  `json:"atMs"`
}

// AudioStatus reports the audio subsystem state (playing, seeked, stopped).
type AudioStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	AtMs   int64  `json:"atMs"`
}

// ErrorNotice reports a recoverable failure; the session stays usable.
type ErrorNotice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (TeacherThinking) messageType() string     { return TypeTeacherThinking }
func (TeacherExplaining) messageType() string   { return TypeTeacherExplaining }
func (TeacherReexplaining) messageType() string { return TypeTeacherReexplaining }
func (TeacherInterrupted) messageType() string  { return TypeTeacherInterrupted }
func (TeacherWaiting) messageType() string      { return TypeTeacherWaiting }
func (AIMessageChunk) messageType() string      { return TypeAIMessageChunk }
func (EquationStep) messageType() string        { return TypeEquationStep }
func (AIMessage) messageType() string           { return TypeAIMessage }
func (AIInterrupted) messageType() string       { return TypeAIInterrupted }
func (AIResumed) messageType() string           { return TypeAIResumed }
func (AIReexplained) messageType() string       { return TypeAIReexplained }
func (AIConfusionHandled) messageType() string  { return TypeAIConfusionHandled }
func (NudgeOffered) messageType() string        { return TypeNudgeOffered }
func (AIAudioChunk) messageType() string        { return TypeAIAudioChunk }
func (StepAudioStart) messageType() string      { return TypeStepAudioStart }
func (StepAudioEnd) messageType() string        { return TypeStepAudioEnd }
func (AudioStatus) messageType() string         { return TypeAudioStatus }
func (ErrorNotice) messageType() string         { return TypeErrorNotice }

// MessageType returns the wire discriminator for a server message.
func MessageType(msg ServerMessage) string {
	return msg.messageType()
}

// Encode serializes a server message with its type discriminator injected.
func Encode(msg ServerMessage) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}
	typeTag, _ := json.Marshal(msg.messageType())
	fields["type"] = typeTag

	return json.Marshal(fields)
}
