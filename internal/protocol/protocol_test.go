package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stepwiselabs/stepwise/internal/steps"
)

func TestParseClientMessage(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{`{"type":"user_message","text":"2x + 3 = 7"}`, UserMessage{Text: "2x + 3 = 7"}},
		{`{"type":"user_interrupt"}`, UserInterrupt{}},
		{`{"type":"reexplain_step","stepId":"s1","style":"simpler"}`, ReexplainStep{StepID: "s1", Style: "simpler"}},
		{`{"type":"select_step_nl","text":"the first step"}`, SelectStepNL{Text: "the first step"}},
		{`{"type":"confusion_signal","source":"silence","reason":"no_input","severity":"low","observedAtMs":42}`,
			ConfusionSignal{Source: "silence", Reason: "no_input", Severity: "low", ObservedAtMs: 42}},
		{`{"type":"confusion_nudge_dismissed","stepId":"s1","atMs":10}`, NudgeDismissed{StepID: "s1", AtMs: 10}},
		{`{"type":"resume_from_step","stepId":"s2","source":"scrub"}`, ResumeFromStep{StepID: "s2", Source: "scrub"}},
		{`{"type":"confusion_help_response","offerId":"o1","stepId":"s1","choice":"accept","atMs":9}`,
			ConfusionHelpResponse{OfferID: "o1", StepID: "s1", Choice: "accept", AtMs: 9}},
		{`{"type":"reset_session"}`, ResetSession{}},
		{`{"type":"close"}`, Close{}},
	}

	for _, tt := range tests {
		got, err := ParseClientMessage([]byte(tt.raw))
		if err != nil {
			t.Errorf("ParseClientMessage(%s): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClientMessage(%s) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestParseClientMessage_UnknownType(t *testing.T) {
	_, err := ParseClientMessage([]byte(`{"type":"launch_missiles"}`))
	var unknown *ErrUnknownType
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *ErrUnknownType", err)
	}
	if unknown.Type != "launch_missiles" {
		t.Errorf("Type = %q", unknown.Type)
	}
}

func TestParseClientMessage_BadJSON(t *testing.T) {
	if _, err := ParseClientMessage([]byte(`{not json`)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestEncode_InjectsDiscriminator(t *testing.T) {
	tests := []struct {
		msg      ServerMessage
		wantType string
	}{
		{TeacherThinking{}, "teacher_thinking"},
		{TeacherWaiting{}, "teacher_waiting"},
		{AIMessageChunk{TextDelta: "2x", IsFinal: false}, "ai_message_chunk"},
		{AIInterrupted{}, "ai_interrupted"},
		{TeacherInterrupted{LastCompletedStepIndex: 3}, "teacher_interrupted"},
		{AIResumed{ResumeFromStepIndex: 1}, "ai_resumed"},
		{StepAudioStart{StepID: "s1", AtMs: 100}, "step_audio_start"},
		{AudioStatus{Status: "seeked", AtMs: 1200}, "audio_status"},
	}

	for _, tt := range tests {
		data, err := Encode(tt.msg)
		if err != nil {
			t.Fatalf("Encode(%#v): %v", tt.msg, err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("round-trip: %v", err)
		}
		if decoded["type"] != tt.wantType {
			t.Errorf("Encode(%#v) type = %v, want %q", tt.msg, decoded["type"], tt.wantType)
		}
	}
}

func TestEncode_PayloadFieldsSurvive(t *testing.T) {
	msg := EquationStep{EquationStep: steps.EquationStep{
		ID: "s1", Index: 2, Equation: "2x = 4", Text: "Now 2x = 4.", Type: steps.TypeTransform,
	}}

	data, err := Encode(msg)
	if err != nil {
		t.Fatal(err)
	}

	// Step fields sit inline next to the discriminator, not nested.
	var decoded struct {
		Type     string `json:"type"`
		ID       string `json:"id"`
		Index    int    `json:"index"`
		Equation string `json:"equation"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Type != TypeEquationStep {
		t.Errorf("type = %q", decoded.Type)
	}
	if decoded.Equation != "2x = 4" || decoded.Index != 2 || decoded.ID != "s1" {
		t.Errorf("decoded = %+v", decoded)
	}
}
