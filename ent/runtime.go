// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stepwiselabs/stepwise/ent/confusionevent"
	"github.com/stepwiselabs/stepwise/ent/llmrequestevent"
	"github.com/stepwiselabs/stepwise/ent/nudgeevent"
	"github.com/stepwiselabs/stepwise/ent/schema"
	"github.com/stepwiselabs/stepwise/ent/sessionevent"
	"github.com/stepwiselabs/stepwise/ent/studentdoc"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	confusioneventMixin := schema.ConfusionEvent{}.Mixin()
	confusioneventMixinFields0 := confusioneventMixin[0].Fields()
	_ = confusioneventMixinFields0
	confusioneventFields := schema.ConfusionEvent{}.Fields()
	_ = confusioneventFields
	// confusioneventDescTimestamp is the schema descriptor for timestamp field.
	confusioneventDescTimestamp := confusioneventMixinFields0[1].Descriptor()
	// confusionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	confusionevent.DefaultTimestamp = confusioneventDescTimestamp.Default.(func() time.Time)
	// confusioneventDescStudentID is the schema descriptor for student_id field.
	confusioneventDescStudentID := confusioneventFields[1].Descriptor()
	// confusionevent.DefaultStudentID holds the default value on creation for the student_id field.
	confusionevent.DefaultStudentID = confusioneventDescStudentID.Default.(string)
	// confusioneventDescReason is the schema descriptor for reason field.
	confusioneventDescReason := confusioneventFields[3].Descriptor()
	// confusionevent.DefaultReason holds the default value on creation for the reason field.
	confusionevent.DefaultReason = confusioneventDescReason.Default.(string)
	// confusioneventDescSeverity is the schema descriptor for severity field.
	confusioneventDescSeverity := confusioneventFields[4].Descriptor()
	// confusionevent.DefaultSeverity holds the default value on creation for the severity field.
	confusionevent.DefaultSeverity = confusioneventDescSeverity.Default.(float64)
	// confusioneventDescStepIDHint is the schema descriptor for step_id_hint field.
	confusioneventDescStepIDHint := confusioneventFields[5].Descriptor()
	// confusionevent.DefaultStepIDHint holds the default value on creation for the step_id_hint field.
	confusionevent.DefaultStepIDHint = confusioneventDescStepIDHint.Default.(string)
	// confusioneventDescResolvedStepID is the schema descriptor for resolved_step_id field.
	confusioneventDescResolvedStepID := confusioneventFields[6].Descriptor()
	// confusionevent.DefaultResolvedStepID holds the default value on creation for the resolved_step_id field.
	confusionevent.DefaultResolvedStepID = confusioneventDescResolvedStepID.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	nudgeeventMixin := schema.NudgeEvent{}.Mixin()
	nudgeeventMixinFields0 := nudgeeventMixin[0].Fields()
	_ = nudgeeventMixinFields0
	nudgeeventFields := schema.NudgeEvent{}.Fields()
	_ = nudgeeventFields
	// nudgeeventDescTimestamp is the schema descriptor for timestamp field.
	nudgeeventDescTimestamp := nudgeeventMixinFields0[1].Descriptor()
	// nudgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	nudgeevent.DefaultTimestamp = nudgeeventDescTimestamp.Default.(func() time.Time)
	// nudgeeventDescStudentID is the schema descriptor for student_id field.
	nudgeeventDescStudentID := nudgeeventFields[1].Descriptor()
	// nudgeevent.DefaultStudentID holds the default value on creation for the student_id field.
	nudgeevent.DefaultStudentID = nudgeeventDescStudentID.Default.(string)
	// nudgeeventDescStepID is the schema descriptor for step_id field.
	nudgeeventDescStepID := nudgeeventFields[3].Descriptor()
	// nudgeevent.DefaultStepID holds the default value on creation for the step_id field.
	nudgeevent.DefaultStepID = nudgeeventDescStepID.Default.(string)
	// nudgeeventDescSource is the schema descriptor for source field.
	nudgeeventDescSource := nudgeeventFields[4].Descriptor()
	// nudgeevent.DefaultSource holds the default value on creation for the source field.
	nudgeevent.DefaultSource = nudgeeventDescSource.Default.(string)
	// nudgeeventDescReason is the schema descriptor for reason field.
	nudgeeventDescReason := nudgeeventFields[5].Descriptor()
	// nudgeevent.DefaultReason holds the default value on creation for the reason field.
	nudgeevent.DefaultReason = nudgeeventDescReason.Default.(string)
	// nudgeeventDescSeverity is the schema descriptor for severity field.
	nudgeeventDescSeverity := nudgeeventFields[6].Descriptor()
	// nudgeevent.DefaultSeverity holds the default value on creation for the severity field.
	nudgeevent.DefaultSeverity = nudgeeventDescSeverity.Default.(float64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultStudentID holds the default value on creation for the student_id field.
	sessionevent.DefaultStudentID = sessioneventDescStudentID.Default.(string)
	// sessioneventDescStepsEmitted is the schema descriptor for steps_emitted field.
	sessioneventDescStepsEmitted := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStepsEmitted holds the default value on creation for the steps_emitted field.
	sessionevent.DefaultStepsEmitted = sessioneventDescStepsEmitted.Default.(int)
	// sessioneventDescInterruptions is the schema descriptor for interruptions field.
	sessioneventDescInterruptions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultInterruptions holds the default value on creation for the interruptions field.
	sessionevent.DefaultInterruptions = sessioneventDescInterruptions.Default.(int)
	// sessioneventDescNudgesOffered is the schema descriptor for nudges_offered field.
	sessioneventDescNudgesOffered := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultNudgesOffered holds the default value on creation for the nudges_offered field.
	sessionevent.DefaultNudgesOffered = sessioneventDescNudgesOffered.Default.(int)
	// sessioneventDescDurationMs is the schema descriptor for duration_ms field.
	sessioneventDescDurationMs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	sessionevent.DefaultDurationMs = sessioneventDescDurationMs.Default.(int64)
	studentdocFields := schema.StudentDoc{}.Fields()
	_ = studentdocFields
	// studentdocDescUpdatedAt is the schema descriptor for updated_at field.
	studentdocDescUpdatedAt := studentdocFields[4].Descriptor()
	// studentdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentdoc.DefaultUpdatedAt = studentdocDescUpdatedAt.Default.(func() time.Time)
	// studentdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentdoc.UpdateDefaultUpdatedAt = studentdocDescUpdatedAt.UpdateDefault.(func() time.Time)
}
