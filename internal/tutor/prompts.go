package tutor

import (
	"fmt"
	"strings"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/personalize"
	"github.com/stepwiselabs/stepwise/internal/steps"
)

// systemPrompt builds the tutoring system prompt from the personalization
// decision. The sentence-per-step instruction is load-bearing: step
// extraction depends on each algebraic move being its own sentence.
func systemPrompt(settings personalize.Settings) string {
	var b strings.Builder

	b.WriteString("You are a patient math tutor explaining how to solve equations step by step.\n")
	b.WriteString("State each algebraic move as one complete sentence that ends with a period and contains the resulting equation, like: \"First, subtract 3 from both sides, giving 2x = 4.\"\n")
	b.WriteString("Never put two equations in one sentence.\n")

	switch settings.Pace {
	case personalize.PaceSlow:
		b.WriteString("Go slowly. Spell out every intermediate move, even trivial ones.\n")
	case personalize.PaceFast:
		b.WriteString("Move briskly. Skip arithmetic the student can do in their head.\n")
	}

	switch settings.Verbosity {
	case personalize.VerbosityDetailed:
		b.WriteString("After each step, add one short sentence saying why the move is valid.\n")
	case personalize.VerbosityConcise:
		b.WriteString("Keep commentary to a minimum; mostly just the steps.\n")
	}

	if settings.TeachingStyle == personalize.StyleSocratic {
		b.WriteString("Where natural, pose a brief guiding question before revealing a step.\n")
	}

	if settings.ExplainEveryStep {
		b.WriteString("Do not combine steps; every single transformation gets its own sentence.\n")
	}

	return b.String()
}

// freshRequest builds the request for a brand-new explanation turn.
func freshRequest(settings personalize.Settings, history []llm.Message, text string, maxTokens int) llm.Request {
	msgs := append(append([]llm.Message(nil), history...), llm.Message{
		Role:    llm.RoleUser,
		Content: text,
	})
	return llm.Request{
		System:    systemPrompt(settings),
		Messages:  msgs,
		MaxTokens: maxTokens,
	}
}

// resumeRequest builds the request for continuing after an interruption.
// The partial explanation is replayed as assistant context so the model
// continues instead of restarting.
func resumeRequest(settings personalize.Settings, history []llm.Message, resume ResumeContext, from *steps.EquationStep, text string, maxTokens int) llm.Request {
	msgs := append([]llm.Message(nil), history...)

	if resume.FullExplanationSoFar != "" {
		msgs = append(msgs, llm.Message{
			Role:    llm.RoleAssistant,
			Content: resume.FullExplanationSoFar,
		})
	}

	var b strings.Builder
	if text != "" {
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	if from != nil {
		fmt.Fprintf(&b, "Continue the explanation from step %d (%s). ", from.Index, from.Equation)
	} else if resume.LastCompletedStep >= 0 {
		fmt.Fprintf(&b, "Continue the explanation after step %d. ", resume.LastCompletedStep)
	} else {
		b.WriteString("Continue the explanation from where you stopped. ")
	}
	b.WriteString("Do not restart from the beginning and do not repeat steps you already completed.")
	if resume.PartialSentence != "" {
		fmt.Fprintf(&b, " You were interrupted mid-sentence at: %q. Restate that sentence in full before going on.", resume.PartialSentence)
	}

	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: b.String()})
	return llm.Request{
		System:    systemPrompt(settings),
		Messages:  msgs,
		MaxTokens: maxTokens,
	}
}

// reexplainRequest builds the request for re-explaining one step.
func reexplainRequest(settings personalize.Settings, history []llm.Message, step steps.EquationStep, style string, maxTokens int) llm.Request {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain step %d again: %q. ", step.Index, step.Text)
	switch style {
	case "simpler":
		b.WriteString("Use smaller words and a more concrete framing than before.")
	case "detailed":
		b.WriteString("Break the move into smaller pieces and justify each one.")
	case "analogy":
		b.WriteString("Explain it through a real-world analogy.")
	default:
		b.WriteString("Explain it differently than before.")
	}
	b.WriteString(" Re-explain only this step; do not continue past it.")

	msgs := append(append([]llm.Message(nil), history...), llm.Message{
		Role:    llm.RoleUser,
		Content: b.String(),
	})
	return llm.Request{
		System:    systemPrompt(settings),
		Messages:  msgs,
		MaxTokens: maxTokens,
	}
}
